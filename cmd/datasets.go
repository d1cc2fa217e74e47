/*
Copyright © 2025 acorgdb authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"

	"github.com/acorg/acorgdb/internal/iorecords"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getDatasetsCmd returns the datasets command.
func getDatasetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "datasets",
		Short: "List datasets available in the data directory",
		Long: `List the datasets the data directory offers, from its
datasets.yaml manifest when present, otherwise from its
subdirectories.

Examples:
  acorgdb datasets
  acorgdb -d ~/data/acorg datasets`,
		RunE: func(cmd *cobra.Command, args []string) error {
			datasets, err := iorecords.New(cfg).Datasets()
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}
			if len(datasets) == 0 {
				gn.Warn("No datasets found in <em>%s</em>", cfg.Data.Dir)
				return nil
			}
			for _, ds := range datasets {
				if ds.Description == "" {
					fmt.Println(ds.Name)
					continue
				}
				fmt.Printf("%s\t%s\n", ds.Name, ds.Description)
			}
			return nil
		},
	}
}
