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

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getListCmd returns the list command.
func getListCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "list {antigens|sera|experiments}",
		Short:     "List the records of one collection",
		ValidArgs: []string{"antigens", "sera", "experiments"},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Long: `List the IDs and long names of one record collection across the
loaded datasets.

Examples:
  acorgdb list antigens
  acorgdb -s h5 -s h5_mutants list sera`,
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := loadDatabase()
			if err != nil {
				return err
			}

			var count int
			switch args[0] {
			case "antigens":
				for _, ag := range database.Antigens() {
					fmt.Printf("%s\t%s\n", ag.ID, ag.Long)
				}
				count = len(database.Antigens())
			case "sera":
				for _, sr := range database.Sera() {
					fmt.Printf("%s\t%s\n", sr.ID, sr.Long)
				}
				count = len(database.Sera())
			case "experiments":
				for _, ex := range database.Experiments() {
					fmt.Printf("%s\t%s\n", ex.ID, ex.Name)
				}
				count = len(database.Experiments())
			}

			gn.Info("Found <em>%s</em> %s",
				humanize.Comma(int64(count)), args[0])
			return nil
		},
	}
}
