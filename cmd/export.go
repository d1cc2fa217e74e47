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
	"context"
	"time"

	"github.com/acorg/acorgdb/internal/ioexport"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/spf13/cobra"
)

// getExportCmd returns the export command.
func getExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Export the loaded datasets to an SQLite file",
		Args:  cobra.ExactArgs(1),
		Long: `Export the loaded datasets to an SQLite file for ad-hoc querying.
The file gets tables for antigens, alterations, genes, sera,
experiments and titers, each row carrying its dataset of origin and a
stable UUID.

Examples:
  acorgdb export acorg.sqlite
  acorgdb -s h5 export h5.sqlite`,
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := loadDatabase()
			if err != nil {
				return err
			}

			start := time.Now()
			if err := ioexport.Export(
				context.Background(), database, args[0],
			); err != nil {
				gn.PrintErrorMessage(err)
				return err
			}
			gn.Info("Exported to <em>%s</em> in %s", args[0],
				gnfmt.TimeString(time.Since(start).Seconds()))
			return nil
		},
	}
}
