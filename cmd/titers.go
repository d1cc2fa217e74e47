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
	"encoding/csv"
	"fmt"
	"os"

	"github.com/acorg/acorgdb/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"
)

// getTitersCmd returns the titers command.
func getTitersCmd() *cobra.Command {
	var wide bool

	titersCmd := &cobra.Command{
		Use:   "titers <experiment-id>",
		Short: "Print the titration results of an experiment",
		Args:  cobra.ExactArgs(1),
		Long: `Print an experiment's titration results as CSV.

The default long form has one antigen/serum/titer row per measurement.
With --wide the output is an antigen-by-serum table; pairs without a
measurement show "*".

Examples:
  acorgdb titers EXP42
  acorgdb titers EXP42 --wide`,
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := loadDatabase()
			if err != nil {
				return err
			}

			exp, ok := database.Experiment(args[0])
			if !ok {
				err := &gn.Error{
					Code: errcode.UnknownRecordError,
					Msg:  "No experiment <em>%s</em> in the loaded datasets",
					Vars: []any{args[0]},
					Err:  fmt.Errorf("experiment %s not found", args[0]),
				}
				gn.PrintErrorMessage(err)
				return err
			}

			if wide {
				// The wide table's columns depend on the experiment's
				// sera, so the generic csv writer fits better than
				// struct-tag marshaling here.
				w := csv.NewWriter(os.Stdout)
				if err := w.WriteAll(exp.TitersWide()); err != nil {
					gn.PrintErrorMessage(err)
					return err
				}
				return nil
			}

			out, err := gocsv.MarshalString(&exp.Titers)
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}
			fmt.Print(out)
			return nil
		},
	}

	titersCmd.Flags().BoolVarP(&wide, "wide", "w", false,
		"print an antigen-by-serum table instead of long rows")

	return titersCmd
}
