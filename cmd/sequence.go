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

	"github.com/acorg/acorgdb/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getSequenceCmd returns the sequence command.
func getSequenceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sequence <antigen-id> <gene>",
		Short: "Derive the sequence of a gene for an antigen",
		Args:  cobra.ExactArgs(2),
		Long: `Derive the sequence of a gene for an antigen: walk the antigen's
ancestry to the nearest explicitly recorded sequence and apply each
generation's substitutions, oldest generation first.

Examples:
  acorgdb sequence CHILD8 HA
  acorgdb -s h5_mutants sequence IWY9GS NA`,
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := loadDatabase()
			if err != nil {
				return err
			}

			seq, err := database.Sequence(args[0], args[1])
			if err != nil {
				err = &gn.Error{
					Code: errcode.SequenceError,
					Msg:  "Cannot derive %s sequence for <em>%s</em>: %v",
					Vars: []any{args[1], args[0], err},
					Err:  err,
				}
				gn.PrintErrorMessage(err)
				return err
			}

			fmt.Println(seq)
			return nil
		},
	}
}
