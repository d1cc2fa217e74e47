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
	"errors"
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/acorg/acorgdb/pkg/db"
	"github.com/acorg/acorgdb/pkg/ent"
	"github.com/acorg/acorgdb/pkg/sequence"
	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// checkFinding is one problem the check command discovered.
type checkFinding struct {
	antigenID string
	gene      string
	msg       string
}

// getCheckCmd returns the check command.
func getCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify that every antigen's sequences can be derived",
		Long: `Derive the sequence of every gene reachable from every antigen and
report records whose derivation fails, whose long name carries
substitutions missing from its alterations, or whose alterations carry
substitutions missing from its long name. Antigens representing mixed
populations are reported separately, not as failures.

Examples:
  acorgdb check
  acorgdb -s h5_mutants check`,
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := loadDatabase()
			if err != nil {
				return err
			}
			return runCheck(database)
		},
	}
}

func runCheck(database *db.Database) error {
	start := time.Now()
	ags := database.Antigens()

	bar := pb.Full.Start(len(ags))
	defer bar.Finish()

	var mu sync.Mutex
	var findings []checkFinding
	var derived, mixed int

	var g errgroup.Group
	g.SetLimit(cfg.JobsNumber)

	for _, ag := range ags {
		g.Go(func() error {
			fs, d, m := checkAntigen(database, ag)
			mu.Lock()
			findings = append(findings, fs...)
			derived += d
			mixed += m
			mu.Unlock()
			bar.Increment()
			return nil
		})
	}
	// workers never return errors, they report findings
	_ = g.Wait()
	bar.Finish()

	sort.Slice(findings, func(i, j int) bool {
		if findings[i].antigenID != findings[j].antigenID {
			return findings[i].antigenID < findings[j].antigenID
		}
		return findings[i].gene < findings[j].gene
	})
	for _, f := range findings {
		if f.gene == "" {
			fmt.Printf("%s: %s\n", f.antigenID, f.msg)
			continue
		}
		fmt.Printf("%s %s: %s\n", f.antigenID, f.gene, f.msg)
	}

	gn.Info(
		"Checked <em>%s</em> antigens, derived <em>%s</em> sequences in %s",
		humanize.Comma(int64(len(ags))),
		humanize.Comma(int64(derived)),
		gnfmt.TimeString(time.Since(start).Seconds()),
	)
	if mixed > 0 {
		gn.Info("Skipped <em>%s</em> mixed-population derivations",
			humanize.Comma(int64(mixed)))
	}
	if len(findings) > 0 {
		err := fmt.Errorf("check found %d problems", len(findings))
		gn.Warn("Found <em>%s</em> problems",
			humanize.Comma(int64(len(findings))))
		return err
	}
	gn.Info("No problems found")
	return nil
}

// checkAntigen derives every gene reachable from ag and cross-checks
// the substitutions in its long name against its alterations. It
// returns the findings plus the number of derived sequences and of
// mixed-population derivations skipped.
func checkAntigen(
	database *db.Database,
	ag *ent.Antigen,
) ([]checkFinding, int, int) {
	var findings []checkFinding
	var derived, mixed int

	for _, gene := range sequence.Genes(database, ag) {
		_, err := database.Sequence(ag.ID, gene)
		if err == nil {
			derived++
			continue
		}
		var mixErr *sequence.MixedPopulationError
		if errors.As(err, &mixErr) {
			mixed++
			continue
		}
		findings = append(findings, checkFinding{
			antigenID: ag.ID,
			gene:      gene,
			msg:       err.Error(),
		})
	}

	findings = append(findings, checkName(database, ag)...)
	return findings, derived, mixed
}

// checkName compares the substitutions spelled out in an antigen's
// long name with those recorded in its alterations. Mixed-population
// tokens are excluded from both sides, and tokens inherited from
// ancestors are accepted in the name.
func checkName(database *db.Database, ag *ent.Antigen) []checkFinding {
	if ag.Long == "" {
		return nil
	}
	var findings []checkFinding

	inName := sequence.RemoveMixed(sequence.SubsInName(ag.Long))
	own := sequence.RemoveMixed(sequence.OwnSubs(ag))
	inherited := sequence.AncestorSubs(database, ag)

	for _, t := range sortedTokens(own) {
		if !inName[t] {
			findings = append(findings, checkFinding{
				antigenID: ag.ID,
				msg: fmt.Sprintf(
					"substitution %s recorded but absent from name %q",
					t, ag.Long),
			})
		}
	}
	for _, t := range sortedTokens(inName) {
		if !own[t] && !inherited[t] {
			findings = append(findings, checkFinding{
				antigenID: ag.ID,
				msg: fmt.Sprintf(
					"substitution %s named in %q but not recorded",
					t, ag.Long),
			})
		}
	}
	return findings
}

func sortedTokens(set map[string]bool) []string {
	res := make([]string, 0, len(set))
	for t := range set {
		res = append(res, t)
	}
	slices.Sort(res)
	return res
}
