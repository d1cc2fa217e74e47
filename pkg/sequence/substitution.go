// Package sequence reconstructs gene sequences for antigens by walking
// their ancestry to the nearest explicitly recorded sequence and
// folding each generation's amino-acid substitutions onto it.
package sequence

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	tokenRe = regexp.MustCompile(`^([A-Z])(\d+)([A-Z])$`)
	mixedRe = regexp.MustCompile(`^\w\d+\w-\w$`)
	nameRe  = regexp.MustCompile(`\b[A-Z]\d+[A-Z](?:-[A-Z])?\b`)
	posRe   = regexp.MustCompile(`\d+`)
)

// Substitution is a parsed <originalAA><position><newAA> token.
// Position is 1-based.
type Substitution struct {
	Orig  byte
	Pos   int
	New   byte
	Token string
}

// Parse parses a substitution token. Tokens with extra amino acids,
// such as "A45T-I" or "A-A45T", denote mixed populations and return
// MixedPopulationError; anything else unparseable, including tokens
// whose two amino acids are identical, returns
// SubstitutionFormatError.
func Parse(token string) (Substitution, error) {
	m := tokenRe.FindStringSubmatch(token)
	if m == nil {
		if strings.Contains(token, "-") {
			return Substitution{}, &MixedPopulationError{Token: token}
		}
		return Substitution{}, &SubstitutionFormatError{Token: token}
	}
	pos, err := strconv.Atoi(m[2])
	if err != nil || pos < 1 {
		return Substitution{}, &SubstitutionFormatError{Token: token}
	}
	if m[1] == m[3] {
		return Substitution{}, &SubstitutionFormatError{Token: token}
	}
	return Substitution{
		Orig:  m[1][0],
		Pos:   pos,
		New:   m[3][0],
		Token: token,
	}, nil
}

func parseAll(tokens []string) ([]Substitution, error) {
	subs := make([]Substitution, len(tokens))
	for i, t := range tokens {
		s, err := Parse(t)
		if err != nil {
			return nil, err
		}
		subs[i] = s
	}
	return subs, nil
}

// Position returns the 1-based position encoded in a token, or 0 when
// the token carries no position. Mixed-population tokens are
// supported, so Position can order tokens that Parse rejects.
func Position(token string) int {
	digits := posRe.FindString(token)
	if digits == "" {
		return 0
	}
	pos, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return pos
}

// IsMixed reports whether a token describes a mixed population of
// amino acids, e.g. "K140K-S".
func IsMixed(token string) bool {
	return mixedRe.MatchString(token)
}

// RemoveMixed filters mixed-population tokens out of a substitution
// set.
func RemoveMixed(tokens map[string]bool) map[string]bool {
	res := make(map[string]bool, len(tokens))
	for t := range tokens {
		if !IsMixed(t) {
			res[t] = true
		}
	}
	return res
}

// SubsInName extracts the substitution tokens embedded in an antigen's
// long name, e.g. "…-HA-K140R/S155P" yields K140R and S155P. Mixed
// tokens such as "K140K-S" are included; strip them with RemoveMixed
// when a single-sequence view is needed.
func SubsInName(name string) map[string]bool {
	res := make(map[string]bool)
	for _, t := range nameRe.FindAllString(name, -1) {
		res[t] = true
	}
	return res
}
