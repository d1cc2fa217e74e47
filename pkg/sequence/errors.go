package sequence

import (
	"fmt"
	"strings"
)

// MissingSequenceError means no antigen in the ancestry chain,
// including the requesting antigen itself, supplies an explicit
// sequence for the requested gene.
type MissingSequenceError struct {
	AntigenID string
	Gene      string
}

func (e *MissingSequenceError) Error() string {
	return fmt.Sprintf(
		"%s has no ancestor with a sequence for %s",
		e.AntigenID, e.Gene,
	)
}

// MissingRecordError means an antigen references a parent ID that is
// absent from the record store.
type MissingRecordError struct {
	AntigenID string
	ParentID  string
}

func (e *MissingRecordError) Error() string {
	return fmt.Sprintf(
		"%s refers to unknown parent %s",
		e.AntigenID, e.ParentID,
	)
}

// CycleError means the parent relation contains a cycle. Well-formed
// data never triggers it; the walk guards against malformed records
// instead of looping forever.
type CycleError struct {
	AntigenID string
	Gene      string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf(
		"ancestry of %s contains a cycle while resolving %s",
		e.AntigenID, e.Gene,
	)
}

// ConsistencyError means a generation's substitution list is neither
// fully incorporated into the sequence already, nor fully consistent
// with the pre-substitution sequence.
type ConsistencyError struct {
	// AntigenID identifies the antigen whose substitution list failed.
	AntigenID string
	// Substitutions is the generation's full token list.
	Substitutions []string
	// Failing holds the tokens that match neither their original nor
	// their gained amino acid.
	Failing []string
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf(
		"%s sequence inconsistent with all amino acids gained in %s "+
			"and sequence inconsistent with %s",
		e.AntigenID,
		quotedList(e.Substitutions),
		strings.Join(e.Failing, ", "),
	)
}

// quotedList renders tokens as ['K1D', 'T6G'], the form the original
// records tooling used and downstream log scrapers still expect.
func quotedList(tokens []string) string {
	quoted := make([]string, len(tokens))
	for i, t := range tokens {
		quoted[i] = "'" + t + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// SubstitutionFormatError means a token cannot be parsed as
// <originalAA><position><newAA>.
type SubstitutionFormatError struct {
	Token string
}

func (e *SubstitutionFormatError) Error() string {
	return fmt.Sprintf("cannot parse substitution %q", e.Token)
}

// MixedPopulationError means a token describes a mixed population of
// amino acids at one position, e.g. "A45T-I". Such substitutions do
// not resolve to a single sequence.
type MixedPopulationError struct {
	Token string
}

func (e *MixedPopulationError) Error() string {
	return fmt.Sprintf(
		"%s describes a mixed population of amino acids", e.Token,
	)
}

// EmptySequenceError means substitutions were applied to an empty
// sequence.
type EmptySequenceError struct{}

func (e *EmptySequenceError) Error() string {
	return "cannot apply substitutions to an empty sequence"
}

// InconsistentSubstitutionError is the strict per-token failure
// returned by Mutate when a token's original amino acid is not at its
// position.
type InconsistentSubstitutionError struct {
	Token string
}

func (e *InconsistentSubstitutionError) Error() string {
	return fmt.Sprintf("sequence inconsistent with %s", e.Token)
}
