// Package ent defines the immutable record types an acorgdb dataset is
// made of: antigens, sera, and experiments. Records are decoded from
// flat JSON files once at load time and never modified afterwards.
package ent

// Alteration describes how one of an antigen's genes differs from its
// parent: an ordered list of substitution tokens, and optionally the
// ID of the antigen the gene's sequence derives from when that is not
// the record-level parent.
type Alteration struct {
	// Gene is the name of the altered gene, e.g. "HA".
	Gene string `json:"gene"`

	// Substitutions is an ordered list of tokens of the form
	// <originalAA><position><newAA>, e.g. "K140R".
	Substitutions []string `json:"substitutions,omitempty"`

	// ParentID overrides the antigen-level parent for this gene.
	// Some records store the sequence source per gene here when the
	// record-level parent has no sequence.
	ParentID string `json:"parent_id,omitempty"`
}

// Gene holds an explicit, directly observed sequence for a named gene.
// Only "root" antigens for a gene carry one; descendants describe
// themselves through alterations instead.
type Gene struct {
	Gene     string `json:"gene"`
	Sequence string `json:"sequence"`
}

// Antigen is a biological variant record, possibly derived from a
// parent via substitutions.
type Antigen struct {
	ID          string       `json:"id"`
	Long        string       `json:"long,omitempty"`
	ParentID    string       `json:"parent_id,omitempty"`
	Wildtype    bool         `json:"wildtype,omitempty"`
	Alterations []Alteration `json:"alterations,omitempty"`
	Genes       []Gene       `json:"genes,omitempty"`

	// Dataset is the name of the dataset the record came from.
	// It is set by the loader, not by the JSON file.
	Dataset string `json:"-"`
}

// GeneSequence returns the explicit sequence recorded for gene, if any.
func (a *Antigen) GeneSequence(gene string) (string, bool) {
	for _, g := range a.Genes {
		if g.Gene == gene {
			return g.Sequence, true
		}
	}
	return "", false
}

// Substitutions returns the antigen's own substitution list for gene.
// The result is nil when the antigen has no alteration entry for the
// gene.
func (a *Antigen) Substitutions(gene string) []string {
	for _, alt := range a.Alterations {
		if alt.Gene == gene {
			return alt.Substitutions
		}
	}
	return nil
}

// AltParentID returns the per-gene parent override from the antigen's
// alterations, or an empty string when the gene has none.
func (a *Antigen) AltParentID(gene string) string {
	for _, alt := range a.Alterations {
		if alt.Gene == gene {
			return alt.ParentID
		}
	}
	return ""
}
