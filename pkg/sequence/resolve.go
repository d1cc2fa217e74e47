package sequence

import (
	"slices"

	"github.com/acorg/acorgdb/pkg/ent"
)

// Lookup supplies antigen records by ID. The record store implements
// it; resolution only reads.
type Lookup interface {
	Antigen(id string) (*ent.Antigen, bool)
}

// Resolve walks the ancestry of ag until an ancestor supplies an
// explicit sequence for gene. It returns that sequence and the
// substitution generations collected on the way, ordered oldest
// generation first, ready for Apply.
//
// An antigen holding an explicit sequence for the gene is its own
// terminal ancestor: the sequence is authoritative, no generations are
// collected, and its own substitution list for the gene is ignored.
//
// The parent for each step is the alteration-level parent_id for the
// gene when present, otherwise the record-level parent_id. A chain
// that runs out of parents without finding a sequence is
// MissingSequenceError; a dangling parent reference is
// MissingRecordError; a repeated antigen is CycleError.
func Resolve(l Lookup, ag *ent.Antigen, gene string) (string, []Generation, error) {
	var gens []Generation
	seen := make(map[string]bool)
	cur := ag
	for {
		if seq, ok := cur.GeneSequence(gene); ok {
			slices.Reverse(gens)
			return seq, gens, nil
		}
		if seen[cur.ID] {
			return "", nil, &CycleError{AntigenID: ag.ID, Gene: gene}
		}
		seen[cur.ID] = true

		gens = append(gens, Generation{
			AntigenID:     cur.ID,
			Substitutions: cur.Substitutions(gene),
		})

		parentID := cur.AltParentID(gene)
		if parentID == "" {
			parentID = cur.ParentID
		}
		if parentID == "" {
			return "", nil, &MissingSequenceError{
				AntigenID: ag.ID,
				Gene:      gene,
			}
		}
		parent, ok := l.Antigen(parentID)
		if !ok {
			return "", nil, &MissingRecordError{
				AntigenID: cur.ID,
				ParentID:  parentID,
			}
		}
		cur = parent
	}
}

// Genes returns the sorted names of every gene mentioned by ag or its
// ancestors, in explicit sequences or in alterations. The walk follows
// record-level parents and every alteration-level parent, so genes of
// reassortants with per-gene ancestries are included. These are the
// genes a sequence can be requested for with a chance of success.
func Genes(l Lookup, ag *ent.Antigen) []string {
	set := make(map[string]bool)
	seen := make(map[string]bool)
	queue := []*ent.Antigen{ag}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if seen[cur.ID] {
			continue
		}
		seen[cur.ID] = true

		for _, g := range cur.Genes {
			set[g.Gene] = true
		}
		parentIDs := make(map[string]bool)
		for _, alt := range cur.Alterations {
			set[alt.Gene] = true
			if alt.ParentID != "" {
				parentIDs[alt.ParentID] = true
			}
		}
		if cur.ParentID != "" {
			parentIDs[cur.ParentID] = true
		}
		for id := range parentIDs {
			if parent, ok := l.Antigen(id); ok {
				queue = append(queue, parent)
			}
		}
	}
	res := make([]string, 0, len(set))
	for g := range set {
		res = append(res, g)
	}
	slices.Sort(res)
	return res
}

// OwnSubs collects all substitution tokens from an antigen's own
// alterations, across genes.
func OwnSubs(ag *ent.Antigen) map[string]bool {
	res := make(map[string]bool)
	for _, alt := range ag.Alterations {
		for _, t := range alt.Substitutions {
			res[t] = true
		}
	}
	return res
}

// AncestorSubs collects substitution tokens from every ancestor of ag,
// across genes, excluding the antigen's own. The walk follows
// record-level parents and stops silently at dangling references or
// cycles; callers that need those reported should use Resolve.
func AncestorSubs(l Lookup, ag *ent.Antigen) map[string]bool {
	res := make(map[string]bool)
	seen := map[string]bool{ag.ID: true}
	cur := ag
	for cur.ParentID != "" {
		parent, ok := l.Antigen(cur.ParentID)
		if !ok || seen[parent.ID] {
			break
		}
		seen[parent.ID] = true
		for t := range OwnSubs(parent) {
			res[t] = true
		}
		cur = parent
	}
	return res
}
