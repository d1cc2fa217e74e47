package sequence

import "github.com/acorg/acorgdb/pkg/ent"

// Deriver reconstructs gene sequences for antigens over a record
// store, memoizing results per (antigen, gene) pair.
type Deriver struct {
	lookup Lookup
	cache  *Cache
}

// NewDeriver returns a Deriver reading records through l.
func NewDeriver(l Lookup) *Deriver {
	return &Deriver{lookup: l, cache: NewCache()}
}

// Sequence returns the derived sequence of gene for ag: the nearest
// ancestral explicit sequence with every intermediate generation's
// substitutions applied, oldest first. The first call per (antigen,
// gene) computes; later calls return the cached value.
func (d *Deriver) Sequence(ag *ent.Antigen, gene string) (string, error) {
	return d.cache.GetOrCompute(ag.ID, gene, func() (string, error) {
		base, gens, err := Resolve(d.lookup, ag, gene)
		if err != nil {
			return "", err
		}
		return Apply(base, gens)
	})
}
