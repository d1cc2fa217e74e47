package ent

// Titer is one long-form titration result: the titer measured for an
// antigen against a serum. Titers are strings because records carry
// threshold values such as "<10" or "*" alongside plain numbers.
type Titer struct {
	AntigenID string `json:"antigen_id" csv:"antigen_id"`
	SerumID   string `json:"serum_id"   csv:"serum_id"`
	Titer     string `json:"titer"      csv:"titer"`
}

// Experiment is a titration experiment: a set of antigens titrated
// against a set of sera. Titers are stored long-form; the wide
// antigen-by-serum table is derived on demand.
type Experiment struct {
	ID         string   `json:"id"`
	Name       string   `json:"name,omitempty"`
	Assay      string   `json:"assay,omitempty"`
	AntigenIDs []string `json:"antigen_ids,omitempty"`
	SerumIDs   []string `json:"serum_ids,omitempty"`
	Titers     []Titer  `json:"titers,omitempty"`

	// Dataset is set by the loader, not by the JSON file.
	Dataset string `json:"-"`
}

// MissingTiter marks an antigen/serum pair without a measurement in
// the wide table.
const MissingTiter = "*"

// TitersWide pivots the experiment's long-form titers into an
// antigen-by-serum table. The first row is a header ("antigen"
// followed by serum IDs), each following row an antigen ID followed by
// its titers. Row and column order follow AntigenIDs and SerumIDs when
// present, otherwise first appearance in Titers.
func (e *Experiment) TitersWide() [][]string {
	antigens := e.AntigenIDs
	if len(antigens) == 0 {
		antigens = appearanceOrder(e.Titers, func(t Titer) string { return t.AntigenID })
	}
	sera := e.SerumIDs
	if len(sera) == 0 {
		sera = appearanceOrder(e.Titers, func(t Titer) string { return t.SerumID })
	}

	cells := make(map[string]string, len(e.Titers))
	for _, t := range e.Titers {
		cells[t.AntigenID+"\x00"+t.SerumID] = t.Titer
	}

	table := make([][]string, 0, len(antigens)+1)
	header := append([]string{"antigen"}, sera...)
	table = append(table, header)
	for _, ag := range antigens {
		row := make([]string, 0, len(sera)+1)
		row = append(row, ag)
		for _, sr := range sera {
			titer, ok := cells[ag+"\x00"+sr]
			if !ok {
				titer = MissingTiter
			}
			row = append(row, titer)
		}
		table = append(table, row)
	}
	return table
}

func appearanceOrder(titers []Titer, key func(Titer) string) []string {
	var order []string
	seen := make(map[string]bool)
	for _, t := range titers {
		k := key(t)
		if !seen[k] {
			seen[k] = true
			order = append(order, k)
		}
	}
	return order
}
