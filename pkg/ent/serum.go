package ent

// Serum is an antiserum record. Sera take part in titrations and may
// reference the antigen they were raised against.
type Serum struct {
	ID      string `json:"id"`
	Long    string `json:"long,omitempty"`
	Species string `json:"species,omitempty"`

	// AntigenID references the homologous antigen, if recorded.
	AntigenID string `json:"antigen_id,omitempty"`

	// Dataset is set by the loader, not by the JSON file.
	Dataset string `json:"-"`
}
