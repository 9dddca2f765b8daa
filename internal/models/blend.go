package models

// Blend order statuses.
const (
	BlendActive  = "Active"
	BlendOrdered = "Ordered"
	BlendShipped = "Shipped"
)

type BlendAdditive struct {
	Name string `json:"name"`
	Dose string `json:"dose"`
}

// BlendFormula describes the user's current supplement blend as derived from
// their phase 1 protocol plus the ingredient catalog.
type BlendFormula struct {
	Name      string          `json:"name,omitempty"`
	Base      string          `json:"base"`
	Additives []BlendAdditive `json:"additives"`
	Flavor    string          `json:"flavor"`
}
