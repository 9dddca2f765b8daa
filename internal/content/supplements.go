package content

// Ingredient describes one catalog entry for the blend builder. Dose is the
// per-serving amount printed on the label.
type Ingredient struct {
	Name string `json:"name"`
	Dose string `json:"dose"`
}

// BlendBase is the protein base every custom blend is mixed into.
const BlendBase = "Vegan Rice Protein"

// BlendFlavors lists the flavors offered at checkout, first entry default.
func BlendFlavors() []string {
	return []string{"Baobab Vanilla", "Wild Berry", "Cacao Mint", "Unflavored"}
}

// IngredientDose returns the label dose for a protocol ingredient. Unknown
// ingredients get an empty dose rather than an error; the storefront treats
// the dose as display-only.
func IngredientDose(name string) string {
	return ingredientDoses[name]
}

var ingredientDoses = map[string]string{
	"Zinc A.A.C.":                   "22mg",
	"Collagen Peptides":             "5g",
	"Quercetin":                     "500mg",
	"Vitamin C":                     "500mg",
	"Electrolyte Blend":             "4g",
	"Milk Thistle":                  "250mg",
	"Vitamin B12 (Methylcobalamin)": "1000mcg",
	"Iron A.A.C.":                   "18mg",
	"L-Glutamine":                   "5g",
	"DigeZyme®":                     "150mg",
	"Probiotic":                     "10B CFU",
	"Magnesium Glycinate":           "300mg",
	"Ashwagandha":                   "300mg",
	"MCT Powder":                    "3g",
	"Vitamin D3":                    "2000IU",
	"Vitamin K2":                    "100mcg",
	"Calcium Lactate":               "500mg",
	"N-Acetyl-L-Cysteine":           "600mg",
}
