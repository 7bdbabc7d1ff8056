package types

// Category is an arXiv subject class offered in the category picker.
type Category struct {
	Code  string `json:"code" yaml:"code"`
	Label string `json:"label" yaml:"label"`
}

// Categories lists the subject classes offered to users. Any other code
// the API understands can still be passed as a filter.
var Categories = []Category{
	{"cs.AI", "Artificial Intelligence"},
	{"cs.CL", "Computation and Language"},
	{"cs.CV", "Computer Vision"},
	{"cs.LG", "Machine Learning"},
	{"cs.NE", "Neural and Evolutionary Computing"},
	{"cs.CR", "Cryptography and Security"},
	{"cs.DB", "Databases"},
	{"cs.DS", "Data Structures and Algorithms"},
	{"math.CO", "Combinatorics"},
	{"math.NT", "Number Theory"},
	{"math.AG", "Algebraic Geometry"},
	{"physics.comp-ph", "Computational Physics"},
	{"physics.data-an", "Data Analysis"},
	{"q-bio.GN", "Genomics"},
	{"q-bio.NC", "Neurons and Cognition"},
	{"q-fin.CP", "Computational Finance"},
	{"stat.ML", "Machine Learning (Statistics)"},
	{"stat.AP", "Applications (Statistics)"},
}

// CategoryLabel returns the label for code, or code itself when unknown.
func CategoryLabel(code string) string {
	for _, c := range Categories {
		if c.Code == code {
			return c.Label
		}
	}
	return code
}
