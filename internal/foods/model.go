package foods

import "time"

// Food categories.
const (
	CategoryProteins   = "proteins"
	CategoryCarbs      = "carbs"
	CategoryFats       = "fats"
	CategoryVegetables = "vegetables"
)

// Food is a static reference record. Read-only: it feeds preference
// selection and display, and only its name ever reaches a prompt — the
// numeric fields are never used to derive AI targets.
type Food struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Category          string    `json:"category"`
	Protein           float64   `json:"protein"`
	Carbs             float64   `json:"carbs"`
	Fat               float64   `json:"fat"`
	CalsPerServing    float64   `json:"calsPerServing"`
	Serving           string    `json:"serving"`
	Tags              []string  `json:"tags,omitempty"`
	DataSource        string    `json:"dataSource"`
	VerificationLevel string    `json:"verificationLevel"`
	LastVerified      time.Time `json:"lastVerified"`
	ConfidenceScore   float64   `json:"confidenceScore"`
}

// ValidCategory reports whether the category is one of the four known groups.
func ValidCategory(category string) bool {
	switch category {
	case CategoryProteins, CategoryCarbs, CategoryFats, CategoryVegetables:
		return true
	}
	return false
}
