package identify

// Seasons lists the four care-tip categories, in display order.
var Seasons = []string{"Spring", "Summer", "Monsoon", "Winter"}

// PlantInfo is the structured identification result extracted from the
// inference service's free-form answer.
type PlantInfo struct {
	CommonName string `json:"common_name"`
	HindiName  string `json:"hindi_name"`

	// CareInstructions always contains exactly the four season keys,
	// each mapped to an ordered, possibly empty, list of tips.
	CareInstructions map[string][]string `json:"care_instructions"`
}

const (
	// UnknownName is the sentinel used when no common name was found.
	UnknownName = "Unknown"
	// NameNotAvailable is the sentinel used when no usable Hindi name was found.
	NameNotAvailable = "Not available"
)

// NewPlantInfo returns a fully-defaulted result: sentinel names and an
// empty tip list for every season.
func NewPlantInfo() PlantInfo {
	care := make(map[string][]string, len(Seasons))
	for _, season := range Seasons {
		care[season] = []string{}
	}
	return PlantInfo{
		CommonName:       UnknownName,
		HindiName:        NameNotAvailable,
		CareInstructions: care,
	}
}
