package model

// Symptom is one entry of the fixed symptom catalog
type Symptom struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// SymptomCatalog is the fixed list of recognized symptom names. It is the
// single source of truth for both ingestion validation and dashboard
// aggregation, and is seeded into the symptoms table at startup. Catalog
// order is also the tie-break order for "most common" rankings.
var SymptomCatalog = []string{
	"Fever", "Dry Cough", "Wet Cough", "Shortness of Breath",
	"Fatigue", "Body Aches", "Headache", "Loss of Taste", "Loss of Smell",
	"Sore Throat", "Nausea", "Vomiting", "Diarrhea", "Stomach Pain",
	"Congestion", "Runny Nose", "Chills", "Dizziness",
	"Chest Pain", "Rash", "Eye Irritation", "Painful Urination",
	"Toothache", "Loss of Appetite", "Earache",
}

// IsKnownSymptom reports whether name belongs to the catalog.
func IsKnownSymptom(name string) bool {
	for _, s := range SymptomCatalog {
		if s == name {
			return true
		}
	}
	return false
}
