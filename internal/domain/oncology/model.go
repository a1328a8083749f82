package oncology

import "time"

// TumorMarker is one dated lab reading. Each channel is optional; the
// panel drawn depends on the tumor type, so most rows carry one or two
// values and nil for the rest.
type TumorMarker struct {
	ID        string   `db:"id" json:"id"`
	PatientID string   `db:"patient_id" json:"patient_id"`
	Date      string   `db:"date" json:"date"`
	CEA       *float64 `db:"cea" json:"cea"`
	CA199     *float64 `db:"ca19_9" json:"ca19_9"`
	PSA       *float64 `db:"psa" json:"psa"`
	CA125     *float64 `db:"ca125" json:"ca125"`
}

// Recommendation is a canned AI treatment recommendation for a patient.
type Recommendation struct {
	ID              string    `db:"id" json:"id"`
	PatientID       string    `db:"patient_id" json:"patient_id"`
	Recommendations []string  `db:"recommendations" json:"recommendations"`
	Confidence      float64   `db:"confidence" json:"confidence"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	ModelVersion    string    `db:"model_version" json:"model_version"`
}

// Classification is the output of the keyword classifier.
type Classification struct {
	CancerType    string        `json:"cancer_type"`
	Stage         string        `json:"stage"`
	Confidence    float64       `json:"confidence"`
	ExtractedInfo ExtractedInfo `json:"extracted_info"`
}

type ExtractedInfo struct {
	HasMetastasis bool `json:"has_metastasis"`
	LymphNodes    bool `json:"lymph_nodes"`
}
