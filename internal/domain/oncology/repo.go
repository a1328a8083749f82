package oncology

import "context"

// Repository reads tumor-marker history and recommendation records.
// Reads never fail on absent data: an unknown patient yields an empty
// slice or a nil record.
type Repository interface {
	ListMarkersByPatient(ctx context.Context, patientID string, limit int) ([]*TumorMarker, error)
	LatestRecommendation(ctx context.Context, patientID string) (*Recommendation, error)
}
