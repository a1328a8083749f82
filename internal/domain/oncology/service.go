package oncology

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListMarkersByPatient returns the patient's tumor-marker readings in
// chronological order, at most limit of them. An unknown patient reads
// as an empty history.
func (s *Service) ListMarkersByPatient(ctx context.Context, patientID string, limit int) ([]*TumorMarker, error) {
	if limit <= 0 {
		return []*TumorMarker{}, nil
	}
	return s.repo.ListMarkersByPatient(ctx, patientID, limit)
}

// LatestRecommendation returns the newest recommendation for the
// patient, or nil when none exists.
func (s *Service) LatestRecommendation(ctx context.Context, patientID string) (*Recommendation, error) {
	return s.repo.LatestRecommendation(ctx, patientID)
}
