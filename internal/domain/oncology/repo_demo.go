package oncology

import (
	"context"
	"time"

	"github.com/onkoai/oncodemo/internal/platform/store"
)

type repoDemo struct {
	store *store.Store
}

// NewDemoRepo returns the repository backing demo mode.
func NewDemoRepo(s *store.Store) Repository {
	return &repoDemo{store: s}
}

func (r *repoDemo) ListMarkersByPatient(ctx context.Context, patientID string, limit int) ([]*TumorMarker, error) {
	q := r.store.From(store.TableTumorMarkers).Select().
		Eq("patient_id", patientID).
		Order("date", store.Ascending)
	if limit >= 0 {
		q = q.Limit(limit)
	}
	res := q.Exec()

	out := make([]*TumorMarker, 0, len(res.Data))
	for _, row := range res.Data {
		out = append(out, markerFromRecord(row))
	}
	return out, nil
}

func (r *repoDemo) LatestRecommendation(ctx context.Context, patientID string) (*Recommendation, error) {
	res := r.store.From(store.TableRecommendations).Select().
		Eq("patient_id", patientID).
		Order("created_at", store.Descending).
		Limit(1).
		Exec()
	if len(res.Data) == 0 {
		return nil, nil
	}
	return recommendationFromRecord(res.Data[0]), nil
}

func markerFromRecord(row store.Record) *TumorMarker {
	m := &TumorMarker{}
	m.ID, _ = row["id"].(string)
	m.PatientID, _ = row["patient_id"].(string)
	m.Date, _ = row["date"].(string)
	m.CEA = floatField(row, "cea")
	m.CA199 = floatField(row, "ca19_9")
	m.PSA = floatField(row, "psa")
	m.CA125 = floatField(row, "ca125")
	return m
}

func recommendationFromRecord(row store.Record) *Recommendation {
	rec := &Recommendation{}
	rec.ID, _ = row["id"].(string)
	rec.PatientID, _ = row["patient_id"].(string)
	rec.Recommendations, _ = row["recommendations"].([]string)
	rec.Confidence, _ = row["confidence"].(float64)
	rec.ModelVersion, _ = row["model_version"].(string)
	if raw, ok := row["created_at"].(string); ok {
		rec.CreatedAt, _ = time.Parse(time.RFC3339, raw)
	}
	return rec
}

func floatField(row store.Record, column string) *float64 {
	switch v := row[column].(type) {
	case *float64:
		return v
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	default:
		return nil
	}
}
