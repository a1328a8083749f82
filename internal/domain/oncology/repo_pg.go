package oncology

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// repoPG is the production-mode repository, used when DATABASE_URL is
// configured.
type repoPG struct {
	pool *pgxpool.Pool
}

// NewPGRepo returns a Postgres-backed oncology repository.
func NewPGRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) ListMarkersByPatient(ctx context.Context, patientID string, limit int) ([]*TumorMarker, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, patient_id, date, cea, ca19_9, psa, ca125
		 FROM tumor_markers WHERE patient_id = $1
		 ORDER BY date LIMIT $2`,
		patientID, limit)
	if err != nil {
		return nil, fmt.Errorf("list tumor markers: %w", err)
	}
	defer rows.Close()

	var out []*TumorMarker
	for rows.Next() {
		m := &TumorMarker{}
		if err := rows.Scan(&m.ID, &m.PatientID, &m.Date, &m.CEA, &m.CA199, &m.PSA, &m.CA125); err != nil {
			return nil, fmt.Errorf("scan tumor marker: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *repoPG) LatestRecommendation(ctx context.Context, patientID string) (*Recommendation, error) {
	rec := &Recommendation{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, patient_id, recommendations, confidence, created_at, model_version
		 FROM ai_recommendations WHERE patient_id = $1
		 ORDER BY created_at DESC LIMIT 1`,
		patientID).Scan(&rec.ID, &rec.PatientID, &rec.Recommendations, &rec.Confidence, &rec.CreatedAt, &rec.ModelVersion)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get recommendation: %w", err)
	}
	return rec, nil
}
