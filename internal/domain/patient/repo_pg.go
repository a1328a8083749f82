package patient

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// repoPG is the production-mode repository, used when DATABASE_URL is
// configured.
type repoPG struct {
	pool *pgxpool.Pool
}

// NewPGRepo returns a Postgres-backed patient repository.
func NewPGRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const patientCols = `id, name, age, diagnosis, status, last_visit, created_at, doctor_id`

func scanPatient(row pgx.Row) (*Patient, error) {
	p := &Patient{}
	err := row.Scan(&p.ID, &p.Name, &p.Age, &p.Diagnosis, &p.Status, &p.LastVisit, &p.CreatedAt, &p.DoctorID)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM patients`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count patients: %w", err)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+patientCols+` FROM patients ORDER BY created_at, id LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list patients: %w", err)
	}
	defer rows.Close()

	var out []*Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan patient: %w", err)
		}
		out = append(out, p)
	}
	return out, total, rows.Err()
}

func (r *repoPG) ListByDoctor(ctx context.Context, doctorID string, limit int) ([]*Patient, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+patientCols+` FROM patients
		 WHERE doctor_id IS NULL OR doctor_id = $1
		 ORDER BY created_at, id LIMIT $2`,
		doctorID, limit)
	if err != nil {
		return nil, fmt.Errorf("list patients by doctor: %w", err)
	}
	defer rows.Close()

	var out []*Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan patient: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *repoPG) GetByID(ctx context.Context, id string) (*Patient, error) {
	p, err := scanPatient(r.pool.QueryRow(ctx,
		`SELECT `+patientCols+` FROM patients WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get patient: %w", err)
	}
	return p, nil
}

func (r *repoPG) Create(ctx context.Context, p *Patient) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO patients (`+patientCols+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, p.Name, p.Age, p.Diagnosis, p.Status, p.LastVisit, p.CreatedAt, p.DoctorID)
	if err != nil {
		return fmt.Errorf("insert patient: %w", err)
	}
	return nil
}

func (r *repoPG) Update(ctx context.Context, id string, params UpdateParams) (*Patient, error) {
	set := make([]string, 0, 6)
	args := make([]any, 0, 7)
	add := func(col string, val any) {
		args = append(args, val)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if params.Name != nil {
		add("name", *params.Name)
	}
	if params.Age != nil {
		add("age", *params.Age)
	}
	if params.Diagnosis != nil {
		add("diagnosis", *params.Diagnosis)
	}
	if params.Status != nil {
		add("status", *params.Status)
	}
	if params.LastVisit != nil {
		add("last_visit", *params.LastVisit)
	}
	if params.DoctorID != nil {
		add("doctor_id", *params.DoctorID)
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE patients SET %s WHERE id = $%d RETURNING `+patientCols,
		strings.Join(set, ", "), len(args))

	p, err := scanPatient(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update patient: %w", err)
	}
	return p, nil
}
