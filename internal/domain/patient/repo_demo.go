package patient

import (
	"context"
	"time"

	"github.com/onkoai/oncodemo/internal/platform/store"
)

// repoDemo serves patients from the in-memory demo store through the
// query façade.
type repoDemo struct {
	store *store.Store
}

// NewDemoRepo returns the repository backing demo mode.
func NewDemoRepo(s *store.Store) Repository {
	return &repoDemo{store: s}
}

func (r *repoDemo) List(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	res := r.store.From(store.TablePatients).Select().Exec()
	total := len(res.Data)

	if offset > total {
		offset = total
	}
	rows := res.Data[offset:]
	if limit >= 0 && limit < len(rows) {
		rows = rows[:limit]
	}

	out := make([]*Patient, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromRecord(row))
	}
	return out, total, nil
}

func (r *repoDemo) ListByDoctor(ctx context.Context, doctorID string, limit int) ([]*Patient, error) {
	// Seed patients carry no doctor assignment; an unassigned patient
	// is visible to every doctor, an assigned one only to its owner.
	res := r.store.From(store.TablePatients).Select().Exec()
	out := make([]*Patient, 0, len(res.Data))
	for _, row := range res.Data {
		if limit >= 0 && len(out) == limit {
			break
		}
		p := fromRecord(row)
		if p.DoctorID == nil || *p.DoctorID == doctorID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *repoDemo) GetByID(ctx context.Context, id string) (*Patient, error) {
	row, ok := r.store.From(store.TablePatients).Select().Eq("id", id).Single()
	if !ok {
		return nil, nil
	}
	return fromRecord(row), nil
}

func (r *repoDemo) Create(ctx context.Context, p *Patient) error {
	stored := r.store.Append(store.TablePatients, toRecord(p))
	p.ID, _ = stored["id"].(string)
	return nil
}

func (r *repoDemo) Update(ctx context.Context, id string, params UpdateParams) (*Patient, error) {
	fields := store.Record{}
	if params.Name != nil {
		fields["name"] = *params.Name
	}
	if params.Age != nil {
		fields["age"] = *params.Age
	}
	if params.Diagnosis != nil {
		fields["diagnosis"] = *params.Diagnosis
	}
	if params.Status != nil {
		fields["status"] = *params.Status
	}
	if params.LastVisit != nil {
		fields["last_visit"] = *params.LastVisit
	}
	if params.DoctorID != nil {
		fields["doctor_id"] = *params.DoctorID
	}

	updated, ok := r.store.Replace(store.TablePatients, id, fields)
	if !ok {
		return nil, nil
	}
	return fromRecord(updated), nil
}

// fromRecord maps a store row to a Patient. Seed rows use JSON-ish
// loose typing, so numeric columns may arrive as int or float64.
func fromRecord(row store.Record) *Patient {
	p := &Patient{}
	p.ID, _ = row["id"].(string)
	p.Name, _ = row["name"].(string)
	switch age := row["age"].(type) {
	case int:
		p.Age = age
	case float64:
		p.Age = int(age)
	}
	p.Diagnosis, _ = row["diagnosis"].(string)
	p.Status, _ = row["status"].(string)
	p.LastVisit, _ = row["last_visit"].(string)
	if raw, _ := row["created_at"].(string); raw != "" {
		p.CreatedAt, _ = time.Parse(time.RFC3339, raw)
	}
	if doctorID, ok := row["doctor_id"].(string); ok && doctorID != "" {
		p.DoctorID = &doctorID
	}
	return p
}

func toRecord(p *Patient) store.Record {
	row := store.Record{
		"name":       p.Name,
		"age":        p.Age,
		"diagnosis":  p.Diagnosis,
		"status":     p.Status,
		"last_visit": p.LastVisit,
		"created_at": p.CreatedAt.UTC().Format(time.RFC3339),
	}
	if p.ID != "" {
		row["id"] = p.ID
	}
	if p.DoctorID != nil {
		row["doctor_id"] = *p.DoctorID
	}
	return row
}
