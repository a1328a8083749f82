package patient

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrNotFound marks an update against an absent patient. Reads never
// return it; an absent record reads as nil.
var ErrNotFound = errors.New("patient not found")

var validStatuses = map[string]bool{
	StatusActive: true, StatusRecovering: true, StatusCritical: true,
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// GetPatients returns at most limit patients visible to the viewer:
// admins see everything, doctors their own and unassigned patients,
// patients only themselves.
func (s *Service) GetPatients(ctx context.Context, viewer Viewer, limit int) ([]*Patient, error) {
	if limit < 0 {
		limit = 0
	}

	switch viewer.Role {
	case "patient":
		if limit == 0 || viewer.PatientID == "" {
			return []*Patient{}, nil
		}
		p, err := s.repo.GetByID(ctx, viewer.PatientID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return []*Patient{}, nil
		}
		return []*Patient{p}, nil
	case "doctor":
		return s.repo.ListByDoctor(ctx, viewer.UserID, limit)
	default:
		items, _, err := s.repo.List(ctx, limit, 0)
		return items, err
	}
}

// GetPatientByID returns the patient or nil when absent. A patient
// viewer asking about anyone but themselves also reads nil; the demo
// answers "nothing here" rather than "forbidden".
func (s *Service) GetPatientByID(ctx context.Context, viewer Viewer, id string) (*Patient, error) {
	if viewer.Role == "patient" && viewer.PatientID != id {
		return nil, nil
	}
	return s.repo.GetByID(ctx, id)
}

// CreatePatient validates the fields, assigns a time-based id and
// creation timestamp, and appends the record.
func (s *Service) CreatePatient(ctx context.Context, params CreateParams) (*Patient, error) {
	if params.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if params.Age <= 0 {
		return nil, fmt.Errorf("age must be positive")
	}
	if params.Status == "" {
		params.Status = StatusActive
	}
	if !validStatuses[params.Status] {
		return nil, fmt.Errorf("invalid status: %s", params.Status)
	}

	now := s.now()
	p := &Patient{
		ID:        strconv.FormatInt(now.UnixNano(), 10),
		Name:      params.Name,
		Age:       params.Age,
		Diagnosis: params.Diagnosis,
		Status:    params.Status,
		LastVisit: params.LastVisit,
		CreatedAt: now.UTC(),
		DoctorID:  params.DoctorID,
	}
	if p.LastVisit == "" {
		p.LastVisit = now.UTC().Format("2006-01-02")
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdatePatient replaces the provided fields by id. An absent id
// yields ErrNotFound with nil data.
func (s *Service) UpdatePatient(ctx context.Context, id string, params UpdateParams) (*Patient, error) {
	if params.Status != nil && !validStatuses[*params.Status] {
		return nil, fmt.Errorf("invalid status: %s", *params.Status)
	}
	if params.Age != nil && *params.Age <= 0 {
		return nil, fmt.Errorf("age must be positive")
	}

	updated, err := s.repo.Update(ctx, id, params)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}
