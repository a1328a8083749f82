package patient

import "context"

// Repository is the storage seam for patients. The demo repo sits on
// the in-memory store; the production repo sits on Postgres. Both
// follow the same not-found convention: GetByID returns (nil, nil)
// for an absent id, since absence is an expected answer here, not a
// failure.
type Repository interface {
	List(ctx context.Context, limit, offset int) ([]*Patient, int, error)
	ListByDoctor(ctx context.Context, doctorID string, limit int) ([]*Patient, error)
	GetByID(ctx context.Context, id string) (*Patient, error)
	Create(ctx context.Context, p *Patient) error
	Update(ctx context.Context, id string, params UpdateParams) (*Patient, error)
}
