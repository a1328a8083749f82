package patient

import "time"

// Patient statuses.
const (
	StatusActive     = "active"
	StatusRecovering = "recovering"
	StatusCritical   = "critical"
)

// Patient is a demo patient record. Seed records carry the short
// string ids "1".."4"; created records get a time-based id.
type Patient struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Age       int       `db:"age" json:"age"`
	Diagnosis string    `db:"diagnosis" json:"diagnosis"`
	Status    string    `db:"status" json:"status"`
	LastVisit string    `db:"last_visit" json:"last_visit"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	DoctorID  *string   `db:"doctor_id" json:"doctor_id,omitempty"`
}

// CreateParams are the caller-supplied fields for a new patient.
type CreateParams struct {
	Name      string  `json:"name"`
	Age       int     `json:"age"`
	Diagnosis string  `json:"diagnosis"`
	Status    string  `json:"status"`
	LastVisit string  `json:"last_visit"`
	DoctorID  *string `json:"doctor_id,omitempty"`
}

// UpdateParams carry the fields to replace on an existing patient.
// Nil pointers leave the current value alone.
type UpdateParams struct {
	Name      *string `json:"name,omitempty"`
	Age       *int    `json:"age,omitempty"`
	Diagnosis *string `json:"diagnosis,omitempty"`
	Status    *string `json:"status,omitempty"`
	LastVisit *string `json:"last_visit,omitempty"`
	DoctorID  *string `json:"doctor_id,omitempty"`
}

// Viewer identifies who is asking, for role-aware visibility: doctors
// see their own (and unassigned) patients, patients see themselves,
// admins see everything.
type Viewer struct {
	UserID    string
	Role      string
	PatientID string
}
