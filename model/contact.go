package model

import "time"

// ContactEntity represents the contacts table entity. Every contact belongs
// to exactly one user and all queries are scoped by UserID.
type ContactEntity struct {
	ID          uint64     `db:"id" json:"id"`
	UserID      uint64     `db:"user_id" json:"-"`
	FirstName   string     `db:"first_name" json:"first_name"`
	LastName    string     `db:"last_name" json:"last_name"`
	Email       string     `db:"email" json:"email"`
	PhoneNumber string     `db:"phone_number" json:"phone_number"`
	Birthdate   Date       `db:"birthdate" json:"birthdate"`
	Info        string     `db:"info" json:"info"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// CelebrationRecord is a contact projected with its effective celebration
// date. It is assembled per query and never stored.
type CelebrationRecord struct {
	ContactEntity
	CelebrationDate Date `json:"celebration_date"`
}

// ContactRequest for creating or fully replacing a contact. Birthdate must
// not be in the future (custom "pastdate" validation).
type ContactRequest struct {
	FirstName   string  `json:"first_name" validate:"required,max=50"`
	LastName    string  `json:"last_name" validate:"required,max=50"`
	Email       string  `json:"email" validate:"required,email,max=150"`
	PhoneNumber string  `json:"phone_number" validate:"required,max=40"`
	Birthdate   Date    `json:"birthdate" validate:"required,pastdate"`
	Info        *string `json:"info,omitempty"`
}

// ContactPatchRequest for partial updates. All fields optional; the
// application layer rejects a patch with no fields set.
type ContactPatchRequest struct {
	FirstName   *string `json:"first_name,omitempty" validate:"omitempty,max=50"`
	LastName    *string `json:"last_name,omitempty" validate:"omitempty,max=50"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email,max=150"`
	PhoneNumber *string `json:"phone_number,omitempty" validate:"omitempty,max=40"`
	Birthdate   *Date   `json:"birthdate,omitempty" validate:"omitempty,pastdate"`
	Info        *string `json:"info,omitempty"`
}

// IsEmpty reports whether the patch carries no fields at all.
func (r *ContactPatchRequest) IsEmpty() bool {
	return r.FirstName == nil && r.LastName == nil && r.Email == nil &&
		r.PhoneNumber == nil && r.Birthdate == nil && r.Info == nil
}

// ContactFilter holds optional case-insensitive substring patterns. An empty
// field imposes no constraint.
type ContactFilter struct {
	FirstName string
	LastName  string
	Email     string
}

const (
	PaginationDefaultLimit = 50
	PaginationMaxLimit     = 1000
)

// Pagination describes an offset/limit window over a result set. Out of
// range values are a caller error, not silently clamped.
type Pagination struct {
	Skip  int `validate:"gte=0"`
	Limit int `validate:"gte=1,lte=1000"`
}

// ContactListResponse is the paginated envelope for contact listings.
type ContactListResponse struct {
	Total int64           `json:"total"`
	Skip  int             `json:"skip"`
	Limit int             `json:"limit"`
	Data  []ContactEntity `json:"data"`
}

// CelebrationListResponse is the paginated envelope for upcoming birthday
// celebrations.
type CelebrationListResponse struct {
	Total int64               `json:"total"`
	Skip  int                 `json:"skip"`
	Limit int                 `json:"limit"`
	Data  []CelebrationRecord `json:"data"`
}
