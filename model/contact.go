package model

// ContactEntity represents the contacts table entity. Username is the
// owner key; every contact belongs to exactly one user.
type ContactEntity struct {
	ID        uint64  `db:"id" json:"id"`
	FirstName string  `db:"first_name" json:"first_name"`
	LastName  *string `db:"last_name" json:"last_name,omitempty"`
	Email     *string `db:"email" json:"email,omitempty"`
	Phone     *string `db:"phone" json:"phone,omitempty"`
	Username  string  `db:"username" json:"username"`
}

// CreateContactRequest for creating a contact
type CreateContactRequest struct {
	FirstName string  `json:"firstName" validate:"required,max=100"`
	LastName  *string `json:"lastName" validate:"omitempty,min=1,max=100"`
	Email     *string `json:"email" validate:"omitempty,min=1,max=100,email"`
	Phone     *string `json:"phone" validate:"omitempty,min=1,max=20"`
}

// UpdateContactRequest replaces every mutable contact field.
type UpdateContactRequest struct {
	FirstName string  `json:"firstName" validate:"required,max=100"`
	LastName  *string `json:"lastName" validate:"omitempty,min=1,max=100"`
	Email     *string `json:"email" validate:"omitempty,min=1,max=100,email"`
	Phone     *string `json:"phone" validate:"omitempty,min=1,max=20"`
}

// SearchContactRequest holds the optional search filters plus pagination.
// Empty filter strings mean the clause is omitted entirely.
type SearchContactRequest struct {
	Name  string `validate:"omitempty,min=1"`
	Email string `validate:"omitempty,min=1"`
	Phone string `validate:"omitempty,min=1"`
	Page  int    `validate:"min=1"`
	Size  int    `validate:"min=1,max=100"`
}

type ContactResponse struct {
	ID        uint64  `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  *string `json:"lastName,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

// ToContactResponse maps a contact entity to its API shape.
func ToContactResponse(c *ContactEntity) *ContactResponse {
	return &ContactResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
	}
}

// ContactSearchResult is the application-layer search output: one page of
// contacts plus the paging block computed from the total match count.
type ContactSearchResult struct {
	Items  []ContactResponse
	Paging Paging
}
