package model

// AddressEntity represents the addresses table entity. ContactID is the
// owner key; access is scoped through the parent contact's owner.
type AddressEntity struct {
	ID         uint64  `db:"id" json:"id"`
	Street     *string `db:"street" json:"street,omitempty"`
	City       *string `db:"city" json:"city,omitempty"`
	Province   *string `db:"province" json:"province,omitempty"`
	Country    string  `db:"country" json:"country"`
	PostalCode string  `db:"postal_code" json:"postal_code"`
	ContactID  uint64  `db:"contact_id" json:"contact_id"`
}

// CreateAddressRequest for creating an address under a contact
type CreateAddressRequest struct {
	Street     *string `json:"street" validate:"omitempty,min=1,max=255"`
	City       *string `json:"city" validate:"omitempty,min=1,max=100"`
	Province   *string `json:"province" validate:"omitempty,min=1,max=100"`
	Country    string  `json:"country" validate:"required,max=100"`
	PostalCode string  `json:"postalCode" validate:"required,max=10"`
}

// UpdateAddressRequest replaces every mutable address field.
type UpdateAddressRequest struct {
	Street     *string `json:"street" validate:"omitempty,min=1,max=255"`
	City       *string `json:"city" validate:"omitempty,min=1,max=100"`
	Province   *string `json:"province" validate:"omitempty,min=1,max=100"`
	Country    string  `json:"country" validate:"required,max=100"`
	PostalCode string  `json:"postalCode" validate:"required,max=10"`
}

type AddressResponse struct {
	ID         uint64  `json:"id"`
	Street     *string `json:"street,omitempty"`
	City       *string `json:"city,omitempty"`
	Province   *string `json:"province,omitempty"`
	Country    string  `json:"country"`
	PostalCode string  `json:"postalCode"`
}

// ToAddressResponse maps an address entity to its API shape.
func ToAddressResponse(a *AddressEntity) *AddressResponse {
	return &AddressResponse{
		ID:         a.ID,
		Street:     a.Street,
		City:       a.City,
		Province:   a.Province,
		Country:    a.Country,
		PostalCode: a.PostalCode,
	}
}
