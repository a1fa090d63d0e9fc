package model

// UserEntity represents the users table entity. Token is nil when the user
// is logged out; at most one token is stored per user.
type UserEntity struct {
	Username     string  `db:"username" json:"username"`
	PasswordHash string  `db:"password" json:"-"`
	Name         string  `db:"name" json:"name"`
	Token        *string `db:"token" json:"-"`
}

// UserFilter for querying users
type UserFilter struct {
	Username string
	Token    string
}

// RegisterRequest for user registration
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,min=6,max=100"`
	Name     string `json:"name" validate:"required,max=100"`
}

// LoginRequest for user login
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=100"`
}

// UpdateUserRequest carries a partial profile update; nil fields keep
// their stored value.
type UpdateUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=100"`
	Password *string `json:"password" validate:"omitempty,min=6,max=100"`
}

type UserResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Token    string `json:"token,omitempty"`
}
