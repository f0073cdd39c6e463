package domain

import "time"

// User roles and statuses
const (
	UserRoleAdmin = "admin"
	UserRoleUser  = "user"

	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User is an application account. Authentication and sessions are handled
// by an external collaborator; this service only manages the records.
type User struct {
	ID         int64     `json:"id" db:"id"`
	Username   string    `json:"username" db:"username"`
	Name       string    `json:"name" db:"name"`
	Email      string    `json:"email" db:"email"`
	Role       string    `json:"role" db:"role"`
	Status     string    `json:"status" db:"status"`
	Privileges string    `json:"privileges" db:"privileges"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	LastLogin  *string   `json:"last_login" db:"last_login"`
}

type CreateUserRequest struct {
	Username   string `json:"username" validate:"required"`
	Password   string `json:"password" validate:"required,min=6"`
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Role       string `json:"role" validate:"omitempty,oneof=admin user"`
	Privileges string `json:"privileges"`
}

type UpdateUserRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Role       string `json:"role" validate:"required,oneof=admin user"`
	Status     string `json:"status" validate:"required,oneof=active inactive"`
	Privileges string `json:"privileges" validate:"required"`
}
