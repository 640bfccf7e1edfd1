package models

// RoleType defines the account role type
type RoleType string

const (
	RoleStudent    RoleType = "student"
	RoleInstructor RoleType = "instructor"
)

// Valid reports whether the role is one of the two known roles.
func (r RoleType) Valid() bool {
	return r == RoleStudent || r == RoleInstructor
}
