package kernel

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Role represents the account type of a marketplace user.
// Identity and role resolution is performed by the external authentication
// collaborator; the domain only consumes the resolved result.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleCustomer identifies users who purchase offer packages.
	RoleCustomer

	// RoleBusiness identifies users who publish offers and fulfil orders.
	RoleBusiness
)

// getRoleStrings returns a map of Role values to their string representations.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "unknown",
		RoleCustomer: "customer",
		RoleBusiness: "business",
	}
}

// RoleFromString parses a role from its wire representation ("customer" or "business").
// Returns an error for any other value.
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if role != RoleUnknown && str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
// Valid roles are RoleCustomer and RoleBusiness; RoleUnknown is invalid.
func (r Role) Validate() error {
	if r != RoleCustomer && r != RoleBusiness {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
// Implements the fmt.Stringer interface and is safe to call on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// Actor is a value object identifying the caller of a domain operation.
// It pairs the caller's user ID with their resolved role and is used by
// authorization checks to decide which state transitions the caller may drive.
//
// The zero value of Actor is invalid; use NewActor.
//
// Example usage:
//
//	actor, err := kernel.NewActor(userID, kernel.RoleCustomer)
//	if err != nil {
//	    // handle invalid identity
//	}
type Actor struct {
	id   UUID
	role Role
}

// NewActor creates an Actor from a resolved identity and role.
// Returns an error if the ID is a zero UUID or the role is not a valid role.
func NewActor(id UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: role}, nil
}

// ID returns the actor's user identifier.
func (a Actor) ID() UUID {
	return a.id
}

// Role returns the actor's resolved role.
func (a Actor) Role() Role {
	return a.role
}

// IsCustomer reports whether the actor has the customer role.
func (a Actor) IsCustomer() bool {
	return a.role == RoleCustomer
}

// IsBusiness reports whether the actor has the business role.
func (a Actor) IsBusiness() bool {
	return a.role == RoleBusiness
}

// Validate checks that the actor carries a valid identity and role.
func (a Actor) Validate() error {
	if err := a.id.Validate(); err != nil {
		return err
	}
	return a.role.Validate()
}
