package user

import (
	"fmt"
	"strings"

	"storefront/internal/pkg/errs"
)

type Role int

const (
	RoleUnknown Role = iota
	RoleCustomer
	RoleAgent
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleCustomer: "customer",
		RoleAgent:    "agent",
		RoleAdmin:    "admin",
	}
}

func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}

func ParseRole(s string) (Role, error) {
	for r, name := range getRoleStrings() {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return r, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}
