package user

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is a storefront account. Email is unique and compared lowercased.
type User struct {
	id        kernel.UUID
	firstName string
	lastName  string
	email     string
	phone     string
	role      Role
	password  PasswordHash
	createdAt time.Time

	isConstructed bool
}

func NewUser(
	id kernel.UUID,
	firstName, lastName, email, phone string,
	role Role,
	password PasswordHash,
	createdAt time.Time,
) (*User, error) {
	u := &User{
		firstName:     strings.TrimSpace(firstName),
		lastName:      strings.TrimSpace(lastName),
		phone:         strings.TrimSpace(phone),
		password:      password,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	var passwordErr error
	if password.hash == "" {
		passwordErr = errs.NewValueIsRequiredError("password")
	}

	if err := errors.Join(
		u.setID(id),
		u.setFirstName(u.firstName),
		u.setEmail(email),
		u.setRole(role),
		passwordErr,
	); err != nil {
		return nil, err
	}

	return u, nil
}

func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() kernel.UUID { return u.id }
func (u *User) FirstName() string { return u.firstName }
func (u *User) LastName() string { return u.lastName }
func (u *User) Email() string { return u.email }
func (u *User) Phone() string { return u.phone }
func (u *User) Role() Role { return u.role }
func (u *User) PasswordHash() PasswordHash { return u.password }
func (u *User) CreatedAt() time.Time { return u.createdAt }

func (u *User) FullName() string {
	return strings.TrimSpace(u.firstName + " " + u.lastName)
}

// CheckPassword reports whether plain is the user's password.
func (u *User) CheckPassword(plain string) bool {
	return u.password.Matches(plain)
}

// PromoteToAgent gives a customer the agent role. Admins keep theirs.
func (u *User) PromoteToAgent() error {
	switch u.role {
	case RoleCustomer:
		u.role = RoleAgent
		return nil
	case RoleAgent:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", errors.New("only customers can become agents"))
	}
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setFirstName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("first name")
	}
	return nil
}

func (u *User) setEmail(email string) error {
	normalized, err := NormalizeEmail(email)
	if err != nil {
		return err
	}
	u.email = normalized
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

// NormalizeEmail trims and lowercases an address and checks its syntax.
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", errs.NewValueIsRequiredError("email")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", errs.NewValueIsInvalidErrorWithCause("email", errors.New("not a valid address"))
	}
	return email, nil
}
