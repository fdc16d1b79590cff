// Package auth signs and verifies the HS256 access tokens handed out at login.
package auth

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any token that fails to parse, verify or
// carry a usable identity.
var ErrInvalidToken = errors.New("invalid access token")

const issuer = "storefront"

type claims struct {
	Role    string `json:"role"`
	AgentID string `json:"agent_id,omitempty"`
	jwt.RegisteredClaims
}

// JWTIssuer implements ports.TokenIssuer with HMAC-SHA256 signed JWTs.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
	clock  kernel.Clock
}

func NewJWTIssuer(secret string, ttl time.Duration, clock kernel.Clock) (*JWTIssuer, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("jwt secret")
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("jwt ttl", ttl, "1ns", "unbounded")
	}
	return &JWTIssuer{secret: []byte(secret), ttl: ttl, clock: clock}, nil
}

func (i *JWTIssuer) Issue(identity ports.Identity) (string, error) {
	if err := errors.Join(identity.UserID.Validate(), identity.Role.Validate()); err != nil {
		return "", err
	}

	now := i.clock.Now()
	c := claims{
		Role: identity.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   identity.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	if identity.IsAgent() {
		c.AgentID = identity.AgentID.String()
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return signed, nil
}

func (i *JWTIssuer) Parse(token string) (ports.Identity, error) {
	var c claims
	_, err := jwt.ParseWithClaims(token, &c,
		func(*jwt.Token) (any, error) { return i.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.clock.Now),
	)
	if err != nil {
		return ports.Identity{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	userID, err := kernel.UUIDFromString(c.Subject)
	if err != nil {
		return ports.Identity{}, fmt.Errorf("%w: subject: %w", ErrInvalidToken, err)
	}
	role, err := user.ParseRole(c.Role)
	if err != nil {
		return ports.Identity{}, fmt.Errorf("%w: role: %w", ErrInvalidToken, err)
	}

	identity := ports.Identity{UserID: userID, Role: role}
	if role == user.RoleAgent {
		if identity.AgentID, err = kernel.UUIDFromString(c.AgentID); err != nil {
			return ports.Identity{}, fmt.Errorf("%w: agent: %w", ErrInvalidToken, err)
		}
	}
	return identity, nil
}
