package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

type Role string

const (
	RoleProprietor Role = "Proprietor"
	RoleManager    Role = "Manager"
	RoleSupervisor Role = "Supervisor"
)

var Roles = []Role{RoleProprietor, RoleManager, RoleSupervisor}

var ErrInvalidCredentials = errors.New("invalid role or password")

func ParseRole(s string) (Role, error) {
	for _, r := range Roles {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: unknown role %q", ErrInvalidCredentials, s)
}

// RoleGate checks the one shared password configured for each role.
type RoleGate struct {
	hashes map[Role][]byte
}

// NewRoleGate hashes the configured passwords once at startup.
func NewRoleGate(passwords map[Role]string, cost int) (*RoleGate, error) {
	g := &RoleGate{hashes: make(map[Role][]byte, len(passwords))}
	for role, pw := range passwords {
		if pw == "" {
			return nil, fmt.Errorf("empty password for role %s", role)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(pw), cost)
		if err != nil {
			return nil, fmt.Errorf("hash %s password: %w", role, err)
		}
		g.hashes[role] = hash
	}
	return g, nil
}

func (g *RoleGate) Authenticate(role Role, password string) error {
	hash, ok := g.hashes[role]
	if !ok {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
