package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"sopclassify/internal/model"
)

// ErrInvalidCredentials is returned when no credential matches.
var ErrInvalidCredentials = errors.New("invalid credentials")

// CredentialVerifier checks an email/password pair and returns the
// matching session record. Implementations decide how passwords are
// stored; callers only see match / no-match.
type CredentialVerifier interface {
	Verify(ctx context.Context, email, password string) (*model.SessionRecord, error)
}

// Credential is one allow-list entry. Secret is either a plaintext
// password (StaticVerifier) or a bcrypt hash (BcryptVerifier).
type Credential struct {
	ID     string
	Email  string
	Secret string
	Role   string
}

// StaticVerifier matches against an in-memory list with plaintext
// secrets. This is the mock verifier; it must be replaced with
// BcryptVerifier (or a real user store) before any non-dev deployment.
type StaticVerifier struct {
	creds []Credential
}

func NewStaticVerifier(creds []Credential) *StaticVerifier {
	return &StaticVerifier{creds: creds}
}

// DefaultCredentials is the development allow-list.
func DefaultCredentials() []Credential {
	return []Credential{
		{ID: "1", Email: "admin@example.com", Secret: "admin123", Role: model.RoleAdmin},
		{ID: "2", Email: "user@example.com", Secret: "user123", Role: model.RoleUser},
	}
}

func (v *StaticVerifier) Verify(ctx context.Context, email, password string) (*model.SessionRecord, error) {
	for _, c := range v.creds {
		if c.Email == email && c.Secret == password {
			return &model.SessionRecord{ID: c.ID, Email: c.Email, Role: c.Role}, nil
		}
	}
	return nil, ErrInvalidCredentials
}

// BcryptVerifier matches against a list whose secrets are bcrypt hashes.
type BcryptVerifier struct {
	creds []Credential
}

func NewBcryptVerifier(creds []Credential) *BcryptVerifier {
	return &BcryptVerifier{creds: creds}
}

func (v *BcryptVerifier) Verify(ctx context.Context, email, password string) (*model.SessionRecord, error) {
	for _, c := range v.creds {
		if c.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(c.Secret), []byte(password)) == nil {
			return &model.SessionRecord{ID: c.ID, Email: c.Email, Role: c.Role}, nil
		}
		return nil, ErrInvalidCredentials
	}
	return nil, ErrInvalidCredentials
}

// AuthService validates credentials at login.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*model.SessionRecord, error)
}

type authService struct {
	verifier CredentialVerifier
}

// NewAuthService constructs an AuthService over the given verifier.
func NewAuthService(verifier CredentialVerifier) AuthService {
	return &authService{verifier: verifier}
}

func (s *authService) Login(ctx context.Context, email, password string) (*model.SessionRecord, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	return s.verifier.Verify(ctx, email, password)
}
