package user

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/MikeMC777/cafe-orders/internal/apperr"
)

// StaffCredentials is the single configured admin principal.
type StaffCredentials struct {
	Username string
	Password string
}

type Service struct {
	repo   Repository
	tokens *Tokens
	staff  StaffCredentials
	log    *zap.Logger
}

func NewService(repo Repository, tokens *Tokens, staff StaffCredentials, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: repo, tokens: tokens, staff: staff, log: log.Named("user")}
}

// Verify resolves a session credential; nil means anonymous.
func (s *Service) Verify(token string) *Principal { return s.tokens.Verify(token) }

// Login authenticates a caller and issues a session credential.
func (s *Service) Login(ctx context.Context, in LoginRequest) (Public, string, error) {
	phone := strings.TrimSpace(in.Phone)
	if phone == "" || in.Password == "" {
		return Public{}, "", apperr.Validation("phone and password are required")
	}
	if in.IsStaff {
		return s.loginStaff(ctx, phone, in.Password)
	}

	u, err := s.repo.GetByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Public{}, "", apperr.NotFound("user not found")
		}
		return Public{}, "", apperr.Internal("login failed", err)
	}
	// the staff account is not reachable through the customer path
	if u.Role != RoleCustomer {
		return Public{}, "", apperr.NotFound("user not found")
	}
	if !CheckPassword(u.PasswordHash, in.Password) {
		return Public{}, "", apperr.Unauthorized("invalid password").WithCode(apperr.CodeInvalidCredentials)
	}
	return s.issue(u)
}

func (s *Service) loginStaff(ctx context.Context, phone, password string) (Public, string, error) {
	if !s.staffMatches(phone, password) {
		s.log.Warn("staff login rejected", zap.String("phone", phone))
		return Public{}, "", apperr.Unauthorized("invalid staff credentials").WithCode(apperr.CodeInvalidCredentials)
	}
	u, err := s.EnsureStaff(ctx)
	if err != nil {
		return Public{}, "", err
	}
	return s.issue(u)
}

func (s *Service) staffMatches(phone, password string) bool {
	if s.staff.Username == "" || s.staff.Password == "" {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(phone), []byte(s.staff.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.staff.Password)) == 1
	return userOK && passOK
}

// EnsureStaff materializes the staff user if it does not exist yet.
// Safe to call concurrently and on every start.
func (s *Service) EnsureStaff(ctx context.Context) (*User, error) {
	if s.staff.Username == "" {
		return nil, apperr.Internal("staff principal is not configured", nil)
	}
	u, err := s.repo.GetByPhone(ctx, s.staff.Username)
	switch {
	case err == nil:
		if u.Role != RoleStaff {
			return nil, apperr.Conflict("staff phone is registered to a customer")
		}
		return u, nil
	case !errors.Is(err, ErrNotFound):
		return nil, apperr.Internal("lookup staff", err)
	}

	hash, err := HashPassword(s.staff.Password)
	if err != nil {
		return nil, apperr.Internal("hash error", err)
	}
	u = &User{
		ID:           uuid.NewString(),
		Role:         RoleStaff,
		Phone:        s.staff.Username,
		Name:         "Staff",
		PasswordHash: hash,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, ErrAlreadyExist) {
			// lost a race with another instance; read the winner back
			existing, gerr := s.repo.GetByPhone(ctx, s.staff.Username)
			if gerr != nil {
				return nil, apperr.Internal("lookup staff", gerr)
			}
			return existing, nil
		}
		return nil, apperr.Internal("create staff", err)
	}
	s.log.Info("initialized staff account", zap.String("phone", u.Phone))
	return u, nil
}

// Register creates a customer account and signs it in.
func (s *Service) Register(ctx context.Context, in SignupRequest) (Public, string, error) {
	phone := strings.TrimSpace(in.Phone)
	name := strings.TrimSpace(in.Name)
	if phone == "" || name == "" || in.Password == "" {
		return Public{}, "", apperr.Validation("phone, name, and password are required")
	}
	if len(in.Password) > MaxPasswordBytes {
		return Public{}, "", apperr.Validation(fmt.Sprintf("password must be at most %d bytes", MaxPasswordBytes))
	}

	if _, err := s.repo.GetByPhone(ctx, phone); err == nil {
		return Public{}, "", apperr.Conflict("phone number already registered")
	} else if !errors.Is(err, ErrNotFound) {
		return Public{}, "", apperr.Internal("signup failed", err)
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return Public{}, "", apperr.Internal("hash error", err)
	}
	u := &User{
		ID:           uuid.NewString(),
		Role:         RoleCustomer,
		Phone:        phone,
		Name:         name,
		PhotoURL:     strings.TrimSpace(in.PhotoURL),
		PasswordHash: hash,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, ErrAlreadyExist) {
			return Public{}, "", apperr.Conflict("phone number already registered")
		}
		return Public{}, "", apperr.Internal("signup failed", err)
	}
	s.log.Info("customer registered", zap.String("user_id", u.ID))
	return s.issue(u)
}

// Me returns the caller's profile, or nil when anonymous or the account
// no longer exists.
func (s *Service) Me(ctx context.Context, p *Principal) (*Public, error) {
	if p == nil {
		return nil, nil
	}
	u, err := s.repo.GetByID(ctx, p.UserID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, apperr.Internal("load profile", err)
	}
	out := u.Public()
	return &out, nil
}

func (s *Service) issue(u *User) (Public, string, error) {
	token, err := s.tokens.Issue(u.ID, u.Role)
	if err != nil {
		return Public{}, "", apperr.Internal("issue session", err)
	}
	return u.Public(), token, nil
}
