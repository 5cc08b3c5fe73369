package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/taskforge/taskforge/internal/shared"
)

// SignupInput carries the fields required to register a user.
type SignupInput struct {
	FirstName string
	LastName  string
	Email     string
	Mobile    string
	Password  string
}

// ExistsResult reports which unique fields are already taken. The two
// checks are independent: a request can collide on either, both or
// neither.
type ExistsResult struct {
	EmailTaken  bool
	MobileTaken bool
}

// Service wraps authentication business rules. It issues no tokens;
// composing the TokenManager after a successful signup or signin is the
// caller's job.
type Service struct {
	repo   Repository
	hasher *Hasher
}

// NewService constructs a new Service.
func NewService(repo Repository, hasher *Hasher) *Service {
	return &Service{repo: repo, hasher: hasher}
}

// NormalizeEmail lowercases and trims an email before any lookup or write.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup hashes the password and persists a new user. The store's
// unique constraints are the authoritative duplicate guard; the repo
// surfaces violations as ErrDuplicateEmail / ErrDuplicateMobile.
func (s *Service) Signup(ctx context.Context, input SignupInput) (*PublicUser, error) {
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}
	user := &User{
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Email:        NormalizeEmail(input.Email),
		Mobile:       strings.TrimSpace(input.Mobile),
		PasswordHash: hash,
	}
	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	return created.Public(), nil
}

// Signin validates email/password credentials. An unknown email and a
// wrong password both return ErrInvalidCredentials so the caller cannot
// tell them apart.
func (s *Service) Signin(ctx context.Context, email, password string) (*PublicUser, error) {
	user, err := s.repo.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrInvalidCredentials
		}
		return nil, err
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, shared.ErrInvalidCredentials
	}
	return user.Public(), nil
}

// FindByID fetches a user by id with the password hash stripped.
func (s *Service) FindByID(ctx context.Context, id int64) (*PublicUser, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Public(), nil
}

// UserExists checks whether the email or mobile is already registered.
// The two lookups run concurrently. This is a UX optimization for a
// friendlier error; the store constraint remains the real guarantee.
func (s *Service) UserExists(ctx context.Context, email, mobile string) (ExistsResult, error) {
	var result ExistsResult
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := s.repo.FindByEmail(ctx, NormalizeEmail(email))
		if errors.Is(err, shared.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		result.EmailTaken = true
		return nil
	})
	g.Go(func() error {
		_, err := s.repo.FindByMobile(ctx, strings.TrimSpace(mobile))
		if errors.Is(err, shared.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		result.MobileTaken = true
		return nil
	})
	if err := g.Wait(); err != nil {
		return ExistsResult{}, err
	}
	return result, nil
}
