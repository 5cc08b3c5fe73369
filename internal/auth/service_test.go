package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taskforge/taskforge/internal/shared"
)

type memoryRepo struct {
	users  map[int64]*User
	nextID int64
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{users: make(map[int64]*User)}
}

func (r *memoryRepo) Create(ctx context.Context, user *User) (*User, error) {
	// Mirrors the store's unique constraints, email checked first.
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, shared.ErrDuplicateEmail
		}
	}
	for _, u := range r.users {
		if u.Mobile == user.Mobile {
			return nil, shared.ErrDuplicateMobile
		}
	}
	r.nextID++
	created := *user
	created.ID = r.nextID
	r.users[created.ID] = &created
	return &created, nil
}

func (r *memoryRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memoryRepo) FindByMobile(ctx context.Context, mobile string) (*User, error) {
	for _, u := range r.users {
		if u.Mobile == mobile {
			return u, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memoryRepo) FindByID(ctx context.Context, id int64) (*User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return u, nil
}

func signupFixture() SignupInput {
	return SignupInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "Ada@Example.com",
		Mobile:    "+1 (555) 123-4567",
		Password:  "Valid123",
	}
}

func TestSignupNormalizesAndStripsHash(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo, NewHasher())

	user, err := svc.Signup(context.Background(), signupFixture())
	require.NoError(t, err)
	require.Equal(t, "ada@example.com", user.Email)
	require.Equal(t, "Ada", user.FirstName)
	require.NotZero(t, user.ID)

	stored := repo.users[user.ID]
	require.NotEmpty(t, stored.PasswordHash)
	require.NotEqual(t, "Valid123", stored.PasswordHash)
}

func TestSignupDuplicateEmail(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo, NewHasher())

	_, err := svc.Signup(context.Background(), signupFixture())
	require.NoError(t, err)

	dup := signupFixture()
	dup.Mobile = "+1 (555) 999-0000"
	_, err = svc.Signup(context.Background(), dup)
	require.ErrorIs(t, err, shared.ErrDuplicateEmail)
	require.Len(t, repo.users, 1)
}

func TestSignupDuplicateMobile(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo, NewHasher())

	_, err := svc.Signup(context.Background(), signupFixture())
	require.NoError(t, err)

	dup := signupFixture()
	dup.Email = "other@example.com"
	_, err = svc.Signup(context.Background(), dup)
	require.ErrorIs(t, err, shared.ErrDuplicateMobile)
	require.Len(t, repo.users, 1)
}

func TestSigninSuccess(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo, NewHasher())

	created, err := svc.Signup(context.Background(), signupFixture())
	require.NoError(t, err)

	// Lookup is case-insensitive via normalization.
	user, err := svc.Signin(context.Background(), "ADA@example.COM", "Valid123")
	require.NoError(t, err)
	require.Equal(t, created.ID, user.ID)
}

func TestSigninMissesAreIndistinguishable(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo, NewHasher())

	_, err := svc.Signup(context.Background(), signupFixture())
	require.NoError(t, err)

	_, wrongPassword := svc.Signin(context.Background(), "ada@example.com", "Wrong123")
	_, unknownEmail := svc.Signin(context.Background(), "nobody@example.com", "Valid123")

	require.ErrorIs(t, wrongPassword, shared.ErrInvalidCredentials)
	require.ErrorIs(t, unknownEmail, shared.ErrInvalidCredentials)
	require.Equal(t, wrongPassword, unknownEmail)
}

func TestFindByIDStripsHash(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo, NewHasher())

	created, err := svc.Signup(context.Background(), signupFixture())
	require.NoError(t, err)

	user, err := svc.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, created.Email, user.Email)

	_, err = svc.FindByID(context.Background(), 999)
	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestUserExistsMatrix(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo, NewHasher())

	_, err := svc.Signup(context.Background(), signupFixture())
	require.NoError(t, err)

	cases := []struct {
		name   string
		email  string
		mobile string
		want   ExistsResult
	}{
		{"both taken", "ada@example.com", "+1 (555) 123-4567", ExistsResult{EmailTaken: true, MobileTaken: true}},
		{"email only", "ada@example.com", "+1 (555) 999-0000", ExistsResult{EmailTaken: true}},
		{"mobile only", "new@example.com", "+1 (555) 123-4567", ExistsResult{MobileTaken: true}},
		{"neither", "new@example.com", "+1 (555) 999-0000", ExistsResult{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.UserExists(context.Background(), tc.email, tc.mobile)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}
