package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/artifyhq/artify-backend/internal/infrastructure/memstore"
	"github.com/artifyhq/artify-backend/pkg/helpers"
)

func newUserService(t *testing.T) *UserService {
	t.Helper()
	jwt := &helpers.JWTManager{Secret: []byte("test-secret"), TTL: time.Hour}
	return NewUserService(memstore.NewUserStore(), jwt, nil)
}

func TestRegisterSuccess(t *testing.T) {
	t.Parallel()

	svc := newUserService(t)
	res, err := svc.Register("alice", "a@x.com", "secret123")
	require.NoError(t, err)
	require.Equal(t, int64(1), res.User.ID)
	require.Equal(t, "alice", res.User.Username)
	require.Equal(t, "a@x.com", res.User.Email)
	require.NotEmpty(t, res.Token)

	// the issued token is immediately accepted
	claims, err := svc.JWT.Parse(res.Token)
	require.NoError(t, err)
	require.Equal(t, res.User.ID, claims.UserID)

	// the stored hash is not the plain password
	stored, err := svc.Repo.GetByEmail("a@x.com")
	require.NoError(t, err)
	require.NotEqual(t, "secret123", stored.Password)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Parallel()

	svc := newUserService(t)
	_, err := svc.Register("alice", "a@x.com", "secret123")
	require.NoError(t, err)

	// duplicate email fails regardless of username
	_, err = svc.Register("someone-else", "a@x.com", "secret123")
	require.ErrorIs(t, err, ErrEmailExists)

	_, err = svc.Register("alice", "fresh@x.com", "secret123")
	require.ErrorIs(t, err, ErrUsernameExists)
}

func TestRegisterMissingFields(t *testing.T) {
	t.Parallel()

	svc := newUserService(t)
	for _, tc := range []struct{ username, email, password string }{
		{"", "a@x.com", "secret123"},
		{"alice", "", "secret123"},
		{"alice", "a@x.com", ""},
	} {
		_, err := svc.Register(tc.username, tc.email, tc.password)
		require.ErrorIs(t, err, ErrMissingFields)
	}
}

func TestLoginFailuresAreUniform(t *testing.T) {
	t.Parallel()

	svc := newUserService(t)
	_, err := svc.Register("alice", "a@x.com", "secret123")
	require.NoError(t, err)

	res, err := svc.Login("a@x.com", "secret123")
	require.NoError(t, err)
	require.Equal(t, "alice", res.User.Username)

	_, wrongPwd := svc.Login("a@x.com", "wrong-password")
	_, unknownEmail := svc.Login("nobody@x.com", "secret123")
	require.ErrorIs(t, wrongPwd, ErrInvalidCredentials)
	require.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	// the two failures are indistinguishable
	require.Equal(t, wrongPwd, unknownEmail)
}
