package auth

import (
	"testing"
	"time"

	"cryptofx/internal/user"

	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return NewService(user.NewStore(), "cryptofx-test", []byte("test-secret"), time.Hour)
}

func TestRegisterValidation(t *testing.T) {
	svc := newTestService()

	cases := []struct {
		name     string
		email    string
		userName string
		password string
		confirm  string
		wantErr  error
	}{
		{"missing email", "", "Ada", "longenough", "longenough", ErrMissingFields},
		{"missing name", "ada@example.com", "  ", "longenough", "longenough", ErrMissingFields},
		{"missing password", "ada@example.com", "Ada", "", "", ErrMissingFields},
		{"mismatch", "ada@example.com", "Ada", "longenough", "different", ErrPasswordMismatch},
		{"too short", "ada@example.com", "Ada", "short", "short", ErrPasswordTooShort},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.Register(tc.email, tc.userName, tc.password, tc.confirm)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestService()

	u, token, err := svc.Register("ada@example.com", "Ada Lovelace", "correct horse", "correct horse")
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)
	require.Equal(t, "ada@example.com", u.Email)
	require.NotEmpty(t, token)

	userID, err := svc.ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, u.ID, userID)

	loginToken, err := svc.Login("ada@example.com", "correct horse")
	require.NoError(t, err)
	userID, err = svc.ParseToken(loginToken)
	require.NoError(t, err)
	require.Equal(t, u.ID, userID)

	_, err = svc.Login("ada@example.com", "wrong password")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login("nobody@example.com", "correct horse")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestService()

	_, _, err := svc.Register("ada@example.com", "Ada", "correct horse", "correct horse")
	require.NoError(t, err)
	_, _, err = svc.Register("ada@example.com", "Other Ada", "correct horse", "correct horse")
	require.ErrorIs(t, err, user.ErrEmailTaken)
}

func TestParseTokenRejectsForeignSigner(t *testing.T) {
	svc := newTestService()
	other := NewService(user.NewStore(), "cryptofx-test", []byte("other-secret"), time.Hour)

	_, token, err := other.Register("eve@example.com", "Eve", "correct horse", "correct horse")
	require.NoError(t, err)

	_, err = svc.ParseToken(token)
	require.Error(t, err)
}
