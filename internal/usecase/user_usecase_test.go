package usecase_test

import (
	"context"
	"testing"

	"github.com/DRSN-tech/eshop-backend/internal/domain"
	"github.com/DRSN-tech/eshop-backend/internal/usecase"
	"github.com/DRSN-tech/eshop-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (fakeHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return e.ErrInvalidCredentials
	}
	return nil
}

type fakeIssuer struct {
	lastUserID  int64
	lastIsAdmin bool
}

func (f *fakeIssuer) Issue(userID int64, isAdmin bool) (string, error) {
	f.lastUserID = userID
	f.lastIsAdmin = isAdmin
	return "token", nil
}

func newUserUC(userRepo *fakeUserRepo) (*usecase.UserUseCase, *fakeIssuer) {
	issuer := &fakeIssuer{}
	return usecase.NewUserUC(userRepo, fakeHasher{}, issuer, nopLogger{}), issuer
}

func TestRegister_ForcesNonAdmin(t *testing.T) {
	uc, _ := newUserUC(newFakeUserRepo())

	user, err := uc.Register(context.Background(), &usecase.CreateUserReq{
		Name:     "Mallory",
		Email:    "Mallory@Example.com",
		Password: "secret",
		IsAdmin:  true,
	})

	require.NoError(t, err)
	assert.False(t, user.IsAdmin, "self-registration must never grant admin")
	assert.Equal(t, "mallory@example.com", user.Email)
}

func TestCreateUser_HonorsAdminFlag(t *testing.T) {
	uc, _ := newUserUC(newFakeUserRepo())

	user, err := uc.CreateUser(context.Background(), &usecase.CreateUserReq{
		Name:     "Admin",
		Email:    "admin@example.com",
		Password: "secret",
		IsAdmin:  true,
	})

	require.NoError(t, err)
	assert.True(t, user.IsAdmin)
}

func TestCreateUser_MissingFields(t *testing.T) {
	uc, _ := newUserUC(newFakeUserRepo())

	_, err := uc.CreateUser(context.Background(), &usecase.CreateUserReq{
		Email:    "nobody@example.com",
		Password: "secret",
	})

	assert.ErrorIs(t, err, e.ErrMissingFields)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	existing := domain.NewUser("First", "taken@example.com", "hashed:secret", "", false, "", "", "", "", "")
	existing.ID = 1

	uc, _ := newUserUC(newFakeUserRepo(existing))

	_, err := uc.CreateUser(context.Background(), &usecase.CreateUserReq{
		Name:     "Second",
		Email:    "taken@example.com",
		Password: "secret",
	})

	assert.ErrorIs(t, err, e.ErrDuplicateEmail)
}

func TestLogin_Success(t *testing.T) {
	user := domain.NewUser("Alice", "alice@example.com", "hashed:secret", "", true, "", "", "", "", "")
	user.ID = 7

	uc, issuer := newUserUC(newFakeUserRepo(user))

	res, err := uc.Login(context.Background(), &usecase.LoginReq{
		Email:    "  Alice@Example.com ",
		Password: "secret",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), res.UserID)
	assert.Equal(t, "token", res.Token)
	assert.Equal(t, int64(7), issuer.lastUserID)
	assert.True(t, issuer.lastIsAdmin)
}

func TestLogin_IndistinguishableFailures(t *testing.T) {
	user := domain.NewUser("Alice", "alice@example.com", "hashed:secret", "", false, "", "", "", "", "")
	user.ID = 7

	uc, _ := newUserUC(newFakeUserRepo(user))

	_, unknownEmailErr := uc.Login(context.Background(), &usecase.LoginReq{
		Email:    "bob@example.com",
		Password: "secret",
	})
	_, wrongPasswordErr := uc.Login(context.Background(), &usecase.LoginReq{
		Email:    "alice@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, unknownEmailErr, e.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPasswordErr, e.ErrInvalidCredentials)
}
