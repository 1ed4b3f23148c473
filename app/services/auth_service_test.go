package services_test

import (
	"context"
	"testing"

	"github.com/shashiranjanraj/bazaar/app/models"
	"github.com/shashiranjanraj/bazaar/app/repositories"
	"github.com/shashiranjanraj/bazaar/app/services"
	"github.com/shashiranjanraj/bazaar/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeUserDirectory is an in-memory stand-in for the Mongo user repository.
type fakeUserDirectory struct {
	users map[string]models.User
}

func newFakeUserDirectory() *fakeUserDirectory {
	return &fakeUserDirectory{users: make(map[string]models.User)}
}

func (f *fakeUserDirectory) FindByEmail(_ context.Context, email string) (models.User, error) {
	user, ok := f.users[email]
	if !ok {
		return models.User{}, repositories.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserDirectory) Create(_ context.Context, user *models.User) error {
	user.ID = primitive.NewObjectID()
	f.users[user.Email] = *user
	return nil
}

func TestRegisterHashesAndStripsPassword(t *testing.T) {
	dir := newFakeUserDirectory()
	svc := services.NewAuthService(dir)

	user, token, err := svc.Register(context.Background(), "a@x.com", "abcdefgh")
	require.NoError(t, err)

	assert.NotEmpty(t, token)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Empty(t, user.Password, "returned user must not carry the hash")

	stored := dir.users["a@x.com"]
	assert.NotEqual(t, "abcdefgh", stored.Password, "plaintext must never be stored")
	assert.True(t, auth.CheckPassword(stored.Password, "abcdefgh"))
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	dir := newFakeUserDirectory()
	svc := services.NewAuthService(dir)

	_, _, err := svc.Register(context.Background(), "a@x.com", "abcdefgh")
	require.NoError(t, err)

	_, _, err = svc.Register(context.Background(), "a@x.com", "abcdefgh")
	assert.ErrorIs(t, err, services.ErrEmailTaken)
	assert.Len(t, dir.users, 1, "no second record may be created")
}

func TestRegisterTokenIdentifiesUser(t *testing.T) {
	dir := newFakeUserDirectory()
	svc := services.NewAuthService(dir)

	_, token, err := svc.Register(context.Background(), "a@x.com", "abcdefgh")
	require.NoError(t, err)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, dir.users["a@x.com"].ID.Hex(), claims.UserID)
}

func TestLogin(t *testing.T) {
	dir := newFakeUserDirectory()
	svc := services.NewAuthService(dir)

	_, _, err := svc.Register(context.Background(), "a@x.com", "abcdefgh")
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		user, token, err := svc.Login(context.Background(), "a@x.com", "abcdefgh")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Empty(t, user.Password)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := svc.Login(context.Background(), "b@x.com", "abcdefgh")
		assert.ErrorIs(t, err, services.ErrUserNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(context.Background(), "a@x.com", "wrong-password")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})
}
