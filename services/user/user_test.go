package user

import (
	"testing"

	"petshop/config"
	userRepo "petshop/database/repository/user"
	"petshop/models"
	"petshop/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users map[string]models.User // keyed by id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]models.User)}
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, userRepo.ErrNotFound
	}
	return &u, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetAll() ([]models.User, error) { return nil, nil }

func (r *fakeUserRepo) Create(u *models.User) error {
	r.users[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) Update(u *models.User) error {
	r.users[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	if _, ok := r.users[id]; !ok {
		return userRepo.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc := NewDefaultUserService(newFakeUserRepo())

	u, token, err := svc.Register("Mia", "mia@example.com", "555-1234", "hunter2hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.NotEmpty(t, token)
	assert.NotEqual(t, "hunter2hunter2", u.PasswordHash)

	claims, err := utils.ExtractClaimsFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.Subject)
	assert.Equal(t, RoleMember, claims.Role)

	got, _, err := svc.Authenticate("mia@example.com", "hunter2hunter2")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, _, err = svc.Authenticate("mia@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Authenticate("nobody@example.com", "hunter2hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := NewDefaultUserService(newFakeUserRepo())

	_, _, err := svc.Register("Mia", "mia@example.com", "", "hunter2hunter2")
	require.NoError(t, err)

	_, _, err = svc.Register("Other", "mia@example.com", "", "different-pass")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterValidation(t *testing.T) {
	svc := NewDefaultUserService(newFakeUserRepo())

	_, _, err := svc.Register("", "mia@example.com", "", "hunter2hunter2")
	assert.Error(t, err)

	_, _, err = svc.Register("Mia", "mia@example.com", "", "short")
	assert.Error(t, err)
}

func TestAuthenticateAdmin(t *testing.T) {
	config.AppConfig.AdminEmail = "admin@petshop.local"
	config.AppConfig.AdminPassword = "super-secret"

	svc := NewDefaultUserService(newFakeUserRepo())

	token, err := svc.AuthenticateAdmin("admin@petshop.local", "super-secret")
	require.NoError(t, err)

	claims, err := utils.ExtractClaimsFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, claims.Role)

	_, err = svc.AuthenticateAdmin("admin@petshop.local", "nope")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestDeleteProfile(t *testing.T) {
	svc := NewDefaultUserService(newFakeUserRepo())

	u, _, err := svc.Register("Mia", "mia@example.com", "", "hunter2hunter2")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProfile(u.ID))

	_, err = svc.GetProfile(u.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// The email is free again for a fresh registration.
	_, _, err = svc.Register("Mia", "mia@example.com", "", "hunter2hunter2")
	assert.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteProfile("no-such-id"), ErrNotFound)
}

func TestExistsByEmail(t *testing.T) {
	svc := NewDefaultUserService(newFakeUserRepo())
	_, _, err := svc.Register("Mia", "mia@example.com", "", "hunter2hunter2")
	require.NoError(t, err)

	exists, err := svc.ExistsByEmail("mia@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = svc.ExistsByEmail("ghost@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}
