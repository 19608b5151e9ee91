package service

import (
	"context"
	"errors"
	"testing"

	"github.com/FatimaEzzahraLegchayri/workshop/internal/auth"
	"github.com/FatimaEzzahraLegchayri/workshop/internal/domain"
	"github.com/FatimaEzzahraLegchayri/workshop/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubTokenIssuer struct {
	token string
	err   error
}

func (s stubTokenIssuer) Generate(adminID, email, role string) (string, error) {
	return s.token, s.err
}

func testAdmin(t *testing.T, password string) *domain.Admin {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	return &domain.Admin{
		ID:           "a1",
		Email:        "admin@example.com",
		Name:         "Admin",
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
	}
}

func TestAdminService_Login_Success(t *testing.T) {
	repo := mocks.NewMockAdminRepo(t)
	svc := NewAdminService(repo, stubTokenIssuer{token: "signed-token"})

	admin := testAdmin(t, "secret123")
	repo.EXPECT().GetByEmail(mock.Anything, "admin@example.com").Return(admin, nil)

	token, got, err := svc.Login(context.Background(), "  Admin@Example.com ", "secret123")

	require.NoError(t, err)
	assert.Equal(t, "signed-token", token)
	assert.Equal(t, admin.ID, got.ID)
}

func TestAdminService_Login_WrongPassword(t *testing.T) {
	repo := mocks.NewMockAdminRepo(t)
	svc := NewAdminService(repo, stubTokenIssuer{token: "signed-token"})

	admin := testAdmin(t, "secret123")
	repo.EXPECT().GetByEmail(mock.Anything, "admin@example.com").Return(admin, nil)

	_, _, err := svc.Login(context.Background(), "admin@example.com", "wrong")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAdminService_Login_UnknownEmail(t *testing.T) {
	repo := mocks.NewMockAdminRepo(t)
	svc := NewAdminService(repo, stubTokenIssuer{token: "signed-token"})

	repo.EXPECT().GetByEmail(mock.Anything, "ghost@example.com").Return(nil, domain.ErrAdminNotFound)

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever")

	require.Error(t, err)
	// Unknown email must be indistinguishable from a wrong password.
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAdminService_Login_NonAdminRole(t *testing.T) {
	repo := mocks.NewMockAdminRepo(t)
	svc := NewAdminService(repo, stubTokenIssuer{token: "signed-token"})

	admin := testAdmin(t, "secret123")
	admin.Role = "viewer"
	repo.EXPECT().GetByEmail(mock.Anything, "admin@example.com").Return(admin, nil)

	_, _, err := svc.Login(context.Background(), "admin@example.com", "secret123")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAdminService_Login_EmptyCredentials(t *testing.T) {
	repo := mocks.NewMockAdminRepo(t)
	svc := NewAdminService(repo, stubTokenIssuer{token: "signed-token"})

	_, _, err := svc.Login(context.Background(), "", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAdminService_Login_TokenError(t *testing.T) {
	repo := mocks.NewMockAdminRepo(t)
	svc := NewAdminService(repo, stubTokenIssuer{err: errors.New("sign failed")})

	admin := testAdmin(t, "secret123")
	repo.EXPECT().GetByEmail(mock.Anything, "admin@example.com").Return(admin, nil)

	_, _, err := svc.Login(context.Background(), "admin@example.com", "secret123")

	require.Error(t, err)
}

func TestAdminService_Profile(t *testing.T) {
	repo := mocks.NewMockAdminRepo(t)
	svc := NewAdminService(repo, stubTokenIssuer{})

	admin := testAdmin(t, "secret123")
	repo.EXPECT().GetByID(mock.Anything, "a1").Return(admin, nil)

	got, err := svc.Profile(context.Background(), "a1")

	require.NoError(t, err)
	assert.Equal(t, admin.Email, got.Email)
}

func TestAdminService_UpdateProfile_Name(t *testing.T) {
	repo := mocks.NewMockAdminRepo(t)
	svc := NewAdminService(repo, stubTokenIssuer{})

	admin := testAdmin(t, "secret123")
	repo.EXPECT().GetByID(mock.Anything, "a1").Return(admin, nil)
	repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	name := "  New Name  "
	got, err := svc.UpdateProfile(context.Background(), "a1", domain.UpdateProfileInput{Name: &name})

	require.NoError(t, err)
	assert.Equal(t, "New Name", got.Name)
}

func TestAdminService_UpdateProfile_NoFields(t *testing.T) {
	repo := mocks.NewMockAdminRepo(t)
	svc := NewAdminService(repo, stubTokenIssuer{})

	_, err := svc.UpdateProfile(context.Background(), "a1", domain.UpdateProfileInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAdminService_UpdateProfile_EmptyName(t *testing.T) {
	repo := mocks.NewMockAdminRepo(t)
	svc := NewAdminService(repo, stubTokenIssuer{})

	admin := testAdmin(t, "secret123")
	repo.EXPECT().GetByID(mock.Anything, "a1").Return(admin, nil)

	name := "   "
	_, err := svc.UpdateProfile(context.Background(), "a1", domain.UpdateProfileInput{Name: &name})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAdminService_UpdateProfile_Password(t *testing.T) {
	repo := mocks.NewMockAdminRepo(t)
	svc := NewAdminService(repo, stubTokenIssuer{})

	admin := testAdmin(t, "secret123")
	oldHash := admin.PasswordHash
	repo.EXPECT().GetByID(mock.Anything, "a1").Return(admin, nil)
	repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	newPass := "freshpass"
	got, err := svc.UpdateProfile(context.Background(), "a1", domain.UpdateProfileInput{
		Password:        &newPass,
		CurrentPassword: "secret123",
	})

	require.NoError(t, err)
	assert.NotEqual(t, oldHash, got.PasswordHash)
	assert.True(t, auth.CheckPassword("freshpass", got.PasswordHash))
}

func TestAdminService_UpdateProfile_PasswordWithoutCurrent(t *testing.T) {
	repo := mocks.NewMockAdminRepo(t)
	svc := NewAdminService(repo, stubTokenIssuer{})

	admin := testAdmin(t, "secret123")
	repo.EXPECT().GetByID(mock.Anything, "a1").Return(admin, nil)

	newPass := "freshpass"
	_, err := svc.UpdateProfile(context.Background(), "a1", domain.UpdateProfileInput{Password: &newPass})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAdminService_UpdateProfile_WrongCurrentPassword(t *testing.T) {
	repo := mocks.NewMockAdminRepo(t)
	svc := NewAdminService(repo, stubTokenIssuer{})

	admin := testAdmin(t, "secret123")
	repo.EXPECT().GetByID(mock.Anything, "a1").Return(admin, nil)

	newPass := "freshpass"
	_, err := svc.UpdateProfile(context.Background(), "a1", domain.UpdateProfileInput{
		Password:        &newPass,
		CurrentPassword: "wrong",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAdminService_Bootstrap_CreatesMissingAdmin(t *testing.T) {
	repo := mocks.NewMockAdminRepo(t)
	svc := NewAdminService(repo, stubTokenIssuer{})

	repo.EXPECT().GetByEmail(mock.Anything, "admin@example.com").Return(nil, domain.ErrAdminNotFound)

	var created *domain.Admin
	repo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, a *domain.Admin) { created = a }).
		Return(nil)

	err := svc.Bootstrap(context.Background(), "  Admin@Example.com ", "Admin", "secret123")

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "admin@example.com", created.Email)
	assert.Equal(t, domain.RoleAdmin, created.Role)
	assert.NotEmpty(t, created.ID)
	assert.True(t, auth.CheckPassword("secret123", created.PasswordHash))
}

func TestAdminService_Bootstrap_ExistingAdminUntouched(t *testing.T) {
	repo := mocks.NewMockAdminRepo(t)
	svc := NewAdminService(repo, stubTokenIssuer{})

	admin := testAdmin(t, "secret123")
	repo.EXPECT().GetByEmail(mock.Anything, "admin@example.com").Return(admin, nil)

	err := svc.Bootstrap(context.Background(), "admin@example.com", "Admin", "anotherpass")

	// No Create and no Update: restart must not rewrite credentials.
	require.NoError(t, err)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAdminService_Bootstrap_InvalidEmail(t *testing.T) {
	repo := mocks.NewMockAdminRepo(t)
	svc := NewAdminService(repo, stubTokenIssuer{})

	err := svc.Bootstrap(context.Background(), "not-an-email", "Admin", "secret123")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAdminService_Bootstrap_ShortPassword(t *testing.T) {
	repo := mocks.NewMockAdminRepo(t)
	svc := NewAdminService(repo, stubTokenIssuer{})

	err := svc.Bootstrap(context.Background(), "admin@example.com", "Admin", "abc")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAdminService_Bootstrap_LostCreateRace(t *testing.T) {
	repo := mocks.NewMockAdminRepo(t)
	svc := NewAdminService(repo, stubTokenIssuer{})

	repo.EXPECT().GetByEmail(mock.Anything, "admin@example.com").Return(nil, domain.ErrAdminNotFound)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	// A concurrent instance created the account first; that is success.
	err := svc.Bootstrap(context.Background(), "admin@example.com", "Admin", "secret123")

	require.NoError(t, err)
}

func TestAdminService_UpdateProfile_ShortPassword(t *testing.T) {
	repo := mocks.NewMockAdminRepo(t)
	svc := NewAdminService(repo, stubTokenIssuer{})

	admin := testAdmin(t, "secret123")
	repo.EXPECT().GetByID(mock.Anything, "a1").Return(admin, nil)

	newPass := "abc"
	_, err := svc.UpdateProfile(context.Background(), "a1", domain.UpdateProfileInput{
		Password:        &newPass,
		CurrentPassword: "secret123",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
