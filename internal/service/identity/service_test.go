package identity

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greencoders/soilcard/internal/domain/models"
)

type fakeProfileRepo struct {
	profiles map[string]models.FarmerProfile
	saves    int
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]models.FarmerProfile)}
}

func (f *fakeProfileRepo) GetProfile(_ context.Context, userID string) (models.FarmerProfile, error) {
	profile, ok := f.profiles[userID]
	if !ok {
		return models.FarmerProfile{}, models.ErrProfileNotFound
	}
	return profile, nil
}

func (f *fakeProfileRepo) SaveProfile(_ context.Context, profile models.FarmerProfile) error {
	f.saves++
	f.profiles[profile.UserID] = profile
	return nil
}

func (f *fakeProfileRepo) MarkHasCard(_ context.Context, userID string) error {
	profile := f.profiles[userID]
	profile.HasCard = true
	f.profiles[userID] = profile
	return nil
}

var farmerIDPattern = regexp.MustCompile(`^FC-\d{4}-\d{6}$`)

func newTestService(repo *fakeProfileRepo) *Service {
	svc := NewService(repo, []string{"admin@greencoders.com"}, nil)
	svc.now = func() time.Time { return time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC) }
	return svc
}

func TestGenerateFarmerID(t *testing.T) {
	svc := newTestService(newFakeProfileRepo())

	svc.randInt = func(int) int { return 42 }
	assert.Equal(t, "FC-2026-000042", svc.GenerateFarmerID())

	svc.randInt = func(int) int { return 999999 }
	assert.Equal(t, "FC-2026-999999", svc.GenerateFarmerID())

	svc.randInt = func(int) int { return 0 }
	id := svc.GenerateFarmerID()
	assert.True(t, farmerIDPattern.MatchString(id), "got %q", id)
}

func TestEnsureProfileCreatesFarmer(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := newTestService(repo)

	profile, err := svc.EnsureProfile(context.Background(), "uid-1", "ram@example.com")
	require.NoError(t, err)

	assert.Equal(t, models.RoleFarmer, profile.Role)
	assert.True(t, farmerIDPattern.MatchString(profile.FarmerID), "got %q", profile.FarmerID)
	assert.False(t, profile.HasCard)
	assert.Equal(t, 1, repo.saves)
}

func TestEnsureProfileCreatesAdminWithoutFarmerID(t *testing.T) {
	svc := newTestService(newFakeProfileRepo())

	profile, err := svc.EnsureProfile(context.Background(), "uid-2", "Admin@GreenCoders.com")
	require.NoError(t, err)

	assert.Equal(t, models.RoleAdmin, profile.Role)
	assert.Empty(t, profile.FarmerID)
}

func TestEnsureProfileIsIdempotent(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := newTestService(repo)

	first, err := svc.EnsureProfile(context.Background(), "uid-1", "ram@example.com")
	require.NoError(t, err)

	second, err := svc.EnsureProfile(context.Background(), "uid-1", "ram@example.com")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.saves, "existing profiles must not be rewritten")
}

func TestStartSession(t *testing.T) {
	svc := newTestService(newFakeProfileRepo())

	profile := models.FarmerProfile{UserID: "uid-1", Email: "ram@example.com", Role: models.RoleFarmer, FarmerID: "FC-2026-000042"}
	session := svc.StartSession(profile)

	assert.Equal(t, profile.UserID, session.UserID)
	assert.Equal(t, profile.FarmerID, session.FarmerID)
	assert.False(t, session.IsAdmin())
}

func TestPermissionChecks(t *testing.T) {
	admin := models.Session{UserID: "uid-9", Role: models.RoleAdmin}
	owner := models.Session{UserID: "uid-1", Role: models.RoleFarmer}
	other := models.Session{UserID: "uid-2", Role: models.RoleFarmer}

	assert.True(t, CanEditCard(admin, "uid-1"))
	assert.True(t, CanEditCard(owner, "uid-1"))
	assert.False(t, CanEditCard(other, "uid-1"))

	assert.True(t, CanDeleteCard(admin))
	assert.False(t, CanDeleteCard(owner))

	assert.True(t, CanManageUsers(admin))
	assert.False(t, CanManageUsers(other))
}
