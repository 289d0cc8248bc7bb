package identity

import (
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirepath/hirepath/internal/models"
	"github.com/hirepath/hirepath/internal/store"
)

func newTestManager(kv store.KV) *Manager {
	m := NewManager(kv, zerolog.Nop())
	m.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	seq := 0
	m.newID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	return m
}

func TestRegisterJobSeeker(t *testing.T) {
	kv := store.NewMemKV()
	m := newTestManager(kv)

	user, err := m.Register(RegisterInput{
		Name:     "Sarah Chen",
		Email:    "sarah@example.com",
		Password: "ignored",
		Role:     models.RoleJobSeeker,
	})
	require.NoError(t, err)

	assert.Equal(t, "id-1", user.ID)
	assert.Equal(t, models.RoleJobSeeker, user.Role)
	require.NotNil(t, user.JobSeeker)
	assert.Empty(t, user.JobSeeker.Skills)
	assert.Nil(t, user.Employer)

	current := m.Current()
	require.NotNil(t, current)
	assert.Equal(t, user.ID, current.ID)
}

func TestRegisterDuplicateEmailAnyRole(t *testing.T) {
	kv := store.NewMemKV()
	m := newTestManager(kv)

	_, err := m.Register(RegisterInput{Name: "A", Email: "a@example.com", Role: models.RoleJobSeeker})
	require.NoError(t, err)

	before := store.NewCollection[models.User](kv, store.CollectionUsers, zerolog.Nop()).LoadOrEmpty()

	_, err = m.Register(RegisterInput{
		Name: "B", Email: "a@example.com", Role: models.RoleEmployer, CompanyName: "Acme",
	})
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	after := store.NewCollection[models.User](kv, store.CollectionUsers, zerolog.Nop()).LoadOrEmpty()
	assert.Len(t, after, len(before))
}

func TestRegisterEmployerRequiresCompany(t *testing.T) {
	m := newTestManager(store.NewMemKV())

	_, err := m.Register(RegisterInput{Name: "B", Email: "b@example.com", Role: models.RoleEmployer})
	assert.ErrorIs(t, err, ErrCompanyRequired)

	user, err := m.Register(RegisterInput{
		Name: "B", Email: "b@example.com", Role: models.RoleEmployer, CompanyName: "Acme",
	})
	require.NoError(t, err)
	require.NotNil(t, user.Employer)
	assert.Equal(t, "Acme", user.Employer.CompanyName)
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	m := newTestManager(store.NewMemKV())

	_, err := m.Register(RegisterInput{Name: "X", Email: "x@example.com", Role: models.RoleAdmin})
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestLoginAfterRegister(t *testing.T) {
	kv := store.NewMemKV()
	m := newTestManager(kv)

	registered, err := m.Register(RegisterInput{
		Name: "Sarah Chen", Email: "sarah@example.com", Role: models.RoleJobSeeker,
	})
	require.NoError(t, err)
	require.NoError(t, m.Logout())

	user, err := m.Login("sarah@example.com", "anything", models.RoleJobSeeker)
	require.NoError(t, err)
	assert.Equal(t, registered, user)
}

func TestLoginWrongRole(t *testing.T) {
	kv := store.NewMemKV()
	m := newTestManager(kv)

	_, err := m.Register(RegisterInput{Name: "S", Email: "s@example.com", Role: models.RoleJobSeeker})
	require.NoError(t, err)

	_, err = m.Login("s@example.com", "pw", models.RoleEmployer)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = m.Login("unknown@example.com", "pw", models.RoleJobSeeker)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLogoutIdempotent(t *testing.T) {
	kv := store.NewMemKV()
	m := newTestManager(kv)

	_, err := m.Register(RegisterInput{Name: "S", Email: "s@example.com", Role: models.RoleJobSeeker})
	require.NoError(t, err)

	require.NoError(t, m.Logout())
	assert.Nil(t, m.Current())
	require.NoError(t, m.Logout())
	assert.Nil(t, m.Current())
}

func TestSessionSurvivesRestart(t *testing.T) {
	kv := store.NewMemKV()
	m := newTestManager(kv)

	registered, err := m.Register(RegisterInput{
		Name: "S", Email: "s@example.com", Role: models.RoleJobSeeker,
	})
	require.NoError(t, err)

	restarted := NewManager(kv, zerolog.Nop())
	current := restarted.Current()
	require.NotNil(t, current)
	assert.Equal(t, registered.ID, current.ID)

	require.NoError(t, restarted.Logout())
	assert.Nil(t, NewManager(kv, zerolog.Nop()).Current())
}

func TestUpdateProfileAnonymousIsNoOp(t *testing.T) {
	kv := store.NewMemKV()
	m := newTestManager(kv)

	_, err := m.Register(RegisterInput{Name: "S", Email: "s@example.com", Role: models.RoleJobSeeker})
	require.NoError(t, err)
	require.NoError(t, m.Logout())

	usersBefore, ok, err := kv.Get(store.CollectionUsers)
	require.NoError(t, err)
	require.True(t, ok)

	bio := "ignored"
	require.NoError(t, m.UpdateProfile(models.JobSeekerUpdate{Bio: &bio}))

	usersAfter, _, err := kv.Get(store.CollectionUsers)
	require.NoError(t, err)
	assert.Equal(t, usersBefore, usersAfter, "anonymous update must not touch the users collection")
}

func TestUpdateProfileMergePreservesOtherFields(t *testing.T) {
	kv := store.NewMemKV()
	m := newTestManager(kv)

	_, err := m.Register(RegisterInput{Name: "S", Email: "s@example.com", Role: models.RoleJobSeeker})
	require.NoError(t, err)

	title := "Engineer"
	skills := []string{"Go", "SQL"}
	require.NoError(t, m.UpdateProfile(models.JobSeekerUpdate{Title: &title, Skills: &skills}))

	bio := "Hello"
	require.NoError(t, m.UpdateProfile(models.JobSeekerUpdate{Bio: &bio}))

	current := m.Current()
	require.NotNil(t, current)
	require.NotNil(t, current.JobSeeker)
	assert.Equal(t, "Engineer", current.JobSeeker.Title)
	assert.Equal(t, []string{"Go", "SQL"}, current.JobSeeker.Skills)
	assert.Equal(t, "Hello", current.JobSeeker.Bio)

	// The users collection sees the same merged record.
	users := store.NewCollection[models.User](kv, store.CollectionUsers, zerolog.Nop()).LoadOrEmpty()
	require.Len(t, users, 1)
	require.NotNil(t, users[0].JobSeeker)
	assert.Equal(t, "Engineer", users[0].JobSeeker.Title)
	assert.Equal(t, "Hello", users[0].JobSeeker.Bio)
}

func TestUpdateProfileVariantMismatch(t *testing.T) {
	m := newTestManager(store.NewMemKV())

	_, err := m.Register(RegisterInput{Name: "S", Email: "s@example.com", Role: models.RoleJobSeeker})
	require.NoError(t, err)

	company := "Acme"
	err = m.UpdateProfile(models.EmployerUpdate{CompanyName: &company})
	assert.ErrorIs(t, err, ErrProfileMismatch)
}

func TestCurrentReturnsCopy(t *testing.T) {
	m := newTestManager(store.NewMemKV())

	_, err := m.Register(RegisterInput{Name: "S", Email: "s@example.com", Role: models.RoleJobSeeker})
	require.NoError(t, err)

	first := m.Current()
	require.NotNil(t, first)
	first.Name = "mutated"
	first.JobSeeker.Skills = append(first.JobSeeker.Skills, "hacked")

	second := m.Current()
	assert.Equal(t, "S", second.Name)
	assert.Empty(t, second.JobSeeker.Skills)
}
