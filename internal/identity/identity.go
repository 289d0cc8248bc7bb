// Package identity owns the users collection and the persisted session
// pointer.
//
// Emails are unique across the whole users collection regardless of role:
// registration rejects any email that is already taken, so login's
// (email, role) lookup can match at most one account and the role argument
// acts purely as a guard.
package identity

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hirepath/hirepath/internal/models"
	"github.com/hirepath/hirepath/internal/store"
)

var (
	// ErrDuplicateEmail rejects registration with a taken email.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrNotFound rejects login when no account matches email and role.
	ErrNotFound = errors.New("no account matches that email and role")
	// ErrCompanyRequired rejects employer registration without a company.
	ErrCompanyRequired = errors.New("company name is required for employer accounts")
	// ErrProfileMismatch rejects an update aimed at the wrong profile variant.
	ErrProfileMismatch = errors.New("update does not match the account's role")
	// ErrInvalidRole rejects registration with an unknown role.
	ErrInvalidRole = errors.New("role must be jobseeker or employer")
)

// RegisterInput carries the registration form fields. Password is accepted
// for interface parity but neither stored nor checked; credential handling
// belongs to a real backend.
type RegisterInput struct {
	Name        string
	Email       string
	Password    string
	Role        models.Role
	CompanyName string
}

// Manager is the session state machine: anonymous, then authenticated after
// register/login, then anonymous again after logout. The session survives
// process restarts through a persisted document slot.
type Manager struct {
	users   *store.Collection[models.User]
	session *store.Document[models.User]
	logger  zerolog.Logger

	now     func() time.Time
	newID   func() string
	current *models.User
}

// NewManager rehydrates any persisted session. A session document that no
// longer parses degrades to anonymous.
func NewManager(kv store.KV, logger zerolog.Logger) *Manager {
	m := &Manager{
		users:   store.NewCollection[models.User](kv, store.CollectionUsers, logger),
		session: store.NewDocument[models.User](kv, store.KeySession),
		logger:  logger,
		now:     time.Now,
		newID:   uuid.NewString,
	}

	current, err := m.session.Load()
	if err != nil {
		logger.Warn().Err(err).Msg("stored session unreadable, starting anonymous")
		return m
	}
	m.current = current
	return m
}

// Register creates an account, appends it to the users collection and opens
// a session for it.
func (m *Manager) Register(input RegisterInput) (models.User, error) {
	if input.Role != models.RoleJobSeeker && input.Role != models.RoleEmployer {
		return models.User{}, ErrInvalidRole
	}
	if input.Role == models.RoleEmployer && input.CompanyName == "" {
		return models.User{}, ErrCompanyRequired
	}

	users := m.users.LoadOrEmpty()
	for _, existing := range users {
		if existing.Email == input.Email {
			return models.User{}, ErrDuplicateEmail
		}
	}

	user := models.User{
		ID:        m.newID(),
		Email:     input.Email,
		Name:      input.Name,
		Role:      input.Role,
		CreatedAt: m.now(),
	}
	switch input.Role {
	case models.RoleJobSeeker:
		user.JobSeeker = &models.JobSeekerProfile{Skills: []string{}}
	case models.RoleEmployer:
		user.Employer = &models.EmployerProfile{CompanyName: input.CompanyName}
	}

	users = append(users, user)
	if err := m.users.Save(users); err != nil {
		return models.User{}, fmt.Errorf("register: %w", err)
	}
	if err := m.open(user); err != nil {
		return models.User{}, err
	}

	m.logger.Debug().Str("user_id", user.ID).Str("role", string(user.Role)).
		Msg("account registered")
	return user.Clone(), nil
}

// Login opens a session for the account matching email and role. The
// password is deliberately not validated here.
func (m *Manager) Login(email, password string, role models.Role) (models.User, error) {
	_ = password

	for _, user := range m.users.LoadOrEmpty() {
		if user.Email == email && user.Role == role {
			if err := m.open(user); err != nil {
				return models.User{}, err
			}
			return user.Clone(), nil
		}
	}
	return models.User{}, ErrNotFound
}

// Logout clears the session; logging out while anonymous is a no-op.
func (m *Manager) Logout() error {
	m.current = nil
	if err := m.session.Clear(); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// Current returns a copy of the session's user, or nil while anonymous.
func (m *Manager) Current() *models.User {
	if m.current == nil {
		return nil
	}
	user := m.current.Clone()
	return &user
}

// UpdateProfile shallow-merges the update into the current user's profile
// variant and writes the result to both the session slot and the users
// collection. Calling it while anonymous is a defined no-op: profile edits
// are unreachable without a session, so there is nothing to report.
func (m *Manager) UpdateProfile(update models.ProfileUpdate) error {
	if m.current == nil {
		return nil
	}
	if update.TargetRole() != m.current.Role {
		return ErrProfileMismatch
	}

	switch u := update.(type) {
	case models.JobSeekerUpdate:
		if m.current.JobSeeker == nil {
			m.current.JobSeeker = &models.JobSeekerProfile{Skills: []string{}}
		}
		u.Apply(m.current.JobSeeker)
	case models.EmployerUpdate:
		if m.current.Employer == nil {
			m.current.Employer = &models.EmployerProfile{}
		}
		u.Apply(m.current.Employer)
	default:
		return ErrProfileMismatch
	}

	if err := m.session.Save(*m.current); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if err := m.users.Upsert(*m.current, func(u models.User) string { return u.ID }); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

func (m *Manager) open(user models.User) error {
	if err := m.session.Save(user); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	m.current = &user
	return nil
}
