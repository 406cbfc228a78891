package users

import (
	"unicode"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/expense-tracker/internal/logger"
)

var (
	ErrInvalidUsername = errors.New("username must be non-empty and alphanumeric")
	ErrDuplicateUser   = errors.New("username already exists")
	ErrUnknownUser     = errors.New("unknown username")
)

type storage interface {
	LoadUsers() []string
	SaveUsers(users []string) error
	Delete(location string) error
	ExpensesLocation(username string) string
	BudgetsLocation(username string) string
}

// Session is the resolved identity the rest of the application works
// with: the username plus the two store locations that belong to it.
// Store operations take a Session instead of consulting global state.
type Session struct {
	Username         string
	ExpensesLocation string
	BudgetsLocation  string
}

// Registry owns the persisted list of known usernames and tracks which
// one is active. Exactly one user is active at a time; switching hands
// out a fresh Session and the caller reloads that user's stores.
type Registry struct {
	storage storage
	active  *Session
}

func NewRegistry(storage storage) *Registry {
	return &Registry{storage: storage}
}

// List returns the known usernames in registry order.
func (r *Registry) List() []string {
	return r.storage.LoadUsers()
}

// Create validates the username, appends it to the registry, persists,
// and makes it the active session. The user's stores begin empty and
// are materialized on first save.
func (r *Registry) Create(username string) (Session, error) {
	if !validUsername(username) {
		return Session{}, ErrInvalidUsername
	}
	users := r.storage.LoadUsers()
	if contains(users, username) {
		return Session{}, ErrDuplicateUser
	}

	users = append(users, username)
	if err := r.storage.SaveUsers(users); err != nil {
		return Session{}, errors.Wrap(err, "create user")
	}

	logger.Info("user created", zap.String("username", username))
	return r.activate(username), nil
}

// Select resolves an existing username into the active session.
func (r *Registry) Select(username string) (Session, error) {
	if !contains(r.storage.LoadUsers(), username) {
		return Session{}, ErrUnknownUser
	}
	return r.activate(username), nil
}

// Delete removes the user's stores and registry entry. Deleting the
// active user clears the active session, so the caller must select
// another user before touching any store.
func (r *Registry) Delete(username string) error {
	users := r.storage.LoadUsers()
	if !contains(users, username) {
		return ErrUnknownUser
	}

	if err := r.deleteStores(username); err != nil {
		return errors.Wrap(err, "delete user")
	}
	if err := r.storage.SaveUsers(remove(users, username)); err != nil {
		return errors.Wrap(err, "delete user")
	}

	if r.active != nil && r.active.Username == username {
		r.active = nil
	}
	logger.Info("user deleted", zap.String("username", username))
	return nil
}

// Reset truncates the user's data by removing both backing stores while
// keeping the registry entry. Subsequent loads yield empty defaults.
// The username is taken on faith; callers pass the active one.
func (r *Registry) Reset(username string) error {
	if err := r.deleteStores(username); err != nil {
		return errors.Wrap(err, "reset user data")
	}
	logger.Info("user data reset", zap.String("username", username))
	return nil
}

func (r *Registry) Active() (Session, bool) {
	if r.active == nil {
		return Session{}, false
	}
	return *r.active, true
}

func (r *Registry) activate(username string) Session {
	session := Session{
		Username:         username,
		ExpensesLocation: r.storage.ExpensesLocation(username),
		BudgetsLocation:  r.storage.BudgetsLocation(username),
	}
	r.active = &session
	return session
}

func (r *Registry) deleteStores(username string) error {
	if err := r.storage.Delete(r.storage.ExpensesLocation(username)); err != nil {
		return err
	}
	return r.storage.Delete(r.storage.BudgetsLocation(username))
}

func validUsername(username string) bool {
	if username == "" {
		return false
	}
	for _, r := range username {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func contains(users []string, username string) bool {
	for _, u := range users {
		if u == username {
			return true
		}
	}
	return false
}

func remove(users []string, username string) []string {
	res := make([]string, 0, len(users))
	for _, u := range users {
		if u != username {
			res = append(res, u)
		}
	}
	return res
}
