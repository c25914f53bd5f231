// Package auth implements the local authentication gate: the single source
// of truth for "who is logged in". State is the pair {user, loading};
// operations report success as a boolean and surface everything else as
// domain events, never as errors past this boundary.
package auth

import (
	"context"
	"sync"
	"time"

	"greenchain/internal/directory"
	"greenchain/internal/event"
	"greenchain/internal/logger"
	"greenchain/internal/model"
	"greenchain/internal/session"
	"greenchain/internal/utils"

	"github.com/google/uuid"
)

// Gate owns the session lifecycle. A single logical caller drives it;
// the mutex only protects snapshot reads against an in-flight operation.
type Gate struct {
	store session.Store
	dir   directory.Directory
	bus   *event.Bus

	mu      sync.Mutex
	user    *model.User
	loading bool
}

// NewGate builds a gate and hydrates it from the session store. Hydration is
// synchronous: by the time NewGate returns, loading has resolved to false
// exactly once and the state is either Authenticated (valid saved session)
// or Unauthenticated (absent or corrupt session, or a store fault — boot
// never surfaces an error to the user).
func NewGate(store session.Store, dir directory.Directory, bus *event.Bus) *Gate {
	g := &Gate{store: store, dir: dir, bus: bus}
	g.setLoading(true)
	defer g.setLoading(false)

	user, err := store.Load()
	if err != nil {
		logger.Error("session hydration failed, starting unauthenticated", "error", err)
		return g
	}
	if user != nil {
		g.setUser(user)
	}
	return g
}

// User returns the current user record, or nil when unauthenticated.
func (g *Gate) User() *model.User {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.user
}

// IsAuthenticated reports whether a user is present.
func (g *Gate) IsAuthenticated() bool {
	return g.User() != nil
}

// IsLoading reports whether hydration or an operation is in flight.
func (g *Gate) IsLoading() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.loading
}

// Snapshot returns the composite state in one read.
func (g *Gate) Snapshot() (user *model.User, loading bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.user, g.loading
}

// Login authenticates email/password against the directory. On success the
// session is persisted and the state transitions to Authenticated. The
// loading flag strictly brackets the operation and resolves on every path,
// including directory or store faults.
func (g *Gate) Login(ctx context.Context, email, password string) bool {
	g.setLoading(true)
	defer g.setLoading(false)

	found, err := g.dir.FindByEmail(ctx, email)
	if err != nil {
		logger.Error("login lookup failed", "email", email, "error", err)
		g.bus.Publish(event.Event{Type: event.LoginFailed, Reason: event.ReasonFault, Email: email})
		return false
	}
	if found == nil || !utils.CheckPasswordHash(password, found.PasswordHash) {
		g.bus.Publish(event.Event{Type: event.LoginFailed, Reason: event.ReasonInvalidCredentials, Email: email})
		return false
	}

	user := found.Sanitized()
	if err := g.store.Save(user); err != nil {
		logger.Error("failed to persist session", "email", email, "error", err)
		g.bus.Publish(event.Event{Type: event.LoginFailed, Reason: event.ReasonFault, Email: email})
		return false
	}

	g.setUser(user)
	g.bus.Publish(event.Event{Type: event.LoginSucceeded, User: user})
	return true
}

// Signup creates a new account with role "user" and a fresh identifier,
// then logs it in. It fails when the email collides case-insensitively with
// an existing account.
func (g *Gate) Signup(ctx context.Context, name, email, password string) bool {
	g.setLoading(true)
	defer g.setLoading(false)

	existing, err := g.dir.FindByEmail(ctx, email)
	if err != nil {
		logger.Error("signup lookup failed", "email", email, "error", err)
		g.bus.Publish(event.Event{Type: event.SignupFailed, Reason: event.ReasonFault, Email: email})
		return false
	}
	if existing != nil {
		g.bus.Publish(event.Event{Type: event.SignupFailed, Reason: event.ReasonDuplicateEmail, Email: email})
		return false
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		logger.Error("signup hash failed", "email", email, "error", err)
		g.bus.Publish(event.Event{Type: event.SignupFailed, Reason: event.ReasonFault, Email: email})
		return false
	}

	newUser := &model.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		Role:         model.RoleUser,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := g.dir.Create(ctx, newUser); err != nil {
		logger.Error("signup create failed", "email", email, "error", err)
		g.bus.Publish(event.Event{Type: event.SignupFailed, Reason: event.ReasonFault, Email: email})
		return false
	}

	user := newUser.Sanitized()
	if err := g.store.Save(user); err != nil {
		logger.Error("failed to persist session", "email", email, "error", err)
		g.bus.Publish(event.Event{Type: event.SignupFailed, Reason: event.ReasonFault, Email: email})
		return false
	}

	g.setUser(user)
	g.bus.Publish(event.Event{Type: event.SignupSucceeded, User: user})
	return true
}

// Logout clears the session and transitions to Unauthenticated. It always
// succeeds from the caller's perspective; a store failure is logged because
// there is no recovery action to offer the user.
func (g *Gate) Logout() {
	if err := g.store.Clear(); err != nil {
		logger.Error("failed to clear persisted session", "error", err)
	}

	g.mu.Lock()
	previous := g.user
	g.user = nil
	g.mu.Unlock()

	g.bus.Publish(event.Event{Type: event.LoggedOut, User: previous})
}

func (g *Gate) setUser(user *model.User) {
	g.mu.Lock()
	g.user = user
	g.mu.Unlock()
}

func (g *Gate) setLoading(v bool) {
	g.mu.Lock()
	g.loading = v
	g.mu.Unlock()
}
