package directory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"greenchain/internal/model"
	"greenchain/internal/utils"
)

// DemoUser pairs a seeded account with its plaintext demo password.
type DemoUser struct {
	User     model.User
	Password string
}

// DemoUsers is the fixed demo directory the application ships with.
var DemoUsers = []DemoUser{
	{
		User:     model.User{ID: "1", Name: "Admin User", Email: "admin@example.com", Role: model.RoleAdmin},
		Password: "admin123",
	},
	{
		User:     model.User{ID: "2", Name: "Demo User", Email: "user@example.com", Role: model.RoleUser},
		Password: "user123",
	},
}

// Memory is an in-memory Directory keyed by lower-cased email.
type Memory struct {
	mu      sync.RWMutex
	byEmail map[string]*model.User
	byID    map[string]*model.User
}

// NewMemory returns a directory seeded with the demo users. Demo passwords
// are hashed at construction so no hash material lives in the source.
func NewMemory() (*Memory, error) {
	m := &Memory{
		byEmail: make(map[string]*model.User),
		byID:    make(map[string]*model.User),
	}
	for _, demo := range DemoUsers {
		hash, err := utils.HashPassword(demo.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to seed demo user %s: %w", demo.User.Email, err)
		}
		user := demo.User
		user.PasswordHash = hash
		user.CreatedAt = time.Now()
		m.byEmail[strings.ToLower(user.Email)] = &user
		m.byID[user.ID] = &user
	}
	return m, nil
}

// FindByEmail retrieves a user by email, compared case-insensitively.
func (m *Memory) FindByEmail(_ context.Context, email string) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

// FindByID retrieves a user by their ID.
func (m *Memory) FindByID(_ context.Context, id string) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

// Create inserts a new user. The email must not collide case-insensitively
// with an existing account.
func (m *Memory) Create(_ context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := strings.ToLower(user.Email)
	if _, exists := m.byEmail[key]; exists {
		return fmt.Errorf("user with email %s already exists", user.Email)
	}
	copied := *user
	m.byEmail[key] = &copied
	m.byID[copied.ID] = &copied
	return nil
}
