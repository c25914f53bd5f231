package auth

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"greenchain/internal/directory"
	"greenchain/internal/event"
	"greenchain/internal/model"
	"greenchain/internal/notify"
	"greenchain/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	gate    *Gate
	store   *session.FileStore
	path    string
	events  *[]event.Event
	notices *[]notify.Notification
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	store := session.NewFileStore(path)
	dir, err := directory.NewMemory()
	require.NoError(t, err)

	var events []event.Event
	var notices []notify.Notification
	bus := event.NewBus()
	bus.Subscribe(func(e event.Event) { events = append(events, e) })
	bus.Subscribe(notify.Subscriber(notify.SinkFunc(func(n notify.Notification) {
		notices = append(notices, n)
	})))

	return &fixture{
		gate:    NewGate(store, dir, bus),
		store:   store,
		path:    path,
		events:  &events,
		notices: &notices,
	}
}

// failingStore simulates an unavailable persistence layer.
type failingStore struct {
	loadErr  error
	saveErr  error
	clearErr error
}

func (f *failingStore) Load() (*model.User, error) { return nil, f.loadErr }
func (f *failingStore) Save(*model.User) error     { return f.saveErr }
func (f *failingStore) Clear() error               { return f.clearErr }

// faultyDirectory fails every lookup.
type faultyDirectory struct{}

func (faultyDirectory) FindByEmail(context.Context, string) (*model.User, error) {
	return nil, errors.New("directory unavailable")
}
func (faultyDirectory) FindByID(context.Context, string) (*model.User, error) {
	return nil, errors.New("directory unavailable")
}
func (faultyDirectory) Create(context.Context, *model.User) error {
	return errors.New("directory unavailable")
}

// loadingProbe wraps a directory and records the gate's loading flag at the
// moment the lookup runs, i.e. strictly inside the operation window.
type loadingProbe struct {
	inner directory.Directory
	gate  *Gate
	seen  []bool
}

func (p *loadingProbe) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	p.seen = append(p.seen, p.gate.IsLoading())
	return p.inner.FindByEmail(ctx, email)
}
func (p *loadingProbe) FindByID(ctx context.Context, id string) (*model.User, error) {
	return p.inner.FindByID(ctx, id)
}
func (p *loadingProbe) Create(ctx context.Context, u *model.User) error {
	return p.inner.Create(ctx, u)
}

func TestNewGate_NoSession(t *testing.T) {
	f := newFixture(t)

	assert.False(t, f.gate.IsLoading())
	assert.False(t, f.gate.IsAuthenticated())
	assert.Nil(t, f.gate.User())
}

func TestNewGate_HydratesSavedSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := session.NewFileStore(path)
	require.NoError(t, store.Save(&model.User{ID: "1", Name: "Admin User", Email: "admin@example.com", Role: model.RoleAdmin}))
	dir, err := directory.NewMemory()
	require.NoError(t, err)

	gate := NewGate(store, dir, event.NewBus())

	assert.False(t, gate.IsLoading())
	require.True(t, gate.IsAuthenticated())
	assert.Equal(t, "Admin User", gate.User().Name)
}

func TestNewGate_CorruptSessionStartsUnauthenticated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{garbage"), 0o600))
	store := session.NewFileStore(path)
	dir, err := directory.NewMemory()
	require.NoError(t, err)

	gate := NewGate(store, dir, event.NewBus())

	assert.False(t, gate.IsLoading())
	assert.False(t, gate.IsAuthenticated())
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "corrupt session should have been cleared")
}

func TestNewGate_StoreFaultStartsUnauthenticated(t *testing.T) {
	dir, err := directory.NewMemory()
	require.NoError(t, err)
	store := &failingStore{loadErr: errors.New("disk on fire")}

	gate := NewGate(store, dir, event.NewBus())

	assert.False(t, gate.IsLoading())
	assert.False(t, gate.IsAuthenticated())
}

func TestLogin_Success(t *testing.T) {
	f := newFixture(t)

	ok := f.gate.Login(context.Background(), "admin@example.com", "admin123")

	require.True(t, ok)
	assert.False(t, f.gate.IsLoading())
	require.True(t, f.gate.IsAuthenticated())
	assert.Equal(t, "Admin User", f.gate.User().Name)
	assert.Empty(t, f.gate.User().PasswordHash)

	saved, err := f.store.Load()
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "1", saved.ID)

	require.Len(t, *f.events, 1)
	assert.Equal(t, event.LoginSucceeded, (*f.events)[0].Type)
	require.Len(t, *f.notices, 1)
	assert.Equal(t, "Login Successful", (*f.notices)[0].Title)
	assert.Equal(t, "Welcome back, Admin User!", (*f.notices)[0].Description)
}

func TestLogin_EmailCaseInsensitive(t *testing.T) {
	f := newFixture(t)
	assert.True(t, f.gate.Login(context.Background(), "ADMIN@Example.com", "admin123"))
}

func TestLogin_UnknownEmail(t *testing.T) {
	f := newFixture(t)

	ok := f.gate.Login(context.Background(), "nobody@example.com", "x")

	assert.False(t, ok)
	assert.False(t, f.gate.IsAuthenticated())
	assert.False(t, f.gate.IsLoading())

	saved, err := f.store.Load()
	require.NoError(t, err)
	assert.Nil(t, saved)

	require.Len(t, *f.events, 1)
	assert.Equal(t, event.LoginFailed, (*f.events)[0].Type)
	assert.Equal(t, event.ReasonInvalidCredentials, (*f.events)[0].Reason)
	require.Len(t, *f.notices, 1)
	assert.Equal(t, "Authentication Error", (*f.notices)[0].Title)
}

func TestLogin_WrongPassword(t *testing.T) {
	f := newFixture(t)

	ok := f.gate.Login(context.Background(), "admin@example.com", "wrong")

	assert.False(t, ok)
	assert.False(t, f.gate.IsAuthenticated())
	require.Len(t, *f.events, 1)
	assert.Equal(t, event.ReasonInvalidCredentials, (*f.events)[0].Reason)
}

func TestLogin_DirectoryFaultResolvesLoading(t *testing.T) {
	var events []event.Event
	bus := event.NewBus()
	bus.Subscribe(func(e event.Event) { events = append(events, e) })
	store := session.NewFileStore(filepath.Join(t.TempDir(), "session.json"))

	gate := NewGate(store, faultyDirectory{}, bus)
	ok := gate.Login(context.Background(), "admin@example.com", "admin123")

	assert.False(t, ok)
	assert.False(t, gate.IsLoading())
	assert.False(t, gate.IsAuthenticated())
	require.Len(t, events, 1)
	assert.Equal(t, event.ReasonFault, events[0].Reason)
}

func TestLogin_StoreFaultResolvesLoading(t *testing.T) {
	dir, err := directory.NewMemory()
	require.NoError(t, err)
	var notices []notify.Notification
	bus := event.NewBus()
	bus.Subscribe(notify.Subscriber(notify.SinkFunc(func(n notify.Notification) {
		notices = append(notices, n)
	})))

	gate := NewGate(&failingStore{saveErr: errors.New("disk full")}, dir, bus)
	ok := gate.Login(context.Background(), "admin@example.com", "admin123")

	assert.False(t, ok)
	assert.False(t, gate.IsLoading(), "loading must resolve even when persistence fails")
	assert.False(t, gate.IsAuthenticated())
	require.Len(t, notices, 1)
	assert.Equal(t, "Login Failed", notices[0].Title)
	assert.Equal(t, "Something went wrong. Please try again.", notices[0].Description)
}

func TestLogin_LoadingWindowBracketsOperation(t *testing.T) {
	store := session.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	dir, err := directory.NewMemory()
	require.NoError(t, err)
	probe := &loadingProbe{inner: dir}

	gate := NewGate(store, probe, event.NewBus())
	probe.gate = gate

	assert.False(t, gate.IsLoading())
	gate.Login(context.Background(), "admin@example.com", "admin123")
	assert.False(t, gate.IsLoading())

	require.Len(t, probe.seen, 1)
	assert.True(t, probe.seen[0], "loading must be true while the lookup runs")
}

func TestSignup_Success(t *testing.T) {
	f := newFixture(t)

	ok := f.gate.Signup(context.Background(), "New User", "new@example.com", "pw12345")

	require.True(t, ok)
	require.True(t, f.gate.IsAuthenticated())
	user := f.gate.User()
	assert.Equal(t, model.RoleUser, user.Role)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "1", user.ID)
	assert.NotEqual(t, "2", user.ID)

	saved, err := f.store.Load()
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, user.ID, saved.ID)
	assert.Equal(t, model.RoleUser, saved.Role)

	require.Len(t, *f.notices, 1)
	assert.Equal(t, "Account Created", (*f.notices)[0].Title)

	// The new account is usable for a later login
	f.gate.Logout()
	assert.True(t, f.gate.Login(context.Background(), "new@example.com", "pw12345"))
}

func TestSignup_DuplicateEmailIsCaseInsensitive(t *testing.T) {
	f := newFixture(t)

	for _, email := range []string{"admin@example.com", "Admin@Example.COM"} {
		ok := f.gate.Signup(context.Background(), "New User", email, "x")
		assert.False(t, ok, "signup with %s should collide with the demo admin", email)
		assert.False(t, f.gate.IsAuthenticated())
	}

	require.Len(t, *f.notices, 2)
	assert.Equal(t, "Signup Error", (*f.notices)[0].Title)
}

func TestSignup_GeneratedIDsAreUnique(t *testing.T) {
	f := newFixture(t)
	seen := map[string]bool{"1": true, "2": true}

	emails := []string{"a@example.com", "b@example.com", "c@example.com"}
	for _, email := range emails {
		require.True(t, f.gate.Signup(context.Background(), "User", email, "pw"))
		id := f.gate.User().ID
		assert.False(t, seen[id], "id %s reused", id)
		seen[id] = true
		f.gate.Logout()
	}
}

func TestLogout(t *testing.T) {
	f := newFixture(t)
	require.True(t, f.gate.Login(context.Background(), "user@example.com", "user123"))

	f.gate.Logout()

	assert.False(t, f.gate.IsAuthenticated())
	assert.Nil(t, f.gate.User())

	saved, err := f.store.Load()
	require.NoError(t, err)
	assert.Nil(t, saved)

	last := (*f.events)[len(*f.events)-1]
	assert.Equal(t, event.LoggedOut, last.Type)
	require.NotNil(t, last.User)
	assert.Equal(t, "2", last.User.ID)
}

func TestLogout_StoreFaultStillLogsOut(t *testing.T) {
	dir, err := directory.NewMemory()
	require.NoError(t, err)
	bus := event.NewBus()
	var events []event.Event
	bus.Subscribe(func(e event.Event) { events = append(events, e) })

	gate := NewGate(&failingStore{clearErr: errors.New("readonly fs")}, dir, bus)
	gate.Logout()

	assert.False(t, gate.IsAuthenticated())
	require.Len(t, events, 1)
	assert.Equal(t, event.LoggedOut, events[0].Type)
}

// Boot → login → restart → hydrated session, matching the persisted record.
func TestGate_SessionSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := session.NewFileStore(path)
	dir, err := directory.NewMemory()
	require.NoError(t, err)

	first := NewGate(store, dir, event.NewBus())
	require.True(t, first.Login(context.Background(), "admin@example.com", "admin123"))

	second := NewGate(store, dir, event.NewBus())
	require.True(t, second.IsAuthenticated())
	assert.Equal(t, "Admin User", second.User().Name)
	assert.Equal(t, model.RoleAdmin, second.User().Role)
}
