package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ishwarya-18/todo-app/internal/client/api"
	"github.com/ishwarya-18/todo-app/internal/client/config"
	"github.com/ishwarya-18/todo-app/internal/client/session"
)

var clock = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func makeToken(t *testing.T, userID int64, role string, exp time.Time) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userID,
		"role":   role,
		"iat":    clock.Add(-time.Hour).Unix(),
		"exp":    exp.Unix(),
	}).SignedString([]byte("k"))
	require.NoError(t, err)
	return tok
}

type fakeBackend struct {
	token string

	loginToken string
	loginErr   error
	signupErr  error
	healthErr  error
	err        error

	tasks []api.Task
	users []api.User
	calls []string
}

func (f *fakeBackend) SetToken(token string) { f.token = token }

func (f *fakeBackend) Health(context.Context) error { return f.healthErr }

func (f *fakeBackend) Signup(_ context.Context, name, email, _ string) (string, error) {
	f.calls = append(f.calls, "signup "+name+" "+email)
	return f.loginToken, f.signupErr
}

func (f *fakeBackend) Login(_ context.Context, email, password string) (string, error) {
	f.calls = append(f.calls, "login "+email+" "+password)
	return f.loginToken, f.loginErr
}

func (f *fakeBackend) ListTodos(context.Context) ([]api.Task, error) {
	return f.tasks, f.err
}

func (f *fakeBackend) CreateTodo(_ context.Context, text string) (*api.Task, error) {
	f.calls = append(f.calls, "create "+text)
	if f.err != nil {
		return nil, f.err
	}
	return &api.Task{ID: 9, Task: strings.TrimSpace(text)}, nil
}

func (f *fakeBackend) SetCompleted(_ context.Context, id int64, completed bool) (*api.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &api.Task{ID: id, Completed: completed}, nil
}

func (f *fakeBackend) DeleteTodo(context.Context, int64) error { return f.err }

func (f *fakeBackend) ListUsers(context.Context) ([]api.User, error) { return f.users, f.err }

func (f *fakeBackend) DeleteUser(context.Context, int64) error { return f.err }

func (f *fakeBackend) PromoteUser(context.Context, int64) error { return f.err }

type memTokens struct {
	token   string
	cleared bool
}

func (m *memTokens) Save(token string) error {
	m.token = token
	return nil
}

func (m *memTokens) Load() (string, error) {
	if m.token == "" {
		return "", session.ErrNoSession
	}
	return m.token, nil
}

func (m *memTokens) Clear() error {
	m.token, m.cleared = "", true
	return nil
}

func newTestApp(t *testing.T, b *fakeBackend, store *memTokens, input string) (*App, *bytes.Buffer) {
	t.Helper()
	stubPassword(t, "pw", nil)
	var out bytes.Buffer
	a := newApp(b, store, strings.NewReader(input), &out)
	a.now = func() time.Time { return clock }
	return a, &out
}

func TestApp_RestoreSession(t *testing.T) {
	valid := makeToken(t, 3, "user", clock.Add(time.Hour))

	b := &fakeBackend{}
	store := &memTokens{token: valid}
	a, _ := newTestApp(t, b, store, "")
	a.restoreSession()

	assert.True(t, a.isLoggedIn())
	assert.False(t, a.isAdmin())
	assert.Equal(t, valid, b.token)
	assert.Equal(t, "(user #3)", a.getStatus())
}

func TestApp_RestoreSession_ExpiredIsDropped(t *testing.T) {
	store := &memTokens{token: makeToken(t, 3, "user", clock)}
	a, _ := newTestApp(t, &fakeBackend{}, store, "")
	a.restoreSession()

	assert.False(t, a.isLoggedIn())
	assert.True(t, store.cleared)
	assert.Equal(t, "", a.getStatus())
}

func TestApp_SessionExpiresWhileRunning(t *testing.T) {
	exp := clock.Add(time.Minute)
	b := &fakeBackend{}
	store := &memTokens{token: makeToken(t, 3, "admin", exp)}
	a, out := newTestApp(t, b, store, "")
	a.restoreSession()
	require.True(t, a.isAdmin())

	a.now = func() time.Time { return exp }

	assert.False(t, a.isLoggedIn())
	assert.False(t, a.isAdmin())
	assert.Empty(t, b.token)
	assert.Contains(t, out.String(), "Session expired")
}

func TestApp_Login(t *testing.T) {
	admin := makeToken(t, 1, "admin", clock.Add(time.Hour))
	b := &fakeBackend{loginToken: admin}
	store := &memTokens{}
	a, out := newTestApp(t, b, store, "admin@example.com\n")

	require.NoError(t, a.Login(context.Background()))

	assert.Equal(t, []string{"login admin@example.com pw"}, b.calls)
	assert.Equal(t, admin, store.token)
	assert.True(t, a.isAdmin())
	assert.Contains(t, out.String(), "Login successful")
}

func TestApp_LoginRejected(t *testing.T) {
	b := &fakeBackend{loginErr: &api.Error{Status: 401, Code: "unauthorized", Message: "Invalid email or password"}}
	store := &memTokens{token: makeToken(t, 3, "user", clock.Add(time.Hour))}
	a, out := newTestApp(t, b, store, "a@b.c\n")
	a.restoreSession()

	err := a.Login(context.Background())
	require.Error(t, err)
	assert.False(t, a.isLoggedIn())
	assert.True(t, store.cleared)
	assert.Contains(t, out.String(), "Error: Invalid email or password")
}

func TestApp_Signup(t *testing.T) {
	tok := makeToken(t, 5, "user", clock.Add(time.Hour))
	b := &fakeBackend{loginToken: tok}
	store := &memTokens{}
	a, out := newTestApp(t, b, store, "Bob\nbob@example.com\n")

	require.NoError(t, a.Signup(context.Background()))
	assert.Equal(t, []string{"signup Bob bob@example.com"}, b.calls)
	assert.Equal(t, tok, store.token)
	assert.Contains(t, out.String(), "User created successfully")
}

func TestApp_SignupDuplicate(t *testing.T) {
	b := &fakeBackend{signupErr: &api.Error{Status: 400, Code: "duplicate_identity", Message: "User with this email already exists"}}
	a, out := newTestApp(t, b, &memTokens{}, "Bob\nbob@example.com\n")

	require.Error(t, a.Signup(context.Background()))
	assert.False(t, a.isLoggedIn())
	assert.Contains(t, out.String(), "Error: User with this email already exists")
}

func loggedIn(t *testing.T, b *fakeBackend, role, input string) (*App, *bytes.Buffer, *memTokens) {
	t.Helper()
	store := &memTokens{token: makeToken(t, 2, role, clock.Add(time.Hour))}
	a, out := newTestApp(t, b, store, input)
	a.restoreSession()
	require.True(t, a.isLoggedIn())
	return a, out, store
}

func TestApp_TodoCommands(t *testing.T) {
	ctx := context.Background()
	b := &fakeBackend{tasks: []api.Task{
		{ID: 2, Task: "second", Completed: true},
		{ID: 1, Task: "first"},
	}}
	a, out, _ := loggedIn(t, b, "user", "typed task\n")

	require.NoError(t, a.List(ctx))
	require.NoError(t, a.Add(ctx, "buy milk"))
	require.NoError(t, a.Add(ctx, ""))
	require.NoError(t, a.SetDone(ctx, "4", true))
	require.NoError(t, a.SetDone(ctx, "4", false))
	require.NoError(t, a.Delete(ctx, "4"))
	require.NoError(t, a.Whoami(ctx))

	s := out.String()
	assert.Contains(t, s, "[x]  #2  second")
	assert.Contains(t, s, "[ ]  #1  first")
	assert.Contains(t, s, "Added #9: buy milk")
	assert.Contains(t, s, "Added #9: typed task")
	assert.Contains(t, s, "Marked #4 as done")
	assert.Contains(t, s, "Marked #4 as not done")
	assert.Contains(t, s, "Todo deleted successfully")
	assert.Contains(t, s, "User #2, role user")
	assert.Equal(t, []string{"create buy milk", "create typed task"}, b.calls)
}

func TestApp_EmptyList(t *testing.T) {
	a, out, _ := loggedIn(t, &fakeBackend{}, "user", "")
	require.NoError(t, a.List(context.Background()))
	assert.Contains(t, out.String(), "No todos yet")
}

func TestApp_BadID(t *testing.T) {
	ctx := context.Background()
	a, out, _ := loggedIn(t, &fakeBackend{}, "user", "")

	for _, id := range []string{"abc", "0", "-3"} {
		assert.ErrorIs(t, a.Delete(ctx, id), errBadID)
	}
	assert.ErrorIs(t, a.SetDone(ctx, "x", true), errBadID)
	assert.ErrorIs(t, a.Promote(ctx, "x"), errBadID)
	assert.ErrorIs(t, a.DeleteUser(ctx, "x"), errBadID)
	assert.Contains(t, out.String(), "id must be a positive number")
}

func TestApp_AdminCommands(t *testing.T) {
	ctx := context.Background()
	b := &fakeBackend{users: []api.User{{ID: 7, Name: "Alice", Email: "alice@example.com", Role: "user"}}}
	a, out, _ := loggedIn(t, b, "admin", "")

	require.NoError(t, a.Users(ctx))
	require.NoError(t, a.Promote(ctx, "7"))
	require.NoError(t, a.DeleteUser(ctx, "7"))

	s := out.String()
	assert.Contains(t, s, "alice@example.com")
	assert.Contains(t, s, "User promoted to admin successfully")
	assert.Contains(t, s, "User deleted successfully")
}

func TestApp_RejectedTokenEndsSession(t *testing.T) {
	b := &fakeBackend{err: &api.Error{Status: 403, Code: "invalid_token", Message: "Invalid or expired token"}}
	a, out, store := loggedIn(t, b, "user", "")

	err := a.List(context.Background())
	assert.ErrorIs(t, err, api.ErrUnauthorized)
	assert.False(t, a.isLoggedIn())
	assert.True(t, store.cleared)
	assert.Contains(t, out.String(), "Session is no longer valid")
}

func TestApp_ServerUnavailable(t *testing.T) {
	b := &fakeBackend{err: api.ErrUnavailable}
	a, out, _ := loggedIn(t, b, "user", "")

	require.Error(t, a.Delete(context.Background(), "1"))
	assert.True(t, a.isLoggedIn(), "an outage does not end the session")
	assert.Contains(t, out.String(), "Server unavailable")
}

func TestApp_Logout(t *testing.T) {
	b := &fakeBackend{}
	a, out, store := loggedIn(t, b, "user", "")

	require.NoError(t, a.Logout(context.Background()))
	assert.False(t, a.isLoggedIn())
	assert.True(t, store.cleared)
	assert.Empty(t, b.token)
	assert.Contains(t, out.String(), "Logged out")
}

func TestApp_Run(t *testing.T) {
	captureOutput(t)

	b := &fakeBackend{healthErr: errors.New("connection refused")}
	a, out := newTestApp(t, b, &memTokens{}, "exit\n")

	a.Run(context.Background())

	assert.Contains(t, out.String(), "Welcome to the todo CLI")
	assert.Contains(t, out.String(), "server is not reachable")
}

func TestNewApp(t *testing.T) {
	_, err := NewApp(&config.Config{})
	assert.Error(t, err)

	a, err := NewApp(&config.Config{ServerURL: "http://127.0.0.1:1", TokenFile: t.TempDir() + "/token", RequestTimeout: time.Second})
	require.NoError(t, err)
	assert.False(t, a.isLoggedIn())
}
