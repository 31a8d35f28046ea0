package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/ishwarya-18/todo-app/internal/client/api"
	"github.com/ishwarya-18/todo-app/internal/client/config"
	"github.com/ishwarya-18/todo-app/internal/client/session"
	"github.com/ishwarya-18/todo-app/internal/client/tokenx"
)

// backend is the part of api.Client the commands use.
type backend interface {
	SetToken(token string)
	Health(ctx context.Context) error
	Signup(ctx context.Context, name, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	ListTodos(ctx context.Context) ([]api.Task, error)
	CreateTodo(ctx context.Context, text string) (*api.Task, error)
	SetCompleted(ctx context.Context, id int64, completed bool) (*api.Task, error)
	DeleteTodo(ctx context.Context, id int64) error
	ListUsers(ctx context.Context) ([]api.User, error)
	DeleteUser(ctx context.Context, id int64) error
	PromoteUser(ctx context.Context, id int64) error
}

// tokenStore persists the session token between runs.
type tokenStore interface {
	Save(token string) error
	Load() (string, error)
	Clear() error
}

type App struct {
	api     backend
	store   tokenStore
	reader  *bufio.Reader
	out     io.Writer
	now     func() time.Time
	token   string
	payload *tokenx.Payload
}

func NewApp(c *config.Config) (*App, error) {
	if c.ServerURL == "" {
		return nil, errors.New("server URL is empty")
	}
	a := newApp(api.New(c.ServerURL, c.RequestTimeout), session.NewStore(c.TokenFile), os.Stdin, os.Stdout)
	a.restoreSession()
	return a, nil
}

func newApp(b backend, s tokenStore, in io.Reader, out io.Writer) *App {
	return &App{
		api:    b,
		store:  s,
		reader: bufio.NewReader(in),
		out:    out,
		now:    time.Now,
	}
}

// restoreSession picks up a saved, unexpired token.
func (a *App) restoreSession() {
	token, err := a.store.Load()
	if err != nil {
		if !errors.Is(err, session.ErrNoSession) {
			log.Printf("could not read saved session: %v", err)
		}
		return
	}
	if err := a.setSession(token); err != nil {
		_ = a.store.Clear()
	}
}

func (a *App) setSession(token string) error {
	if tokenx.IsExpired(token, a.now()) {
		return errSessionExpired
	}
	p, err := tokenx.Decode(token)
	if err != nil {
		return err
	}
	a.token, a.payload = token, p
	a.api.SetToken(token)
	return nil
}

func (a *App) dropSession() {
	a.token, a.payload = "", nil
	a.api.SetToken("")
	if err := a.store.Clear(); err != nil {
		log.Printf("could not clear session: %v", err)
	}
}

var errSessionExpired = errors.New("session expired")

// isLoggedIn also drops a session whose token has expired in the meantime.
func (a *App) isLoggedIn() bool {
	if a.payload == nil {
		return false
	}
	if tokenx.IsExpired(a.token, a.now()) {
		a.dropSession()
		fmt.Fprintln(a.out, "Session expired, please log in again")
		return false
	}
	return true
}

func (a *App) isAdmin() bool {
	return a.payload != nil && a.payload.IsAdmin()
}

func (a *App) getStatus() string {
	if a.payload == nil {
		return ""
	}
	return fmt.Sprintf("(%s #%d)", a.payload.Role, a.payload.UserID)
}

// Run prints a greeting, warns when the server is unreachable and blocks in
// the command loop until the user exits.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to the todo CLI (type 'help' for commands)")

	hctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	if err := a.api.Health(hctx); err != nil {
		fmt.Fprintln(a.out, "Warning: server is not reachable:", err)
	}
	cancel()

	runREPL(ctx, a, a.getStatus, a.reader)
}
