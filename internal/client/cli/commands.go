package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/ishwarya-18/todo-app/internal/client/api"
)

func (a *App) Signup(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return a.report(err)
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return a.report(err)
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return a.report(err)
	}

	token, err := a.api.Signup(ctx, name, email, password)
	if err != nil {
		return a.report(err)
	}
	if err := a.startSession(token); err != nil {
		return a.report(err)
	}
	fmt.Fprintln(a.out, "User created successfully")
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return a.report(err)
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return a.report(err)
	}

	token, err := a.api.Login(ctx, email, password)
	if err != nil {
		// a failed login must not keep the old session around
		if errors.Is(err, api.ErrUnauthorized) {
			a.dropSession()
		}
		return a.report(err)
	}
	if err := a.startSession(token); err != nil {
		return a.report(err)
	}
	fmt.Fprintln(a.out, "Login successful")
	return nil
}

func (a *App) startSession(token string) error {
	if err := a.setSession(token); err != nil {
		return err
	}
	return a.store.Save(token)
}

func (a *App) Logout(_ context.Context) error {
	a.dropSession()
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) Whoami(_ context.Context) error {
	p := a.payload
	fmt.Fprintf(a.out, "User #%d, role %s, session valid until %s\n",
		p.UserID, p.Role, p.ExpiresAt.Local().Format("2006-01-02 15:04"))
	return nil
}

func (a *App) List(ctx context.Context) error {
	tasks, err := a.api.ListTodos(ctx)
	if err != nil {
		return a.report(err)
	}
	if len(tasks) == 0 {
		fmt.Fprintln(a.out, "No todos yet")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	for _, t := range tasks {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		fmt.Fprintf(tw, "[%s]\t#%d\t%s\n", mark, t.ID, t.Task)
	}
	return tw.Flush()
}

// Add creates a todo from text, prompting for it when text is empty.
func (a *App) Add(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		var err error
		if text, err = GetSimpleText(a.reader, "Enter task", a.out); err != nil {
			return a.report(err)
		}
	}

	t, err := a.api.CreateTodo(ctx, text)
	if err != nil {
		return a.report(err)
	}
	fmt.Fprintf(a.out, "Added #%d: %s\n", t.ID, t.Task)
	return nil
}

func (a *App) SetDone(ctx context.Context, arg string, done bool) error {
	id, err := parseID(arg)
	if err != nil {
		return a.report(err)
	}
	t, err := a.api.SetCompleted(ctx, id, done)
	if err != nil {
		return a.report(err)
	}
	if t.Completed {
		fmt.Fprintf(a.out, "Marked #%d as done\n", t.ID)
	} else {
		fmt.Fprintf(a.out, "Marked #%d as not done\n", t.ID)
	}
	return nil
}

func (a *App) Delete(ctx context.Context, arg string) error {
	id, err := parseID(arg)
	if err != nil {
		return a.report(err)
	}
	if err := a.api.DeleteTodo(ctx, id); err != nil {
		return a.report(err)
	}
	fmt.Fprintln(a.out, "Todo deleted successfully")
	return nil
}

func (a *App) Users(ctx context.Context) error {
	users, err := a.api.ListUsers(ctx)
	if err != nil {
		return a.report(err)
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tROLE")
	for _, u := range users {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Role)
	}
	return tw.Flush()
}

func (a *App) Promote(ctx context.Context, arg string) error {
	id, err := parseID(arg)
	if err != nil {
		return a.report(err)
	}
	if err := a.api.PromoteUser(ctx, id); err != nil {
		return a.report(err)
	}
	fmt.Fprintln(a.out, "User promoted to admin successfully")
	return nil
}

func (a *App) DeleteUser(ctx context.Context, arg string) error {
	id, err := parseID(arg)
	if err != nil {
		return a.report(err)
	}
	if err := a.api.DeleteUser(ctx, id); err != nil {
		return a.report(err)
	}
	fmt.Fprintln(a.out, "User deleted successfully")
	return nil
}

var errBadID = errors.New("id must be a positive number")

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, errBadID
	}
	return id, nil
}

// report prints err for the user and returns it. A rejected token ends the
// local session.
func (a *App) report(err error) error {
	switch {
	case errors.Is(err, api.ErrUnauthorized) && a.payload != nil:
		a.dropSession()
		fmt.Fprintln(a.out, "Session is no longer valid, please log in again")
	case errors.Is(err, api.ErrUnavailable):
		fmt.Fprintln(a.out, "Server unavailable, try again later")
	default:
		fmt.Fprintln(a.out, "Error:", err)
	}
	return err
}
