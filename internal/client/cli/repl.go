package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	List(ctx context.Context) error
	Add(ctx context.Context, text string) error
	SetDone(ctx context.Context, id string, done bool) error
	Delete(ctx context.Context, id string) error
	Users(ctx context.Context) error
	Promote(ctx context.Context, id string) error
	DeleteUser(ctx context.Context, id string) error
}

const (
	helpGuest = "Available commands: signup, login, help, exit"
	helpUser  = "Available commands: (l)ist, add <text>, done <id>, undo <id>, delete <id>, whoami, logout, help, exit"
	helpAdmin = "Admin commands: users, promote <id>, deluser <id>"
)

// runREPL reads one command per line from reader and dispatches it to a.
// The loop ends on EOF or "exit" / "quit".
//
// Commands that need a session are refused while logged out, and the admin
// commands are refused unless the session belongs to an administrator.
// Errors returned by handlers are ignored here; handlers report their own.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("todo %s> ", statusFn()))

		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			switch {
			case !a.isLoggedIn():
				printlnFn(helpGuest)
			case a.isAdmin():
				printlnFn(helpUser)
				printlnFn(helpAdmin)
			default:
				printlnFn(helpUser)
			}
			continue

		case "exit", "quit":
			printlnFn("Bye!")
			return

		case "signup":
			_ = a.Signup(ctx)
			continue

		case "login":
			_ = a.Login(ctx)
			continue
		}

		if !a.isLoggedIn() {
			if isKnown(cmd) {
				printlnFn("Please log in first")
			} else {
				printlnFn("Unknown command:", cmd)
			}
			continue
		}

		if isAdminCommand(cmd) && !a.isAdmin() {
			printlnFn("Admin access required")
			continue
		}

		switch cmd {
		case "logout":
			_ = a.Logout(ctx)
		case "whoami":
			_ = a.Whoami(ctx)
		case "l", "list":
			_ = a.List(ctx)
		case "add":
			_ = a.Add(ctx, strings.Join(args, " "))
		case "done", "undo":
			if len(args) != 1 {
				printlnFn("Usage:", cmd, "<id>")
				continue
			}
			_ = a.SetDone(ctx, args[0], cmd == "done")
		case "delete", "promote", "deluser":
			if len(args) != 1 {
				printlnFn("Usage:", cmd, "<id>")
				continue
			}
			switch cmd {
			case "delete":
				_ = a.Delete(ctx, args[0])
			case "promote":
				_ = a.Promote(ctx, args[0])
			default:
				_ = a.DeleteUser(ctx, args[0])
			}
		case "users":
			_ = a.Users(ctx)
		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func isAdminCommand(cmd string) bool {
	return cmd == "users" || cmd == "promote" || cmd == "deluser"
}

func isKnown(cmd string) bool {
	switch cmd {
	case "logout", "whoami", "l", "list", "add", "done", "undo", "delete":
		return true
	}
	return isAdminCommand(cmd)
}
