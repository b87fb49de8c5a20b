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
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Messages(ctx context.Context) error
	Say(ctx context.Context) error
	Edit(ctx context.Context) error
	Posts(ctx context.Context) error
	Compose(ctx context.Context) error
	Publish(ctx context.Context) error
	Remove(ctx context.Context) error
	Page(ctx context.Context) error
	EditPage(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the inkwell CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("ink %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, (m)essages, say, edit, (p)osts, compose, publish, remove, page, editpage, logout, exit")
			} else {
				printlnFn("Available commands: register, login, (m)essages, (p)osts, page, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "m", "messages":
			_ = a.Messages(ctx)

		case "say":
			_ = a.Say(ctx)

		case "edit":
			_ = a.Edit(ctx)

		case "p", "posts":
			_ = a.Posts(ctx)

		case "compose":
			_ = a.Compose(ctx)

		case "publish":
			_ = a.Publish(ctx)

		case "remove":
			_ = a.Remove(ctx)

		case "page":
			_ = a.Page(ctx)

		case "editpage":
			_ = a.EditPage(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
