package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aussiebroadwan/inventory/pkg/idx"
	"github.com/aussiebroadwan/inventory/pkg/slogx"
)

// Run reads commands until EOF, exit, or ctx is cancelled. Command errors
// have already been shown to the user and are not returned.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, `Material Manager. Type "help" for commands.`)

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		fmt.Fprintf(a.out, "inventory %s> ", a.status())
		line, err := readLine(a.in)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(a.out)
			return nil
		}
		if err != nil {
			return err
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		a.busy.Store(true)
		if ctx.Err() != nil {
			a.busy.Store(false)
			return nil
		}
		more := a.dispatch(ctx, parts[0], parts[1:])
		a.busy.Store(false)
		if !more {
			fmt.Fprintln(a.out, "Bye!")
			return nil
		}
	}
}

func (a *App) status() string {
	if a.user == nil {
		return "(not logged in)"
	}
	return "(" + a.user.Username + ")"
}

// dispatch runs one command and reports whether the loop should go on.
func (a *App) dispatch(ctx context.Context, cmd string, args []string) bool {
	// A started command runs to completion even if shutdown begins.
	ctx = slogx.WithCommand(context.WithoutCancel(ctx), idx.New().String(), cmd)

	switch cmd {
	case "exit", "quit":
		return false
	case "help":
		a.help()
		return true
	}

	if !a.isLoggedIn() {
		switch cmd {
		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		default:
			a.unknown(cmd)
		}
		return true
	}

	switch cmd {
	case "l", "list":
		_ = a.List(ctx)
	case "find":
		_ = a.Find(ctx, args)
	case "add":
		_ = a.Add(ctx)
	case "update":
		_ = a.Update(ctx, args)
	case "delete":
		_ = a.Delete(ctx, args)
	case "report":
		_ = a.Report(ctx)
	case "export":
		_ = a.Export(ctx)
	case "logout":
		_ = a.Logout(ctx)
	default:
		a.unknown(cmd)
	}
	return true
}

func (a *App) help() {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Available commands: (l)ist, find <barcode>, add, update <id>, delete <id>, report, export, logout, exit")
		return
	}
	fmt.Fprintln(a.out, "Available commands: register, login, exit")
}

func (a *App) unknown(cmd string) {
	fmt.Fprintln(a.out, "Unknown command:", cmd)
}
