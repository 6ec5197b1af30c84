package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/memorybox/backend/internal/client"
)

type command func(ctx context.Context, args []string) error

// commander is the surface the REPL dispatches to. App implements it.
type commander interface {
	isLoggedIn() bool
	Login(ctx context.Context, args []string) error
	Logout(ctx context.Context, args []string) error
	Verify(ctx context.Context, args []string) error
	Photos(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	ToggleUpload(ctx context.Context, args []string) error
	Stats(ctx context.Context, args []string) error
	Memories(ctx context.Context, args []string) error
	DeleteMemory(ctx context.Context, args []string) error
	Settings(ctx context.Context, args []string) error
	Rename(ctx context.Context, args []string) error
	QRCode(ctx context.Context, args []string) error
}

func commands(a commander) map[string]command {
	return map[string]command{
		"verify":        a.Verify,
		"photos":        a.Photos,
		"delete":        a.Delete,
		"toggle-upload": a.ToggleUpload,
		"stats":         a.Stats,
		"memories":      a.Memories,
		"forget":        a.DeleteMemory,
		"settings":      a.Settings,
		"rename":        a.Rename,
		"qrcode":        a.QRCode,
		"logout":        a.Logout,
	}
}

// runREPL reads one command per line until EOF or exit. Command errors are
// printed and the loop continues.
func runREPL(ctx context.Context, a commander, statusFn func() string, reader *bufio.Reader, out io.Writer) {
	admin := commands(a)
	for {
		line, err := ReadLine(reader, out, fmt.Sprintf("wedding [%s]> ", statusFn()))
		if err != nil {
			fmt.Fprintln(out)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name, args := parts[0], parts[1:]

		switch name {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(out, "Commands: verify, photos [uploader], delete <id...>, toggle-upload, stats, memories, forget <id>, settings, rename <names>, qrcode <url>, logout, exit")
			} else {
				fmt.Fprintln(out, "Commands: login [username], exit")
			}
			continue
		case "login":
			err = a.Login(ctx, args)
		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return
		default:
			cmd, ok := admin[name]
			if !ok {
				fmt.Fprintln(out, "Unknown command:", name)
				continue
			}
			if !a.isLoggedIn() {
				fmt.Fprintln(out, "Please login first.")
				continue
			}
			err = cmd(ctx, args)
		}

		if err != nil {
			printError(out, err)
		}
	}
}

func printError(out io.Writer, err error) {
	var apiErr *client.APIError
	switch {
	case errors.Is(err, client.ErrReauthRequired):
		fmt.Fprintln(out, "Error: session expired, please login again")
	case errors.As(err, &apiErr):
		fmt.Fprintf(out, "Error: %s\n", apiErr.Message)
	default:
		fmt.Fprintf(out, "Error: %v\n", err)
	}
}
