package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
)

// printlnFn is a test seam for REPL output.
var printlnFn = fmt.Println

var errUsage = errors.New("usage")

// execIface is the command surface the REPL dispatches to. App satisfies it;
// tests provide a stub.
type execIface interface {
	isSignedIn() bool
	Login(ctx context.Context, args []string) error
	Logout(ctx context.Context, args []string) error
	WhoAmI(ctx context.Context) error
	Profile(ctx context.Context, args []string) error
	Art(ctx context.Context, args []string) error
	Lookup(ctx context.Context, args []string) error
}

const (
	helpSignedOut = "Available commands: login <account>, whoami, help, exit"
	helpSignedIn  = `Available commands:
  profile set key=value...   publish or update your profile (name, bio, avatar, link.<name>)
  profile show               show your published profile
  art upload <image> <stegod> title=... [description=...] [original=<cid>]
  art show <cid>             show artwork metadata (alias: lookup <cid>)
  art image <cid> <file>     save the artwork image
  art stegod <cid> <file>    save the steganographic payload
  whoami, logout [--forget], help, exit`
)

// runREPL reads one command per line and dispatches it. Commands other than
// login, whoami, help and exit require a signed-in wallet. Handler errors are
// reported and the loop continues; it ends on EOF or "exit"/"quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, prompt bool, scanner *bufio.Scanner) {
	for {
		if prompt {
			fmt.Printf("furball%s> ", statusFn())
		}
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			if a.isSignedIn() {
				printlnFn(helpSignedIn)
			} else {
				printlnFn(helpSignedOut)
			}
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		case "login":
			err = a.Login(ctx, args)
		case "whoami":
			err = a.WhoAmI(ctx)
		case "logout", "profile", "art", "lookup":
			if !a.isSignedIn() {
				printlnFn("Sign in first: login <account>")
				continue
			}
			switch cmd {
			case "logout":
				err = a.Logout(ctx, args)
			case "profile":
				err = a.Profile(ctx, args)
			case "art":
				err = a.Art(ctx, args)
			case "lookup":
				err = a.Lookup(ctx, args)
			}
		default:
			printlnFn("Unknown command:", cmd)
			continue
		}

		if err != nil {
			printlnFn("Error:", err)
		}
	}
}
