package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
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
	Home(ctx context.Context) error
	Search(ctx context.Context, query string) error
	Brand(ctx context.Context, brandID string) error
	History(ctx context.Context, clear bool) error
	Show(ctx context.Context, id string) error
	Order(ctx context.Context, id string, quantity int) error
	Orders(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the storefront CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. The loop exits on EOF or when the user types
// "exit" or "quit".
//
//	Always:
//	  - help             show available commands
//	  - home             list packages
//	  - search <text>    search packages and remember the query
//	  - brand <id>       packages of one brand
//	  - history [clear]  recent searches
//	  - show <id>        package detail
//	  - whoami           re-check the stored session
//	  - exit | quit      leave the program
//
//	Not logged in:
//	  - register, login
//
//	Logged in:
//	  - order <id> [qty], orders, logout
//
// Handlers print their own errors through reportErr; the loop keeps going.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("shop> %s > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: home, search, brand, history, show, order, orders, whoami, logout, exit")
			} else {
				printlnFn("Available commands: home, search, brand, history, show, whoami, register, login, exit")
			}

		case "register":
			reportErr(a.Register(ctx))

		case "login":
			reportErr(a.Login(ctx))

		case "logout":
			reportErr(a.Logout(ctx))

		case "whoami":
			reportErr(a.WhoAmI(ctx))

		case "home", "h":
			reportErr(a.Home(ctx))

		case "search", "s":
			if len(args) == 0 {
				printlnFn("Usage: search <text>")
				continue
			}
			reportErr(a.Search(ctx, strings.Join(args, " ")))

		case "brand":
			if len(args) != 1 {
				printlnFn("Usage: brand <id>")
				continue
			}
			reportErr(a.Brand(ctx, args[0]))

		case "history":
			reportErr(a.History(ctx, len(args) > 0 && args[0] == "clear"))

		case "show":
			if len(args) != 1 {
				printlnFn("Usage: show <id>")
				continue
			}
			reportErr(a.Show(ctx, args[0]))

		case "order":
			id, qty, ok := parseOrderArgs(args)
			if !ok {
				printlnFn("Usage: order <id> [quantity]")
				continue
			}
			reportErr(a.Order(ctx, id, qty))

		case "orders":
			reportErr(a.Orders(ctx))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}

func reportErr(err error) {
	if err != nil {
		printlnFn("Error:", describeErr(err))
	}
}
