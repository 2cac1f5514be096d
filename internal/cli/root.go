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
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	List(ctx context.Context) error
	Add(ctx context.Context) error
	Delete(ctx context.Context, arg string) error
	Watch(ctx context.Context) error
}

// root starts the interactive loop. It reuses the app's reader: stdin has
// exactly one buffering reader, shared by the REPL and the input prompts.
func (a *App) root(ctx context.Context) {
	printlnFn("otpkeeper (type 'help' for commands)")
	runREPL(ctx, a, a.reader)
}

// runREPL reads a line from the reader, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on EOF, context cancellation, or when the
// user types "exit" or "quit".
//
// Commands:
//
//	list | l       - print current codes
//	watch | w      - stream codes until Enter is pressed
//	add            - store a new otpauth:// URI (shown after restart)
//	delete N | d N - delete the N-th listed entry
//	help           - show available commands
//	exit | quit    - leave the program
//
// Errors returned by command handlers are printed here; the loop itself
// stays resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		printlnFn("otpk> ")
		line, readErr := reader.ReadString('\n')

		parts := strings.Fields(line)
		if len(parts) == 0 {
			if readErr != nil {
				return
			}
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		var err error
		switch cmd {
		case "help":
			printlnFn("Available commands: (l)ist, (w)atch, add, (d)elete N, exit")

		case "list", "l":
			err = a.List(ctx)

		case "watch", "w":
			err = a.Watch(ctx)

		case "add":
			err = a.Add(ctx)

		case "delete", "d":
			arg := ""
			if len(args) > 0 {
				arg = args[0]
			}
			err = a.Delete(ctx, arg)

		case "exit", "quit":
			return

		default:
			printlnFn(fmt.Sprintf("unknown command %q, type 'help'", cmd))
		}

		if err != nil {
			printlnFn(fmt.Sprintf("error: %v", err))
		}

		if readErr != nil {
			return
		}
	}
}
