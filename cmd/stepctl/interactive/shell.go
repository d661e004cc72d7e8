// Package interactive provides the stepctl shell.
package interactive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/stepseries/stepseries-go/cmd/stepctl/commands"
	"github.com/stepseries/stepseries-go/pkg/catalog"
	"github.com/stepseries/stepseries-go/pkg/session"
	"github.com/stepseries/stepseries-go/pkg/version"
)

// Device is the board handle the shell drives. *device.Device implements it.
type Device interface {
	commands.Client

	Handshake(ctx context.Context) (*catalog.DestIP, error)
	Reset(ctx context.Context) error
	Firmware(ctx context.Context) (version.Firmware, *catalog.Version, error)
	Identity() session.Identity
	Session() *session.Session
}

// Shell handles interactive mode for stepctl.
type Shell struct {
	dev     Device
	rl      *readline.Instance
	out     io.Writer
	watcher *commands.Watcher
	timeout time.Duration
}

// New creates a shell for dev.
func New(dev Device) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "step> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    completer(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	s := newShell(dev, rl.Stdout())
	s.rl = rl
	return s, nil
}

func newShell(dev Device, out io.Writer) *Shell {
	return &Shell{
		dev:     dev,
		out:     out,
		watcher: commands.NewWatcher(dev, out),
		timeout: 5 * time.Second,
	}
}

// Stdout returns a writer that coordinates with the prompt.
func (s *Shell) Stdout() io.Writer {
	return s.out
}

// Run reads and executes commands until quit, EOF or ctx ends.
func (s *Shell) Run(ctx context.Context, cancel context.CancelFunc) {
	defer s.rl.Close()
	defer s.watcher.Unwatch()

	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			fmt.Fprintln(s.out, "Exiting...")
			cancel()
			return
		}

		if s.Exec(ctx, line) {
			cancel()
			return
		}
	}
}

// Exec runs one command line. It reports whether the shell should exit.
func (s *Shell) Exec(ctx context.Context, line string) (quit bool) {
	parts := strings.Fields(strings.TrimSpace(line))
	if len(parts) == 0 {
		return false
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]
	out := s.out

	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var err error
	switch cmd {
	case "help", "?":
		s.printHelp()

	case "get", "g":
		err = commands.Get(cctx, s.dev, args, out)

	case "set", "s":
		if err = commands.Set(cctx, s.dev, args); err == nil {
			fmt.Fprintln(out, "ok")
		}

	case "watch", "w":
		if err = s.watcher.Watch(args...); err == nil {
			fmt.Fprintf(out, "watching %v\n", s.watcher.Watching())
		}

	case "unwatch":
		err = s.watcher.Unwatch(args...)

	case "commands", "ls":
		prefix := ""
		if len(args) > 0 {
			prefix = args[0]
		}
		for _, n := range commands.Matching(prefix) {
			fmt.Fprintln(out, "  "+n)
		}

	case "handshake":
		var dest *catalog.DestIP
		if dest, err = s.dev.Handshake(cctx); err == nil {
			fmt.Fprintln(out, commands.FormatResponse(dest))
		}

	case "reset":
		err = s.dev.Reset(cctx)

	case "version":
		var fw version.Firmware
		var v *catalog.Version
		if fw, v, err = s.dev.Firmware(cctx); err == nil {
			fmt.Fprintf(out, "%s %s (built %s)\n", v.FirmwareName, fw, v.CompileDate)
			if !fw.Supported() {
				fmt.Fprintf(out, "Warning: firmware major %d is not supported\n", fw.Major)
			}
		}

	case "status":
		s.printStatus()

	case "quit", "exit", "q":
		fmt.Fprintln(out, "Exiting...")
		return true

	default:
		fmt.Fprintf(out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}

	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
	}
	return false
}

func (s *Shell) printStatus() {
	out := s.out
	sess := s.dev.Session()
	id := s.dev.Identity()
	fmt.Fprintf(out, "Board:    %s (%s)\n", id.Remote, sess.Config().Model)
	fmt.Fprintf(out, "Listen:   %s\n", id.Listen)
	fmt.Fprintf(out, "Session:  %s\n", sess.SessionID())
	fmt.Fprintf(out, "Bound:    %v\n", sess.Bound())
	fmt.Fprintf(out, "Timeout:  %s\n", sess.Config().Timeout)
	fmt.Fprintf(out, "Watching: %v\n", s.watcher.Watching())
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `
stepctl Commands:
  Board:
    get <Command> [args]   - Send a query and print the replies
    set <Command> [args]   - Send a command
    handshake              - Make this host the board's destination
    reset                  - Reboot the board
    version                - Show the firmware version
    status                 - Show connection status

  Reports:
    watch [Kind...]        - Print inbound messages (all kinds when empty)
    unwatch [Kind...]      - Stop printing (all kinds when empty)

  Catalog:
    commands [filter]      - List command names

  General:
    help                   - Show this help
    quit                   - Exit

  Examples:
    set EnableBusyReport 1 true
    watch Busy
    get GetMicrostepMode 255`)
}

func completer() *readline.PrefixCompleter {
	names := catalog.CommandNames()
	items := make([]readline.PrefixCompleterInterface, 0, len(names))
	for _, n := range names {
		items = append(items, readline.PcItem(n))
	}
	kinds := catalog.Kinds()
	kindItems := make([]readline.PrefixCompleterInterface, 0, len(kinds))
	for _, k := range kinds {
		kindItems = append(kindItems, readline.PcItem(string(k)))
	}

	return readline.NewPrefixCompleter(
		readline.PcItem("get", items...),
		readline.PcItem("set", items...),
		readline.PcItem("watch", kindItems...),
		readline.PcItem("unwatch", kindItems...),
		readline.PcItem("commands"),
		readline.PcItem("handshake"),
		readline.PcItem("reset"),
		readline.PcItem("version"),
		readline.PcItem("status"),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}
