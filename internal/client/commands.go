package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
)

type command struct {
	args  int
	usage string
	run   func(ctx context.Context, args []string, out io.Writer) error
	// daemon commands run until ctx is cancelled and need no flush
	daemon bool
}

func (a *App) commands() map[string]command {
	return map[string]command{
		"save":    {args: 2, usage: "save <key> <json>", run: a.save},
		"load":    {args: 1, usage: "load <key>", run: a.load},
		"delete":  {args: 1, usage: "delete <key>", run: a.delete},
		"status":  {args: 1, usage: "status <key>", run: a.status},
		"pending": {args: 0, usage: "pending", run: a.pending},
		"run":     {args: 0, usage: "run", run: a.daemon, daemon: true},
	}
}

// Usage lists the supported commands.
func (a *App) Usage() string {
	cmds := a.commands()
	lines := make([]string, 0, len(cmds))
	for _, c := range cmds {
		lines = append(lines, "  "+c.usage)
	}
	sort.Strings(lines)

	return "commands:\n" + strings.Join(lines, "\n")
}

// Run starts background sync, executes the command in args and stops again.
// One-shot commands wait for the retry queue to drain before returning so
// that a save made while online reaches the remote authority.
func (a *App) Run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		return ErrNoCommand
	}

	cmd, ok := a.commands()[args[0]]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}
	if len(args)-1 != cmd.args {
		return fmt.Errorf("%w: usage: %s", ErrWrongArguments, cmd.usage)
	}

	a.Start(ctx)
	defer a.Stop()

	if err := cmd.run(ctx, args[1:], out); err != nil {
		return err
	}
	if !cmd.daemon {
		a.Flush(ctx)
	}

	return nil
}

func (a *App) save(ctx context.Context, args []string, _ io.Writer) error {
	raw := []byte(args[1])
	if !json.Valid(raw) {
		return ErrInvalidJSON
	}

	return a.storage.Save(ctx, args[0], json.RawMessage(raw))
}

func (a *App) load(ctx context.Context, args []string, out io.Writer) error {
	value, err := a.storage.Load(ctx, args[0])
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, string(value))
	return err
}

func (a *App) delete(ctx context.Context, args []string, _ io.Writer) error {
	return a.storage.Delete(ctx, args[0])
}

func (a *App) status(ctx context.Context, args []string, out io.Writer) error {
	status, err := a.storage.SyncStatus(ctx, args[0])
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, status)
	return err
}

func (a *App) pending(ctx context.Context, _ []string, out io.Writer) error {
	keys, err := a.storage.PendingKeys(ctx)
	if err != nil {
		return err
	}

	for _, key := range keys {
		if _, err = fmt.Fprintln(out, key); err != nil {
			return err
		}
	}

	return nil
}

func (a *App) daemon(ctx context.Context, _ []string, _ io.Writer) error {
	a.logger.Info().Str("func", "*App.daemon").Bool("online", a.Online()).Int("pending", a.Pending()).
		Msg("sync daemon running")
	<-ctx.Done()

	return nil
}
