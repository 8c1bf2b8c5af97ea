package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/bnema/council-cli/internal/adapters/render/console"
	"github.com/spf13/cobra"
)

const (
	exitCommand  = "exit"
	quickCommand = "!quick"
	persistGrace = 5 * time.Second
	maxLineBytes = 1 << 20
)

var errUnrecoverable = errors.New("unrecoverable error")

func newChatCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive session with the council",
		Long: "Each line is debated by the roster and answered by the moderator. " +
			"Type '!quick <question>' to ask the fallback endpoints directly and 'exit' to save and quit.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			signals := make(chan os.Signal, 1)
			signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(signals)

			return runChat(cmd.Context(), app, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), signals)
		},
	}
}

// runChat reads one line at a time and runs each turn to completion before
// reading the next. A signal cancels the session, persists and returns nil.
func runChat(parent context.Context, app *app, in io.Reader, out, errOut io.Writer, signals <-chan os.Signal) (err error) {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	sess, err := app.openSession(ctx)
	if err != nil {
		return err
	}
	defer sess.close()

	printer := console.NewPrinter(out)
	transcript := sess.store.Load(ctx)
	if transcript.Len() > 1 {
		printer.Loaded(transcript.Len())
	}

	persist := func() {
		persistCtx, cancelPersist := context.WithTimeout(context.Background(), persistGrace)
		defer cancelPersist()
		if err := sess.store.Persist(persistCtx); err == nil {
			printer.Saved(app.transcripts.Path(), sess.store.Transcript().Len())
		}
	}

	defer func() {
		if r := recover(); r != nil {
			app.logger.Error("uncaught fault", "panic", r)
			persist()
			err = fmt.Errorf("%w: %v", errUnrecoverable, r)
		}
	}()

	go func() {
		select {
		case <-signals:
			cancel()
		case <-ctx.Done():
		}
	}()

	lines := scanLines(ctx, in)
	for {
		_, _ = io.WriteString(out, printer.Prompt())

		var line string
		var ok bool
		select {
		case <-ctx.Done():
			persist()
			return nil
		case line, ok = <-lines:
		}
		if !ok {
			persist()
			printer.Goodbye()
			return nil
		}

		text := strings.TrimSpace(line)
		switch {
		case text == "":
			printer.EmptyInput()
		case strings.EqualFold(text, exitCommand):
			persist()
			printer.Goodbye()
			return nil
		case text == quickCommand || strings.HasPrefix(text, quickCommand+" "):
			question := strings.TrimSpace(strings.TrimPrefix(text, quickCommand))
			if question == "" {
				printer.EmptyInput()
				continue
			}
			report, err := sess.conversation.Quick(ctx, question)
			if err != nil {
				printer.Error(err)
				continue
			}
			printer.Quick(report)
		default:
			if err := runTurn(ctx, app, sess, text, printer, errOut); err != nil {
				if ctx.Err() != nil {
					continue
				}
				printer.Error(err)
			}
		}
	}
}

func scanLines(ctx context.Context, in io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 64*1024), maxLineBytes)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}
