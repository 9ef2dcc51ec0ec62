// Package menu asks the user which catalog entry to run.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dkoosis/rflaunch/pkg/suite"
)

var (
	// ErrQuit means the user left the menu without choosing (q/esc).
	ErrQuit = errors.New("menu closed without a selection")
	// ErrCancelled means the user hit ctrl+c inside the menu.
	ErrCancelled = errors.New("menu cancelled")
)

// Prompter chooses a catalog key and answers free-text questions.
type Prompter interface {
	// Choose returns the selected key. It is not validated unless the
	// catalog asks for re-prompting.
	Choose(ctx context.Context, c *suite.Catalog) (string, error)
	// Ask returns the trimmed answer to question.
	Ask(ctx context.Context, question string) (string, error)
}

// New returns the terminal picker when interactive is set, otherwise a plain
// line prompt.
func New(in io.Reader, out io.Writer, interactive bool) Prompter {
	if interactive {
		return &Picker{In: in, Out: out}
	}
	return NewLinePrompter(in, out)
}

// LinePrompter lists the menu and reads one line per question.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter creates a prompt reading from in and writing to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// Choose prints every key and reads a selection.
func (p *LinePrompter) Choose(ctx context.Context, c *suite.Catalog) (string, error) {
	for {
		p.list(c)
		_, _ = fmt.Fprintf(p.out, "\nEnter mode (%s): ", c.ValidRange())

		key, err := p.readLine(ctx)
		if err != nil {
			return "", err
		}
		if !c.Reprompt || c.Valid(key) {
			return key, nil
		}
		_, _ = fmt.Fprintf(p.out, "Invalid option. Please select %s.\n", c.ValidRange())
	}
}

// Ask prints question and reads the answer.
func (p *LinePrompter) Ask(ctx context.Context, question string) (string, error) {
	_, _ = fmt.Fprintf(p.out, "%s: ", question)
	return p.readLine(ctx)
}

func (p *LinePrompter) list(c *suite.Catalog) {
	keys := c.Keys()
	if c.ExitKey != "" {
		keys = append(keys, c.ExitKey)
	}
	width := 0
	for _, k := range keys {
		width = max(width, runewidth.StringWidth(k))
	}

	_, _ = fmt.Fprintln(p.out, "\nSelect execution mode:")
	for _, k := range keys {
		_, _ = fmt.Fprintf(p.out, "%s. %s\n", runewidth.FillLeft(k, width), c.Describe(k))
	}
}

type lineResult struct {
	line string
	err  error
}

// readLine reads one trimmed line, giving up when ctx is cancelled. A final
// line without a newline still counts; EOF with nothing read is io.EOF.
func (p *LinePrompter) readLine(ctx context.Context) (string, error) {
	done := make(chan lineResult, 1)
	go func() {
		line, err := p.in.ReadString('\n')
		if err == io.EOF && line != "" {
			err = nil
		}
		done <- lineResult{strings.TrimSpace(line), err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.line, r.err
	}
}
