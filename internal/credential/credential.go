// Package credential gates paid generation capabilities behind an explicit
// capability check instead of an ambient global toggle.
package credential

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

//go:generate mockgen -source=credential.go -destination=../mocks/credential/mock_prompter.go -package=mock_credential

// Status reports whether a usable credential is selected.
type Status int

const (
	StatusMissing Status = iota
	StatusReady
)

func (s Status) String() string {
	if s == StatusReady {
		return "ready"
	}
	return "missing"
}

// Check reports the credential status for an API key.
func Check(apiKey string) Status {
	if strings.TrimSpace(apiKey) == "" {
		return StatusMissing
	}
	return StatusReady
}

// Prompter performs the user-mediated credential selection.
type Prompter interface {
	PromptAPIKey(ctx context.Context) (string, error)
}

// Ensure returns a usable API key, invoking the prompter at most once when
// none is selected yet. Once a key exists, repeated calls are no-ops.
func Ensure(ctx context.Context, apiKey string, prompter Prompter) (string, error) {
	if Check(apiKey) == StatusReady {
		return apiKey, nil
	}

	entered, err := prompter.PromptAPIKey(ctx)
	if err != nil {
		return "", fmt.Errorf("prompter.PromptAPIKey > %w", err)
	}
	if Check(entered) != StatusReady {
		return "", fmt.Errorf("no API key was provided")
	}
	return strings.TrimSpace(entered), nil
}

// StdinPrompter reads an API key from an interactive terminal.
type StdinPrompter struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewStdinPrompter creates a StdinPrompter on the given streams.
func NewStdinPrompter(reader io.Reader, writer io.Writer) *StdinPrompter {
	return &StdinPrompter{
		reader: bufio.NewReader(reader),
		writer: writer,
	}
}

// PromptAPIKey implements the Prompter interface
func (p *StdinPrompter) PromptAPIKey(_ context.Context) (string, error) {
	if _, err := fmt.Fprint(p.writer, "This feature requires a Gemini API key. Enter it now: "); err != nil {
		return "", fmt.Errorf("fmt.Fprint > %w", err)
	}
	line, err := p.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("error reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
