// Package session implements the interactive chat loop: an in-memory
// transcript that grows turn by turn and is re-sent whole on every request.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nimbuscode/nimbuscode/pkg/config"
	"github.com/nimbuscode/nimbuscode/pkg/logger"
)

// Role identifies the author of a transcript message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one transcript entry. Order is chronological and preserved on
// every request.
type Message struct {
	Role    Role
	Content string
}

// Completer issues a single completion request.
type Completer interface {
	Complete(ctx context.Context, userPrompt, systemPrompt string, settings config.Settings) (string, error)
}

// LineReader reads one line of user input. Implementations map Ctrl-C to
// ErrInterrupted and end-of-input to io.EOF.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// ErrInterrupted is returned by a LineReader when the user aborts input.
var ErrInterrupted = errors.New("interrupted")

// exitWords terminate the session, matched case-insensitively.
var exitWords = map[string]struct{}{"exit": {}, "quit": {}, "q": {}}

// Session runs the interactive loop until an exit sentinel, interrupt, or
// end of input. The transcript lives only as long as the session.
type Session struct {
	completer    Completer
	reader       LineReader
	out          io.Writer
	display      func(string) string
	settings     config.Settings
	systemPrompt string
	transcript   []Message
	log          logger.Logger
}

// Options configures a Session.
type Options struct {
	Completer Completer
	Reader    LineReader
	Out       io.Writer
	// Display transforms a reply for terminal output (markdown rendering).
	// Nil means print replies verbatim.
	Display      func(string) string
	Settings     config.Settings
	SystemPrompt string
	Logger       logger.Logger
}

// New builds a session with an empty transcript.
func New(opts Options) (*Session, error) {
	if opts.Completer == nil {
		return nil, errors.New("completer is required")
	}
	if opts.Reader == nil {
		return nil, errors.New("line reader is required")
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.Display == nil {
		opts.Display = func(s string) string { return s }
	}
	if opts.Logger == nil {
		opts.Logger = logger.NopLogger{}
	}
	if opts.SystemPrompt == "" {
		return nil, errors.New("system prompt is required")
	}
	return &Session{
		completer:    opts.Completer,
		reader:       opts.Reader,
		out:          opts.Out,
		display:      opts.Display,
		settings:     opts.Settings,
		systemPrompt: opts.SystemPrompt,
		log:          opts.Logger,
	}, nil
}

// Transcript returns a copy of the accumulated messages.
func (s *Session) Transcript() []Message {
	out := make([]Message, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// Run executes turns until the session terminates. It returns nil on every
// graceful stop (exit sentinel, interrupt, end of input); a turn that fails
// is reported and the loop continues.
func (s *Session) Run(ctx context.Context) error {
	for {
		line, err := s.reader.ReadLine("You> ")
		if errors.Is(err, ErrInterrupted) || errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out, "\nExiting interactive mode...")
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		if _, ok := exitWords[strings.ToLower(input)]; ok {
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		}

		s.transcript = append(s.transcript, Message{Role: RoleUser, Content: input})
		s.log.Debug("turn start", map[string]int{"messages": len(s.transcript)})

		reply, err := s.completer.Complete(ctx, serializeTranscript(s.transcript), s.systemPrompt, s.settings)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				fmt.Fprintln(s.out, "\nExiting interactive mode...")
				return nil
			}
			// Keep the failed turn out of the transcript so one bad turn
			// cannot poison later ones.
			s.transcript = s.transcript[:len(s.transcript)-1]
			fmt.Fprintf(s.out, "Error: %v\n", err)
			continue
		}

		s.transcript = append(s.transcript, Message{Role: RoleAssistant, Content: reply})
		fmt.Fprintln(s.out, "\nNimbusCode:")
		fmt.Fprintln(s.out, s.display(reply))
	}
}

// serializeTranscript re-states every prior turn's role and content as a
// single prompt body.
func serializeTranscript(transcript []Message) string {
	parts := make([]string, 0, len(transcript))
	for _, msg := range transcript {
		speaker := "User"
		if msg.Role == RoleAssistant {
			speaker = "Assistant"
		}
		parts = append(parts, speaker+": "+msg.Content)
	}
	return strings.Join(parts, "\n\n")
}
