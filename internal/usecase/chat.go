package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"finance-assistant/internal/domain"
	"finance-assistant/internal/memory"
	"finance-assistant/internal/responder"
)

const defaultMaxMessage = 2000

type Classifier interface {
	Classify(text string) domain.Intent
}

type Generator interface {
	Generate(ctx context.Context, in domain.Intent, raw string, snap responder.Snapshot) string
}

type SessionStore interface {
	Do(ctx context.Context, id string, fn func(*memory.Memory) error) error
}

type TranscriptWriter interface {
	RecordTurn(ctx context.Context, sessionID, message, reply, intent string) error
}

type ChatService struct {
	classifier    Classifier
	generator     Generator
	sessions      SessionStore
	transcript    TranscriptWriter
	maxMessageLen int
	logger        *slog.Logger
}

type RespondInput struct {
	Message   string
	SessionID string
	// Persona optionally switches the session's persona before the turn.
	Persona string
}

type RespondOutput struct {
	Reply          string
	SessionID      string
	Intent         domain.IntentKind
	QuerySentiment domain.Sentiment
}

type Option func(*ChatService)

// WithTranscript records every completed turn. Without it turns live only in
// session memory.
func WithTranscript(t TranscriptWriter) Option {
	return func(s *ChatService) {
		s.transcript = t
	}
}

func WithMaxMessageLength(n int) Option {
	return func(s *ChatService) {
		if n > 0 {
			s.maxMessageLen = n
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *ChatService) {
		if l != nil {
			s.logger = l
		}
	}
}

func NewChatService(c Classifier, g Generator, sessions SessionStore, opts ...Option) (*ChatService, error) {
	if c == nil {
		return nil, errors.New("usecase: classifier must not be nil")
	}
	if g == nil {
		return nil, errors.New("usecase: generator must not be nil")
	}
	if sessions == nil {
		return nil, errors.New("usecase: session store must not be nil")
	}
	s := &ChatService{
		classifier:    c,
		generator:     g,
		sessions:      sessions,
		maxMessageLen: defaultMaxMessage,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Respond answers one user message within its session. The user message and
// the reply are both appended to the session memory. Transcript failures are
// logged and never fail the turn.
func (s *ChatService) Respond(ctx context.Context, in RespondInput) (RespondOutput, error) {
	message := strings.TrimSpace(in.Message)
	if message == "" {
		return RespondOutput{}, newError(ErrorInvalidInput, ReasonEmptyMessage, nil)
	}
	if utf8.RuneCountInString(message) > s.maxMessageLen {
		return RespondOutput{}, newError(ErrorInvalidInput, ReasonMessageTooLong, nil)
	}
	sessionID := strings.TrimSpace(in.SessionID)
	if sessionID == "" {
		sessionID = newUUID()
	}

	out := RespondOutput{SessionID: sessionID}
	err := s.sessions.Do(ctx, sessionID, func(mem *memory.Memory) error {
		if in.Persona != "" {
			if err := mem.SetPersona(in.Persona); err != nil {
				return newError(ErrorInvalidInput, ReasonUnknownPersona, err)
			}
		}

		before := mem.Summary()
		mem.Add(domain.RoleUser, message)
		intent := s.classifier.Classify(message)
		reply := s.generator.Generate(ctx, intent, message, responder.Snapshot{
			History: mem.Len(),
			Topics:  before.Topics,
		})
		mem.Add(domain.RoleAssistant, reply)

		// The reply stands even when the audit write fails.
		if s.transcript != nil {
			if err := s.transcript.RecordTurn(ctx, sessionID, message, reply, string(intent.Kind)); err != nil {
				s.logger.Warn("transcript write failed", "session_id", sessionID, "error", err)
			}
		}

		out.Reply = reply
		out.Intent = intent.Kind
		out.QuerySentiment = intent.QuerySentiment
		return nil
	})
	if err != nil {
		var ucErr *Error
		if errors.As(err, &ucErr) {
			return RespondOutput{}, ucErr
		}
		return RespondOutput{}, newError(ErrorInternal, ReasonSession, err)
	}

	s.logger.Debug("chat turn", "session_id", sessionID, "intent", out.Intent)
	return out, nil
}

var newUUID = func() string {
	return uuid.NewString()
}
