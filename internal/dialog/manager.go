package dialog

import (
	"context"

	"github.com/ayakimenko/route-weather-bot/internal/forecast"
	"go.uber.org/zap"
)

// Keyboard tells the transport adapter which inline menu to attach to a
// reply. The dialog package stays free of any bot-platform types.
type Keyboard int

const (
	KeyboardNone Keyboard = iota
	// KeyboardRoute is the two-button add-point / finish-route menu.
	KeyboardRoute
	// KeyboardInterval is the five-button day-count grid.
	KeyboardInterval
)

type Reply struct {
	Text     string
	Keyboard Keyboard
}

func textReply(text string) []Reply {
	return []Reply{{Text: text}}
}

// ReportBuilder produces the combined forecast for a completed route.
type ReportBuilder interface {
	BuildReport(ctx context.Context, route forecast.Route, days int) (string, error)
}

// Manager drives the route-collection state machine. One session per chat;
// commands, free text and button choices each advance the session and
// produce the replies to deliver.
type Manager struct {
	sessions *SessionStore
	reports  ReportBuilder
	logger   *zap.Logger
}

func NewManager(reports ReportBuilder, logger *zap.Logger) *Manager {
	return &Manager{
		sessions: NewSessionStore(),
		reports:  reports,
		logger:   logger,
	}
}

// HandleCommand processes /start, /help and the route-initiating /weather.
func (m *Manager) HandleCommand(ctx context.Context, chatID int64, command string) []Reply {
	switch command {
	case "start":
		return textReply(msgGreeting)
	case "help":
		return textReply(msgHelp)
	case "weather":
		m.sessions.Begin(chatID)
		m.logger.Info("Route collection started", zap.Int64("chat_id", chatID))
		return textReply(msgAskStart)
	default:
		return textReply(msgFallback)
	}
}

// HandleText consumes free-text input according to the current state.
// Text arriving while no state expects it gets the fixed fallback.
func (m *Manager) HandleText(ctx context.Context, chatID int64, text string) []Reply {
	session := m.sessions.Get(chatID)
	if session == nil {
		return textReply(msgFallback)
	}

	switch session.State {
	case StateAwaitingStart:
		session.Route.Start = text
		session.State = StateAwaitingEnd
		return textReply(msgAskEnd)

	case StateAwaitingEnd:
		session.Route.End = text
		session.Route.Intermediates = []string{}
		session.State = StateAwaitingIntermediateOrFinish
		return []Reply{{Text: msgAskAddOrFinish, Keyboard: KeyboardRoute}}

	case StateAwaitingIntermediate:
		session.Route.Intermediates = append(session.Route.Intermediates, text)
		session.State = StateAwaitingIntermediateOrFinish
		return []Reply{{Text: msgPointAdded(text), Keyboard: KeyboardRoute}}

	default:
		return textReply(msgFallback)
	}
}

// HandleChoice processes a parsed button press.
func (m *Manager) HandleChoice(ctx context.Context, chatID int64, choice Choice) []Reply {
	session := m.sessions.Get(chatID)
	if session == nil {
		return textReply(msgFallback)
	}

	switch choice.Kind {
	case ChoiceAddPoint:
		if session.State != StateAwaitingIntermediateOrFinish {
			return textReply(msgFallback)
		}
		session.State = StateAwaitingIntermediate
		return textReply(msgAskIntermediate)

	case ChoiceFinishRoute:
		if session.State != StateAwaitingIntermediateOrFinish {
			return textReply(msgFallback)
		}
		session.State = StateAwaitingInterval
		return []Reply{{Text: msgAskInterval, Keyboard: KeyboardInterval}}

	case ChoiceSelectInterval:
		if session.State != StateAwaitingInterval {
			return textReply(msgFallback)
		}
		return m.completeRoute(ctx, chatID, session, choice.Interval)

	default:
		return textReply(msgFallback)
	}
}

// completeRoute echoes the route back, builds the report and clears the
// session. The session is cleared even when the report fails; the user
// starts over rather than being stuck mid-dialogue.
func (m *Manager) completeRoute(ctx context.Context, chatID int64, session *Session, interval int) []Reply {
	route := session.Route
	m.sessions.Clear(chatID)

	m.logger.Info("Route completed",
		zap.Int64("chat_id", chatID),
		zap.Int("intermediates", len(route.Intermediates)),
		zap.Int("interval", interval))

	replies := []Reply{{Text: routeSummary(route, interval)}}

	report, err := m.reports.BuildReport(ctx, route, interval)
	if err != nil {
		m.logger.Error("Failed to build route report",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		return append(replies, Reply{Text: msgProcessingError})
	}

	return append(replies, Reply{Text: msgReportHeader + report})
}

// FallbackReply is the fixed response for anything the bot cannot interpret.
func (m *Manager) FallbackReply() []Reply {
	return textReply(msgFallback)
}

// ErrorReply is the generic apology sent by the top-level error handler.
func (m *Manager) ErrorReply() []Reply {
	return textReply(msgProcessingError)
}
