package bot

import (
	"context"

	"github.com/ayakimenko/route-weather-bot/internal/config"
	"github.com/ayakimenko/route-weather-bot/internal/dialog"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Bot wires Telegram long polling to the dialog manager. Each update is
// handled in its own goroutine so one chat's slow provider call does not
// stall other conversations.
type Bot struct {
	api         *tgbotapi.BotAPI
	dialog      *dialog.Manager
	pollTimeout int
	logger      *zap.Logger
}

func New(cfg config.BotConfig, manager *dialog.Manager, logger *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, err
	}

	logger.Info("Authorized on Telegram", zap.String("username", api.Self.UserName))

	return &Bot{
		api:         api,
		dialog:      manager,
		pollTimeout: cfg.PollTimeout,
		logger:      logger,
	}, nil
}

// Run polls for updates until the context is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.pollTimeout

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			go b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("Panic while handling update",
				zap.Any("recovered", r),
				zap.Stack("stack"))
			if chatID, ok := updateChatID(update); ok {
				b.deliver(chatID, b.dialog.ErrorReply())
			}
		}
	}()

	switch {
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	var replies []dialog.Reply
	if msg.IsCommand() {
		replies = b.dialog.HandleCommand(ctx, chatID, msg.Command())
	} else {
		replies = b.dialog.HandleText(ctx, chatID, msg.Text)
	}

	b.deliver(chatID, replies)
}

func (b *Bot) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) {
	chatID := query.Message.Chat.ID

	choice, err := dialog.ParseChoice(query.Data)

	var replies []dialog.Reply
	if err != nil {
		b.logger.Warn("Unrecognized callback payload",
			zap.Int64("chat_id", chatID),
			zap.String("data", query.Data))
		replies = b.dialog.FallbackReply()
	} else {
		replies = b.dialog.HandleChoice(ctx, chatID, choice)
	}

	b.deliver(chatID, replies)

	// Acknowledge the button press so the client stops its spinner.
	if _, err := b.api.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		b.logger.Warn("Failed to answer callback query", zap.Error(err))
	}
}

// deliver sends replies in order. A delivery failure is logged and answered
// with the generic apology; it never crashes the process.
func (b *Bot) deliver(chatID int64, replies []dialog.Reply) {
	for _, reply := range replies {
		msg := tgbotapi.NewMessage(chatID, reply.Text)
		msg.ParseMode = tgbotapi.ModeHTML

		switch reply.Keyboard {
		case dialog.KeyboardRoute:
			msg.ReplyMarkup = routeKeyboard()
		case dialog.KeyboardInterval:
			msg.ReplyMarkup = intervalKeyboard()
		}

		if _, err := b.api.Send(msg); err != nil {
			b.logger.Error("Failed to send message",
				zap.Int64("chat_id", chatID),
				zap.Error(err))

			apology := tgbotapi.NewMessage(chatID, b.dialog.ErrorReply()[0].Text)
			if _, err := b.api.Send(apology); err != nil {
				b.logger.Error("Failed to send error notification",
					zap.Int64("chat_id", chatID),
					zap.Error(err))
			}
			return
		}
	}
}

func updateChatID(update tgbotapi.Update) (int64, bool) {
	switch {
	case update.Message != nil:
		return update.Message.Chat.ID, true
	case update.CallbackQuery != nil && update.CallbackQuery.Message != nil:
		return update.CallbackQuery.Message.Chat.ID, true
	default:
		return 0, false
	}
}
