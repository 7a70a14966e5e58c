package tgnotify

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"tgnotify/internal/telegram"
	"tgnotify/internal/transport"
	"tgnotify/pkg/logx"
)

// Notifier delivers notifications to every configured destination. It holds
// no mutable state after construction and is safe for concurrent use.
type Notifier struct {
	sender transport.Sender
	log    logx.Logger
	dests  []Destination
}

// New validates cfg, builds the Telegram client (the token is checked
// against the Bot API here) and returns a ready notifier. Pass logx.Nop()
// or a zero logx.Logger to silence logging.
func New(cfg Config, log logx.Logger) (*Notifier, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	ad, err := telegram.New(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot: %w", err)
	}
	log.Info("notifier initialized", logx.Int("destinations", len(cfg.Destinations)))
	return newNotifier(ad, cfg, log), nil
}

func newNotifier(sender transport.Sender, cfg Config, log logx.Logger) *Notifier {
	return &Notifier{
		sender: sender,
		log:    log,
		dests:  slices.Clone(cfg.Destinations),
	}
}

// Destinations returns a copy of the configured destination list.
func (n *Notifier) Destinations() []Destination {
	return slices.Clone(n.dests)
}

// Notify sends message, tagged with the level's prefix, to every configured
// destination. Destinations are attempted concurrently and Notify returns
// once all attempts have finished. A failure for one destination is logged
// and does not abort the others; per-destination results are not surfaced.
//
// An out-of-range level falls back to LevelInfo. The only error returned is
// a ctx already cancelled at dispatch.
func (n *Notifier) Notify(ctx context.Context, message string, level Level) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !level.Valid() {
		n.log.Warn("invalid notification level, defaulting to info", logx.Int("level", int(level)))
		level = LevelInfo
	}

	text := level.prefix() + "\n\n" + message
	n.log.Info("sending notification",
		logx.String("level", level.String()),
		logx.Int("destinations", len(n.dests)))

	var wg sync.WaitGroup
	for _, d := range n.dests {
		wg.Add(1)
		go func(d Destination) {
			defer wg.Done()
			n.sendOne(ctx, d, text)
		}(d)
	}
	wg.Wait()
	return nil
}

// Info is shorthand for Notify with LevelInfo.
func (n *Notifier) Info(ctx context.Context, message string) error {
	return n.Notify(ctx, message, LevelInfo)
}

// Warning is shorthand for Notify with LevelWarning.
func (n *Notifier) Warning(ctx context.Context, message string) error {
	return n.Notify(ctx, message, LevelWarning)
}

// Error is shorthand for Notify with LevelError.
func (n *Notifier) Error(ctx context.Context, message string) error {
	return n.Notify(ctx, message, LevelError)
}

func (n *Notifier) sendOne(ctx context.Context, d Destination, text string) {
	opt := &transport.SendOptions{ParseMode: "Markdown", DisablePreview: true}
	_, err := n.sender.SendText(ctx, d.target(), text, opt)
	if err != nil {
		// Blocked bot, unknown chat id, etc. Deliberately not fatal.
		n.log.Warn("notification send failed",
			logx.String("destination", d.String()),
			logx.Err(err))
		return
	}
	n.log.Debug("notification sent", logx.String("destination", d.String()))
}
