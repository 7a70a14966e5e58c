package transport

import "context"

// ChatTarget identifies a single delivery target. Exactly one of ChatID or
// Username is set: numeric chats (including negative channel/group IDs) use
// ChatID, chats addressed by handle use Username (leading "@" kept as-is).
type ChatTarget struct {
	ChatID   int64
	Username string
}

type MessageRef struct {
	ChatID    int64
	MessageID int
}

type SendOptions struct {
	ParseMode      string
	DisablePreview bool
}

// Sender is the outbound message primitive. Implementations are safe for
// concurrent use.
type Sender interface {
	SendText(ctx context.Context, to ChatTarget, text string, opt *SendOptions) (MessageRef, error)
}
