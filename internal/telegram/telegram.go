// Package telegram adapts the telebot client to the transport.Sender
// interface. It covers the outbound path only; this module never polls for
// updates.
package telegram

import (
	"context"
	"errors"
	"strconv"
	"strings"

	tele "gopkg.in/telebot.v4"

	"tgnotify/internal/transport"
)

type Adapter struct {
	bot *tele.Bot
}

// New builds the adapter and validates the token against the Bot API
// (telebot performs a getMe call). A bad token fails here, not at send time.
func New(token string) (*Adapter, error) {
	if strings.TrimSpace(token) == "" {
		return nil, errors.New("telegram token is empty")
	}
	b, err := tele.NewBot(tele.Settings{Token: token})
	if err != nil {
		return nil, err
	}
	return &Adapter{bot: b}, nil
}

func (a *Adapter) SendText(ctx context.Context, to transport.ChatTarget, text string, opt *transport.SendOptions) (transport.MessageRef, error) {
	if err := ctx.Err(); err != nil {
		return transport.MessageRef{}, err
	}
	if opt == nil {
		opt = &transport.SendOptions{}
	}
	sendOpt := &tele.SendOptions{
		ParseMode:             opt.ParseMode,
		DisableWebPagePreview: opt.DisablePreview,
	}
	msg, err := a.bot.Send(toRecipient(to), text, sendOpt)
	if err != nil {
		return transport.MessageRef{}, err
	}
	return transport.MessageRef{ChatID: msg.Chat.ID, MessageID: msg.ID}, nil
}

// recipient satisfies tele.Recipient for both numeric IDs and @usernames;
// telebot's own ChatID type covers only the numeric case.
type recipient string

func (r recipient) Recipient() string { return string(r) }

func toRecipient(to transport.ChatTarget) tele.Recipient {
	if to.Username != "" {
		return recipient(to.Username)
	}
	return recipient(strconv.FormatInt(to.ChatID, 10))
}
