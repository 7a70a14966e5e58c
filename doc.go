// Package tgnotify sends textual notifications to a fixed, pre-authorized
// set of Telegram destinations (users, groups or channels) through a bot
// account.
//
// The client is configured once, from environment variables or a config
// file, and is immutable afterwards. Each Notify call delivers one message
// per configured destination; a failing destination is logged and never
// blocks delivery to the rest.
//
//	cfg, err := tgnotify.FromEnv()
//	if err != nil {
//		// TELEGRAM_BOT_TOKEN / TELEGRAM_ALLOWED_IDS missing
//	}
//	n, err := tgnotify.New(cfg, logx.NewConsole("info"))
//	...
//	n.Notify(ctx, "backup finished", tgnotify.LevelInfo)
package tgnotify
