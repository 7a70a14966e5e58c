package tgnotify

import (
	"fmt"
	"strings"
)

// Level classifies a notification. The numeric values (1..3) are part of
// the public contract and match the original info/warning/error scale.
type Level int

const (
	LevelInfo Level = iota + 1
	LevelWarning
	LevelError
)

func (l Level) Valid() bool {
	return l >= LevelInfo && l <= LevelError
}

func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// prefix is prepended to every outgoing message. Emojis help the message
// stand out in the chat.
func (l Level) prefix() string {
	switch l {
	case LevelWarning:
		return "⚠️ [WARNING]"
	case LevelError:
		return "❌ [ERROR]"
	default:
		return "ℹ️ [INFO]"
	}
}

// ParseLevel maps a textual level name to a Level. It accepts the String()
// forms plus "warn".
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	default:
		return 0, fmt.Errorf("unknown level %q", s)
	}
}
