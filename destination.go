package tgnotify

import (
	"strconv"
	"strings"

	"tgnotify/internal/transport"
)

// Destination is one pre-authorized delivery target: a numeric chat ID
// (negative for groups/channels) or a "@username" handle. Identifiers are
// not validated beyond that split; the Bot API is the authority on whether
// a destination actually exists.
type Destination struct {
	ChatID   int64
	Username string
}

func (d Destination) String() string {
	if d.Username != "" {
		return d.Username
	}
	return strconv.FormatInt(d.ChatID, 10)
}

func (d Destination) target() transport.ChatTarget {
	return transport.ChatTarget{ChatID: d.ChatID, Username: d.Username}
}

// ParseDestination parses a single identifier. ok is false for an
// empty (or all-whitespace) entry.
func ParseDestination(s string) (Destination, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Destination{}, false
	}
	if id, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Destination{ChatID: id}, true
	}
	return Destination{Username: s}, true
}

// ParseDestinations splits a comma-separated identifier list. Empty entries
// are skipped, so trailing commas are harmless. A nil result means the list
// held no usable entries.
func ParseDestinations(csv string) []Destination {
	var out []Destination
	for _, part := range strings.Split(csv, ",") {
		if d, ok := ParseDestination(part); ok {
			out = append(out, d)
		}
	}
	return out
}
