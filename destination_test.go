package tgnotify

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDestination(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		raw  string
		want Destination
		ok   bool
	}{
		{name: "user id", raw: "12345678", want: Destination{ChatID: 12345678}, ok: true},
		{name: "channel id", raw: "-1001234567890", want: Destination{ChatID: -1001234567890}, ok: true},
		{name: "username", raw: "@mychannel", want: Destination{Username: "@mychannel"}, ok: true},
		{name: "padded", raw: "  42  ", want: Destination{ChatID: 42}, ok: true},
		{name: "empty", raw: "", ok: false},
		{name: "whitespace", raw: "   ", ok: false},
		// Identifiers are not format-checked; non-numeric entries pass through as handles.
		{name: "non numeric", raw: "abc123", want: Destination{Username: "abc123"}, ok: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDestination(tt.raw)
			require.Equal(t, tt.ok, ok)
			if ok {
				require.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseDestinationsSkipsEmptyEntries(t *testing.T) {
	t.Parallel()
	got := ParseDestinations("1,, @chan ,2,")
	require.Equal(t, []Destination{
		{ChatID: 1},
		{Username: "@chan"},
		{ChatID: 2},
	}, got)

	require.Nil(t, ParseDestinations(""))
	require.Nil(t, ParseDestinations(" , , "))
}

func TestDestinationString(t *testing.T) {
	t.Parallel()
	require.Equal(t, "-100", Destination{ChatID: -100}.String())
	require.Equal(t, "@chan", Destination{Username: "@chan"}.String())
}
