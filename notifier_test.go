package tgnotify

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"tgnotify/internal/transport"
	"tgnotify/pkg/logx"
)

// fakeSender records every SendText call and fails targets listed in fail.
type fakeSender struct {
	mu    sync.Mutex
	sent  map[string][]string // recipient -> texts
	fail  map[string]error
	calls int
}

func newFakeSender() *fakeSender {
	return &fakeSender{sent: map[string][]string{}, fail: map[string]error{}}
}

func (f *fakeSender) SendText(ctx context.Context, to transport.ChatTarget, text string, opt *transport.SendOptions) (transport.MessageRef, error) {
	key := to.Username
	if key == "" {
		key = Destination{ChatID: to.ChatID}.String()
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if err := f.fail[key]; err != nil {
		return transport.MessageRef{}, err
	}
	f.sent[key] = append(f.sent[key], text)
	return transport.MessageRef{ChatID: to.ChatID, MessageID: f.calls}, nil
}

func (f *fakeSender) texts(key string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.sent[key]...)
}

func testConfig(dests ...string) Config {
	cfg := Config{Token: "123456:TEST"}
	for _, d := range dests {
		dd, ok := ParseDestination(d)
		if !ok {
			panic("bad test destination")
		}
		cfg.Destinations = append(cfg.Destinations, dd)
	}
	return cfg
}

func TestNotifySendsOncePerDestination(t *testing.T) {
	fake := newFakeSender()
	n := newNotifier(fake, testConfig("111", "-1002222", "@chan"), logx.Nop())

	require.NoError(t, n.Notify(context.Background(), "all good", LevelInfo))

	require.Equal(t, 3, fake.calls)
	for _, key := range []string{"111", "-1002222", "@chan"} {
		require.Len(t, fake.texts(key), 1, "destination %s", key)
	}
}

func TestNotifyLevelPrefixes(t *testing.T) {
	tests := []struct {
		level  Level
		prefix string
	}{
		{LevelInfo, "ℹ️ [INFO]"},
		{LevelWarning, "⚠️ [WARNING]"},
		{LevelError, "❌ [ERROR]"},
	}
	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			fake := newFakeSender()
			n := newNotifier(fake, testConfig("111"), logx.Nop())

			require.NoError(t, n.Notify(context.Background(), "body text", tt.level))

			got := fake.texts("111")
			require.Len(t, got, 1)
			require.Equal(t, tt.prefix+"\n\nbody text", got[0])
		})
	}
}

func TestNotifyInvalidLevelDefaultsToInfo(t *testing.T) {
	fake := newFakeSender()
	n := newNotifier(fake, testConfig("111"), logx.Nop())

	require.NoError(t, n.Notify(context.Background(), "hello", Level(42)))

	got := fake.texts("111")
	require.Len(t, got, 1)
	require.True(t, strings.HasPrefix(got[0], "ℹ️ [INFO]"), "got %q", got[0])
}

func TestNotifyFailureDoesNotBlockOthers(t *testing.T) {
	fake := newFakeSender()
	fake.fail["222"] = errors.New("bot was blocked by the user")
	n := newNotifier(fake, testConfig("111", "222", "333"), logx.Nop())

	require.NoError(t, n.Notify(context.Background(), "still delivered", LevelError))

	require.Equal(t, 3, fake.calls)
	require.Len(t, fake.texts("111"), 1)
	require.Empty(t, fake.texts("222"))
	require.Len(t, fake.texts("333"), 1)
}

func TestNotifyCancelledContext(t *testing.T) {
	fake := newFakeSender()
	n := newNotifier(fake, testConfig("111"), logx.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, n.Notify(ctx, "too late", LevelInfo), context.Canceled)
	require.Equal(t, 0, fake.calls)
}

func TestNotifyShorthands(t *testing.T) {
	fake := newFakeSender()
	n := newNotifier(fake, testConfig("111"), logx.Nop())

	ctx := context.Background()
	require.NoError(t, n.Info(ctx, "i"))
	require.NoError(t, n.Warning(ctx, "w"))
	require.NoError(t, n.Error(ctx, "e"))

	got := fake.texts("111")
	require.Len(t, got, 3)
	require.True(t, strings.HasPrefix(got[0], "ℹ️"))
	require.True(t, strings.HasPrefix(got[1], "⚠️"))
	require.True(t, strings.HasPrefix(got[2], "❌"))
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(Config{}, logx.Nop())
	require.ErrorIs(t, err, ErrNoToken)

	_, err = New(Config{Token: "123456:TEST"}, logx.Nop())
	require.ErrorIs(t, err, ErrNoDestinations)
}

func TestDestinationsReturnsCopy(t *testing.T) {
	n := newNotifier(newFakeSender(), testConfig("111", "@chan"), logx.Nop())

	got := n.Destinations()
	require.Len(t, got, 2)
	got[0] = Destination{ChatID: 999}
	require.Equal(t, int64(111), n.Destinations()[0].ChatID)
}
