package log

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

// Тесты для pkg/log.
//
// Важно: часть тестов меняет slog.Default(), поэтому t.Parallel() не используется.

func newSilent() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// capHandler — минимальный slog.Handler, запоминающий базовые атрибуты.
type capHandler struct {
	base []slog.Attr
}

func (h *capHandler) Enabled(context.Context, slog.Level) bool  { return true }
func (h *capHandler) Handle(context.Context, slog.Record) error { return nil }
func (h *capHandler) WithGroup(string) slog.Handler             { return h }
func (h *capHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &capHandler{base: append(append([]slog.Attr(nil), h.base...), attrs...)}
}

// TestFrom_ReturnsDefault_WhenNoLoggerInContext — без логгера в ctx возвращается slog.Default().
func TestFrom_ReturnsDefault_WhenNoLoggerInContext(t *testing.T) {
	old := slog.Default()
	t.Cleanup(func() { slog.SetDefault(old) })

	def := newSilent()
	slog.SetDefault(def)

	require.Equal(t, def, From(context.Background()))
}

// TestIntoAndFrom_RoundTrip — Into/From возвращают тот же логгер.
func TestIntoAndFrom_RoundTrip(t *testing.T) {
	l := newSilent()
	ctx := Into(context.Background(), l)

	require.Equal(t, l, From(ctx))
}

// TestFrom_ReturnsDefault_WhenStoredValueIsNil — *slog.Logger(nil) в ctx игнорируется.
func TestFrom_ReturnsDefault_WhenStoredValueIsNil(t *testing.T) {
	old := slog.Default()
	t.Cleanup(func() { slog.SetDefault(old) })
	def := newSilent()
	slog.SetDefault(def)

	var nilLogger *slog.Logger
	ctx := context.WithValue(context.Background(), ctxKey{}, nilLogger)
	require.Equal(t, def, From(ctx))

	ctx = context.WithValue(context.Background(), ctxKey{}, "not-a-logger")
	require.Equal(t, def, From(ctx))
}

// TestWith_EnrichesWithoutTouchingParent — With добавляет атрибуты только дочернему ctx.
func TestWith_EnrichesWithoutTouchingParent(t *testing.T) {
	h := &capHandler{}
	parent := Into(context.Background(), slog.New(h))

	child := With(parent, slog.String("viewer_id", "u-1"))

	childH, ok := From(child).Handler().(*capHandler)
	require.True(t, ok)
	require.Len(t, childH.base, 1)
	require.Equal(t, "viewer_id", childH.base[0].Key)

	parentH, ok := From(parent).Handler().(*capHandler)
	require.True(t, ok)
	require.Empty(t, parentH.base)
}
