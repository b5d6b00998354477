package river

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/tdewolff/test"
	"github.com/ungerik/go3d/float64/vec3"
)

func TestLogger(t *testing.T) {
	test.That(t, !Logger().Enabled(t.Context(), slog.LevelError), "silent by default")

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	r := straightRiver(vec3.Zero)
	test.That(t, strings.Contains(buf.String(), "river mesh generated"), buf.String())

	buf.Reset()
	_ = r.Insert(Pair{0, 5}, vec3.Zero)
	test.That(t, strings.Contains(buf.String(), "level=WARN"), buf.String())
	test.That(t, strings.Contains(buf.String(), "river insert rejected"), buf.String())

	SetLogger(nil)
	test.That(t, !Logger().Enabled(t.Context(), slog.LevelError))
}
