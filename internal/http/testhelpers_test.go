package httpx

import (
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestRenderer parses the real template set from disk so handler tests
// exercise the same HTML the server ships.
func newTestRenderer(t *testing.T) *TemplateRenderer {
	t.Helper()
	renderer, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: os.DirFS(TemplatePathFromTest),
		Logger:     testLogger(),
	})
	require.NoError(t, err)
	return renderer
}

func newTestUI(t *testing.T) *UIHandlers {
	t.Helper()
	return &UIHandlers{T: newTestRenderer(t), Logger: testLogger()}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
