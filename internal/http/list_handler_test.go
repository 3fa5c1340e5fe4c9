package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classpoint/admin-ui/internal/domain/model"
	apperrors "github.com/classpoint/admin-ui/internal/errors"
)

func teacherRows() []model.Teacher {
	return []model.Teacher{
		{ID: "1", FullName: "Jane Doe", Email: "jane@classpoint.example", Role: "teacher", Image: "https://cdn.classpoint.example/jane.png"},
		{ID: "2", FullName: "Ken Adams", Email: "ken@classpoint.example", Role: "teacher", Image: "https://cdn.classpoint.example/ken.png"},
	}
}

func TestHandleListRendersRows(t *testing.T) {
	t.Parallel()

	fetches := 0
	w := httptest.NewRecorder()
	HandleList(ListHandlerOpts[model.Teacher]{
		Handler: newTestUI(t),
		W:       w,
		R:       httptest.NewRequest(http.MethodGet, "/teachers", nil),
		Fetcher: func(context.Context) ([]model.Teacher, error) {
			fetches++
			return teacherRows(), nil
		},
		PageMeta: teachersMeta(),
		ItemsKey: "Teachers",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, fetches, "one navigation, one fetch")
	body := w.Body.String()
	assert.Contains(t, body, "Jane Doe")
	assert.Contains(t, body, "Ken Adams")
	assert.Contains(t, body, `href="/teachers/2/edit"`)
}

func TestHandleListFetchFailureShowsBanner(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	HandleList(ListHandlerOpts[model.Teacher]{
		Handler: newTestUI(t),
		W:       w,
		R:       httptest.NewRequest(http.MethodGet, "/teachers", nil),
		Fetcher: func(context.Context) ([]model.Teacher, error) {
			return nil, apperrors.Transport("dial tcp: connection refused")
		},
		PageMeta:     teachersMeta(),
		ItemsKey:     "Teachers",
		ErrorMessage: "Unable to load teachers.",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Unable to load teachers.")
	assert.Contains(t, body, "No teachers.", "the table renders empty under the banner")
	assert.NotContains(t, body, "connection refused")
}

func TestHandleListSessionExpiredRedirects(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	HandleList(ListHandlerOpts[model.Teacher]{
		Handler: newTestUI(t),
		W:       w,
		R:       httptest.NewRequest(http.MethodGet, "/teachers", nil),
		Fetcher: func(context.Context) ([]model.Teacher, error) {
			return nil, apperrors.SessionExpired("platform returned 401")
		},
		PageMeta: teachersMeta(),
		ItemsKey: "Teachers",
	})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "/auth/login")
}

func TestHandleListHTMXRendersPartial(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/teachers", nil)
	r.Header.Set("Hx-Request", "true")
	HandleList(ListHandlerOpts[model.Teacher]{
		Handler:  newTestUI(t),
		W:        w,
		R:        r,
		Fetcher:  func(context.Context) ([]model.Teacher, error) { return teacherRows(), nil },
		PageMeta: teachersMeta(),
		ItemsKey: "Teachers",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.NotContains(t, body, "<html", "partial responses skip the layout")
	assert.Contains(t, body, `hx-swap-oob="outerHTML"`)
	assert.Contains(t, body, "Jane Doe")
	assert.NotEmpty(t, w.Header().Get("Hx-Trigger"))
}

func TestHandleListMissingFetcher(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	HandleList(ListHandlerOpts[model.Teacher]{
		Handler:  newTestUI(t),
		W:        w,
		R:        httptest.NewRequest(http.MethodGet, "/teachers", nil),
		PageMeta: teachersMeta(),
		ItemsKey: "Teachers",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
