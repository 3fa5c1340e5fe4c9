package httpx

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTeacherForm() url.Values {
	return url.Values{
		"fullName": {"Jane Doe"},
		"email":    {"jane@classpoint.example"},
		"image":    {"https://cdn.classpoint.example/jane.png"},
	}
}

func TestTeacherFormNewRendersEmptyForm(t *testing.T) {
	t.Parallel()

	ui := newClassFormUI(t, newPlatformStub(t))
	w := httptest.NewRecorder()
	ui.TeacherFormNew(w, httptest.NewRequest(http.MethodGet, "/teachers/new", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `name="fullName" value=""`)
	assert.Contains(t, body, "Create teacher")
}

func TestTeacherFormEditHydratesValues(t *testing.T) {
	t.Parallel()

	platform := newPlatformStub(t)
	platform.on(http.MethodGet, "/teacher/42", http.StatusOK, `{
		"id":"42","fullName":"Jane Doe","email":"jane@classpoint.example",
		"image":"https://cdn.classpoint.example/jane.png","role":"teacher"
	}`)
	ui := newClassFormUI(t, platform)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/teachers/42/edit", nil)
	r.SetPathValue("id", "42")
	ui.TeacherFormEdit(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `value="Jane Doe"`)
	assert.Contains(t, body, `value="jane@classpoint.example"`)
	assert.Contains(t, body, "Save teacher")

	calls := platform.recorded()
	require.Len(t, calls, 1)
	assert.Equal(t, "/teacher/42", calls[0].Path)
}

func TestTeacherFormEditLoadFailure(t *testing.T) {
	t.Parallel()

	// No route registered: the platform 404s the teacher fetch.
	ui := newClassFormUI(t, newPlatformStub(t))
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/teachers/42/edit", nil)
	r.SetPathValue("id", "42")
	ui.TeacherFormEdit(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Unable to load teacher.")
	assert.NotContains(t, body, `name="fullName"`, "the error state shows no editable fields")
}

func TestTeacherCreateValidationMakesNoPlatformCalls(t *testing.T) {
	t.Parallel()

	platform := newPlatformStub(t)
	ui := newClassFormUI(t, platform)

	form := validTeacherForm()
	form.Set("email", "not-an-email")
	form.Set("image", "relative/path.png")
	w := httptest.NewRecorder()
	ui.TeacherCreate(w, postForm("/teachers/new", form))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, platform.recorded())
	body := w.Body.String()
	assert.Contains(t, body, "Email must be a valid email address.")
	assert.Contains(t, body, "Image must be a valid http(s) URL.")
	assert.Contains(t, body, `value="Jane Doe"`)
}

func TestTeacherCreateSubmitsToManagement(t *testing.T) {
	t.Parallel()

	platform := newPlatformStub(t)
	platform.on(http.MethodPost, "/teacher/management", http.StatusOK, `{"id":"42"}`)
	ui := newClassFormUI(t, platform)

	w := httptest.NewRecorder()
	ui.TeacherCreate(w, postForm("/teachers/new", validTeacherForm()))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/teachers", w.Header().Get("Location"))

	calls := platform.recorded()
	require.Len(t, calls, 1)
	assert.Equal(t, "/teacher/management", calls[0].Path)
	assert.Equal(t, "Jane Doe", calls[0].Body["fullName"])
}

func TestTeacherUpdateRemoteRejectionKeepsValues(t *testing.T) {
	t.Parallel()

	platform := newPlatformStub(t)
	platform.on(http.MethodPut, "/teacher/management/42", http.StatusConflict,
		`{"message":"Email already in use"}`)
	ui := newClassFormUI(t, platform)

	w := httptest.NewRecorder()
	r := postForm("/teachers/42/edit", validTeacherForm())
	r.SetPathValue("id", "42")
	ui.TeacherUpdate(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Email already in use")
	assert.Contains(t, body, `value="Jane Doe"`)
}
