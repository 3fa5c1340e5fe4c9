package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/classpoint/admin-ui/internal/api"
	"github.com/classpoint/admin-ui/internal/domain/model"
	apperrors "github.com/classpoint/admin-ui/internal/errors"
	"github.com/classpoint/admin-ui/internal/http/validation"
)

// teacherDraft carries the teacher form values between render and submit.
type teacherDraft struct {
	FullName string
	Email    string
	Image    string
}

func parseTeacherForm(r *http.Request) (teacherDraft, map[string]string) {
	//nolint:errcheck // malformed bodies surface as empty values and fail validation
	r.ParseForm()
	d := teacherDraft{
		FullName: strings.TrimSpace(r.FormValue("fullName")),
		Email:    strings.TrimSpace(r.FormValue("email")),
		Image:    strings.TrimSpace(r.FormValue("image")),
	}

	errs := validation.New().
		Validate("fullName", d.FullName, validation.Required("Full name")).
		Validate("email", d.Email, validation.Required("Email"), validation.Email("Email")).
		Validate("image", d.Image, validation.Required("Image"), validation.AbsoluteURL("Image")).
		Errors()
	return d, errs
}

// teacherFormService submits teacher drafts to the management endpoints.
type teacherFormService struct {
	api *api.Client
}

func (s teacherFormService) Create(ctx context.Context, d teacherDraft) error {
	_, err := s.api.Teachers().Create(ctx, model.CreateTeacherRequest{
		FullName: d.FullName,
		Email:    d.Email,
		Image:    d.Image,
	})
	return err
}

func (s teacherFormService) Update(ctx context.Context, id string, d teacherDraft) error {
	_, err := s.api.Teachers().Update(ctx, id, model.UpdateTeacherRequest{
		FullName: d.FullName,
		Email:    d.Email,
		Image:    d.Image,
	})
	return err
}

// TeacherFormNew renders the empty create form.
// GET /teachers/new.
func (h *UIHandlers) TeacherFormNew(w http.ResponseWriter, r *http.Request) {
	h.renderTeacherForm(w, r, map[string]any{
		"Mode":     FormModeCreate,
		"FormData": teacherDraft{},
	})
}

// TeacherFormEdit loads the teacher and renders the hydrated edit form. If the
// load fails the handler renders the error state, never a default-valued form.
// GET /teachers/{id}/edit.
func (h *UIHandlers) TeacherFormEdit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.NotFound(w, r)
		return
	}

	teacher, err := h.API.Teachers().GetByID(r.Context(), id)
	if err != nil {
		if apperrors.IsSessionExpired(err) {
			h.handleSessionExpired(w, r)
			return
		}
		h.renderTeacherForm(w, r, formLoadFailure(FormModeEdit, "Unable to load teacher."))
		return
	}

	h.renderTeacherForm(w, r, map[string]any{
		"Mode":     FormModeEdit,
		"EntityID": teacher.ID,
		"FormData": teacherDraft{FullName: teacher.FullName, Email: teacher.Email, Image: teacher.Image},
	})
}

// TeacherCreate handles the create submission.
// POST /teachers/new.
func (h *UIHandlers) TeacherCreate(w http.ResponseWriter, r *http.Request) {
	HandleForm(FormHandlerOpts[teacherDraft]{
		Handler: h,
		W:       w, R: r, Mode: FormModeCreate,
		Parser:     parseTeacherForm,
		Service:    teacherFormService{api: h.API},
		Renderer:   h.renderTeacherForm,
		SuccessURL: "/teachers",
		PageMeta:   teacherFormMeta(FormModeCreate),
	})
}

// TeacherUpdate handles the edit submission.
// POST /teachers/{id}/edit.
func (h *UIHandlers) TeacherUpdate(w http.ResponseWriter, r *http.Request) {
	HandleForm(FormHandlerOpts[teacherDraft]{
		Handler: h,
		W:       w, R: r, Mode: FormModeEdit,
		Parser:     parseTeacherForm,
		Service:    teacherFormService{api: h.API},
		Renderer:   h.renderTeacherForm,
		SuccessURL: "/teachers",
		PageMeta:   teacherFormMeta(FormModeEdit),
		ExtraData:  map[string]any{"EntityID": r.PathValue("id")},
	})
}

func (h *UIHandlers) renderTeacherForm(w http.ResponseWriter, r *http.Request, data map[string]any) {
	data, _ = prepareFormFrame(FormFrameOpts{
		R:           r,
		Data:        data,
		DefaultMode: FormModeCreate,
		MetaForMode: teacherFormMeta,
	})
	h.renderDashboardPage(w, r, data)
}

func teacherFormMeta(mode FormMode) PageMeta {
	if mode == FormModeEdit {
		return PageMeta{Title: "ClassPoint - Edit Teacher", PageTitle: "Edit Teacher", CurrentPage: PageTeacherForm}
	}
	return PageMeta{Title: "ClassPoint - New Teacher", PageTitle: "New Teacher", CurrentPage: PageTeacherForm}
}

// formLoadFailure builds the non-editable error state for a form page.
func formLoadFailure(mode FormMode, msg string) map[string]any {
	return map[string]any{
		"Mode":         mode,
		"LoadFailed":   true,
		"Error":        true,
		"ErrorMessage": msg,
	}
}
