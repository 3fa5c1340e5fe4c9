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

// memberDraft carries the member form values between render and submit.
// Password is only collected on create and never echoed back.
type memberDraft struct {
	FullName string
	Email    string
	Image    string
	Password string
}

func parseMemberForm(r *http.Request, withPassword bool) (memberDraft, map[string]string) {
	//nolint:errcheck // malformed bodies surface as empty values and fail validation
	r.ParseForm()
	d := memberDraft{
		FullName: strings.TrimSpace(r.FormValue("fullName")),
		Email:    strings.TrimSpace(r.FormValue("email")),
		Image:    strings.TrimSpace(r.FormValue("image")),
	}

	fv := validation.New().
		Validate("fullName", d.FullName, validation.Required("Full name")).
		Validate("email", d.Email, validation.Required("Email"), validation.Email("Email")).
		Validate("image", d.Image, validation.Required("Image"), validation.AbsoluteURL("Image"))

	if withPassword {
		d.Password = r.FormValue("password")
		fv.Validate("password", d.Password,
			validation.Required("Password"), validation.MinRunes("Password", 6))
	}
	return d, fv.Errors()
}

func parseMemberCreateForm(r *http.Request) (memberDraft, map[string]string) {
	return parseMemberForm(r, true)
}

func parseMemberEditForm(r *http.Request) (memberDraft, map[string]string) {
	return parseMemberForm(r, false)
}

// memberFormService submits member drafts to the management endpoints.
type memberFormService struct {
	api *api.Client
}

func (s memberFormService) Create(ctx context.Context, d memberDraft) error {
	_, err := s.api.Members().Create(ctx, model.CreateMemberRequest{
		FullName: d.FullName,
		Email:    d.Email,
		Password: d.Password,
		Image:    d.Image,
	})
	return err
}

func (s memberFormService) Update(ctx context.Context, id string, d memberDraft) error {
	_, err := s.api.Members().Update(ctx, id, model.UpdateMemberRequest{
		FullName: d.FullName,
		Email:    d.Email,
		Image:    d.Image,
	})
	return err
}

// MemberFormNew renders the empty create form.
// GET /members/new.
func (h *UIHandlers) MemberFormNew(w http.ResponseWriter, r *http.Request) {
	h.renderMemberForm(w, r, map[string]any{
		"Mode":     FormModeCreate,
		"FormData": memberDraft{},
	})
}

// MemberFormEdit loads the member and renders the hydrated edit form.
// GET /members/{id}/edit.
func (h *UIHandlers) MemberFormEdit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.NotFound(w, r)
		return
	}

	member, err := h.API.Members().GetByID(r.Context(), id)
	if err != nil {
		if apperrors.IsSessionExpired(err) {
			h.handleSessionExpired(w, r)
			return
		}
		h.renderMemberForm(w, r, formLoadFailure(FormModeEdit, "Unable to load member."))
		return
	}

	h.renderMemberForm(w, r, map[string]any{
		"Mode":     FormModeEdit,
		"EntityID": member.ID,
		"FormData": memberDraft{FullName: member.FullName, Email: member.Email, Image: member.Image},
	})
}

// MemberCreate handles the create submission.
// POST /members/new.
func (h *UIHandlers) MemberCreate(w http.ResponseWriter, r *http.Request) {
	HandleForm(FormHandlerOpts[memberDraft]{
		Handler: h,
		W:       w, R: r, Mode: FormModeCreate,
		Parser:     parseMemberCreateForm,
		Service:    memberFormService{api: h.API},
		Renderer:   h.renderMemberForm,
		SuccessURL: "/members",
		PageMeta:   memberFormMeta(FormModeCreate),
	})
}

// MemberUpdate handles the edit submission.
// POST /members/{id}/edit.
func (h *UIHandlers) MemberUpdate(w http.ResponseWriter, r *http.Request) {
	HandleForm(FormHandlerOpts[memberDraft]{
		Handler: h,
		W:       w, R: r, Mode: FormModeEdit,
		Parser:     parseMemberEditForm,
		Service:    memberFormService{api: h.API},
		Renderer:   h.renderMemberForm,
		SuccessURL: "/members",
		PageMeta:   memberFormMeta(FormModeEdit),
		ExtraData:  map[string]any{"EntityID": r.PathValue("id")},
	})
}

func (h *UIHandlers) renderMemberForm(w http.ResponseWriter, r *http.Request, data map[string]any) {
	data, _ = prepareFormFrame(FormFrameOpts{
		R:           r,
		Data:        data,
		DefaultMode: FormModeCreate,
		MetaForMode: memberFormMeta,
	})
	// Drafts round-trip through the template; keep the password out of it.
	if d, ok := data["FormData"].(memberDraft); ok {
		d.Password = ""
		data["FormData"] = d
	}
	h.renderDashboardPage(w, r, data)
}

func memberFormMeta(mode FormMode) PageMeta {
	if mode == FormModeEdit {
		return PageMeta{Title: "ClassPoint - Edit Member", PageTitle: "Edit Member", CurrentPage: PageMemberForm}
	}
	return PageMeta{Title: "ClassPoint - New Member", PageTitle: "New Member", CurrentPage: PageMemberForm}
}
