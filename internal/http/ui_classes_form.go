package httpx

import (
	"context"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/classpoint/admin-ui/internal/api"
	"github.com/classpoint/admin-ui/internal/domain/model"
	apperrors "github.com/classpoint/admin-ui/internal/errors"
	"github.com/classpoint/admin-ui/internal/http/validation"
)

// teacherOption is one entry of the teacher select on the class form.
type teacherOption struct {
	ID       string
	Name     string
	Selected bool
}

// classDraft carries the class form values between render and submit. The
// teacher options travel with the draft (as hidden fields in the rendered
// form) so a failed submit re-renders the full select without refetching.
type classDraft struct {
	Name           string
	Type           string
	ClassSize      string
	Time           string
	Date           string
	Image          string
	TeacherID      string
	TeacherOptions []teacherOption
}

// optionFieldSep joins id and display name in the hidden option fields.
const optionFieldSep = "|"

func parseClassForm(r *http.Request) (classDraft, map[string]string) {
	//nolint:errcheck // malformed bodies surface as empty values and fail validation
	r.ParseForm()
	d := classDraft{
		Name:      strings.TrimSpace(r.FormValue("name")),
		Type:      strings.TrimSpace(r.FormValue("type")),
		ClassSize: strings.TrimSpace(r.FormValue("classSize")),
		Time:      strings.TrimSpace(r.FormValue("time")),
		Date:      validation.NormalizeDateInput(r.FormValue("date")),
		Image:     strings.TrimSpace(r.FormValue("image")),
		TeacherID: strings.TrimSpace(r.FormValue("teacherId")),
	}
	d.TeacherOptions = decodeTeacherOptions(r.Form["teacherOpt"], d.TeacherID)

	ids := make([]string, 0, len(d.TeacherOptions))
	for _, opt := range d.TeacherOptions {
		ids = append(ids, opt.ID)
	}

	errs := validation.New().
		Validate("name", d.Name, validation.Required("Name")).
		Validate("type", d.Type, validation.Required("Type")).
		Validate("classSize", d.ClassSize, validation.Required("Class size"), validation.IntMin("Class size", 1)).
		Validate("time", d.Time, validation.Required("Time"), validation.TimeRange("Time")).
		Validate("date", d.Date, validation.Required("Date"), validation.Date("Date")).
		Validate("image", d.Image, validation.Required("Image"), validation.AbsoluteURL("Image")).
		Validate("teacherId", d.TeacherID, validation.Required("Teacher"), validation.OneOf("Teacher", ids)).
		Errors()
	return d, errs
}

// decodeTeacherOptions rebuilds the select options from the hidden "id|name"
// fields the rendered form carried, marking the submitted choice selected.
func decodeTeacherOptions(raw []string, selectedID string) []teacherOption {
	options := make([]teacherOption, 0, len(raw))
	for _, entry := range raw {
		id, name, ok := strings.Cut(entry, optionFieldSep)
		if !ok || id == "" {
			continue
		}
		options = append(options, teacherOption{ID: id, Name: name, Selected: id == selectedID})
	}
	return options
}

// buildTeacherOptions maps the public teacher directory onto select options,
// alphabetized by display name.
func buildTeacherOptions(teachers []model.Teacher, selectedID string) []teacherOption {
	options := make([]teacherOption, 0, len(teachers))
	for _, t := range teachers {
		options = append(options, teacherOption{ID: t.ID, Name: t.FullName, Selected: t.ID == selectedID})
	}
	sort.Slice(options, func(i, j int) bool {
		return strings.ToLower(options[i].Name) < strings.ToLower(options[j].Name)
	})
	return options
}

// classFormService submits class drafts to the management endpoints. The
// draft is validated before it gets here, so the size conversion cannot fail.
type classFormService struct {
	api *api.Client
}

func (s classFormService) payload(d classDraft) model.CreateClassRequest {
	size, _ := strconv.Atoi(d.ClassSize)
	return model.CreateClassRequest{
		Name:      d.Name,
		Type:      d.Type,
		ClassSize: size,
		Time:      d.Time,
		Date:      d.Date,
		Image:     d.Image,
		TeacherID: d.TeacherID,
	}
}

func (s classFormService) Create(ctx context.Context, d classDraft) error {
	_, err := s.api.Classes().Create(ctx, s.payload(d))
	return err
}

func (s classFormService) Update(ctx context.Context, id string, d classDraft) error {
	p := s.payload(d)
	_, err := s.api.Classes().Update(ctx, id, model.UpdateClassRequest{
		Name:      p.Name,
		Type:      p.Type,
		ClassSize: p.ClassSize,
		Time:      p.Time,
		Date:      p.Date,
		Image:     p.Image,
		TeacherID: p.TeacherID,
	})
	return err
}

// ClassFormNew fetches the teacher directory and renders the empty create
// form. Without the directory there is nothing valid to pick, so a failed
// fetch renders the error state instead of a crippled form.
// GET /classes/new.
func (h *UIHandlers) ClassFormNew(w http.ResponseWriter, r *http.Request) {
	teachers, err := h.API.TeacherDirectory(r.Context())
	if err != nil {
		if apperrors.IsSessionExpired(err) {
			h.handleSessionExpired(w, r)
			return
		}
		h.renderClassForm(w, r, formLoadFailure(FormModeCreate, "Unable to load teachers for the class form."))
		return
	}

	h.renderClassForm(w, r, map[string]any{
		"Mode":     FormModeCreate,
		"FormData": classDraft{TeacherOptions: buildTeacherOptions(teachers, "")},
	})
}

// ClassFormEdit loads the class and the teacher directory concurrently and
// renders the hydrated edit form. The draft is hydrated only once the entity
// fetch resolved; if either fetch fails the handler renders the error state,
// never a default-valued editable form.
// GET /classes/{id}/edit.
func (h *UIHandlers) ClassFormEdit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.NotFound(w, r)
		return
	}

	var (
		class    *model.Class
		teachers []model.Teacher
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		c, err := h.API.Classes().GetByID(ctx, id)
		class = c
		return err
	})
	g.Go(func() error {
		t, err := h.API.TeacherDirectory(ctx)
		teachers = t
		return err
	})
	if err := g.Wait(); err != nil {
		if apperrors.IsSessionExpired(err) {
			h.handleSessionExpired(w, r)
			return
		}
		h.renderClassForm(w, r, formLoadFailure(FormModeEdit, "Unable to load the class."))
		return
	}

	h.renderClassForm(w, r, map[string]any{
		"Mode":     FormModeEdit,
		"EntityID": class.ID,
		"FormData": classDraft{
			Name:           class.Name,
			Type:           class.Type,
			ClassSize:      strconv.Itoa(class.ClassSize),
			Time:           class.Time,
			Date:           class.Date,
			Image:          class.Image,
			TeacherID:      class.TeacherID,
			TeacherOptions: buildTeacherOptions(teachers, class.TeacherID),
		},
	})
}

// ClassCreate handles the create submission.
// POST /classes/new.
func (h *UIHandlers) ClassCreate(w http.ResponseWriter, r *http.Request) {
	HandleForm(FormHandlerOpts[classDraft]{
		Handler: h,
		W:       w, R: r, Mode: FormModeCreate,
		Parser:     parseClassForm,
		Service:    classFormService{api: h.API},
		Renderer:   h.renderClassForm,
		SuccessURL: "/classes",
		PageMeta:   classFormMeta(FormModeCreate),
	})
}

// ClassUpdate handles the edit submission.
// POST /classes/{id}/edit.
func (h *UIHandlers) ClassUpdate(w http.ResponseWriter, r *http.Request) {
	HandleForm(FormHandlerOpts[classDraft]{
		Handler: h,
		W:       w, R: r, Mode: FormModeEdit,
		Parser:     parseClassForm,
		Service:    classFormService{api: h.API},
		Renderer:   h.renderClassForm,
		SuccessURL: "/classes",
		PageMeta:   classFormMeta(FormModeEdit),
		ExtraData:  map[string]any{"EntityID": r.PathValue("id")},
	})
}

func (h *UIHandlers) renderClassForm(w http.ResponseWriter, r *http.Request, data map[string]any) {
	data, _ = prepareFormFrame(FormFrameOpts{
		R:           r,
		Data:        data,
		DefaultMode: FormModeCreate,
		MetaForMode: classFormMeta,
	})
	h.renderDashboardPage(w, r, data)
}

func classFormMeta(mode FormMode) PageMeta {
	if mode == FormModeEdit {
		return PageMeta{Title: "ClassPoint - Edit Class", PageTitle: "Edit Class", CurrentPage: PageClassForm}
	}
	return PageMeta{Title: "ClassPoint - New Class", PageTitle: "New Class", CurrentPage: PageClassForm}
}
