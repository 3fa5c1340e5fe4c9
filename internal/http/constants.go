package httpx

// CurrentPage constants identify pages for templates and navigation state.
const (
	// List pages.
	PageClasses  = "classes"
	PageTeachers = "teachers"
	PageMembers  = "members"
	PageBookings = "bookings"

	// Form pages.
	PageClassForm   = "class-form"
	PageTeacherForm = "teacher-form"
	PageMemberForm  = "member-form"

	// Account pages.
	PageProfile  = "profile"
	PageLogin    = "login"
	PageRegister = "register"
)

// FormMode represents the mode of a form (create or edit).
// Using a dedicated type improves compile-time checks and prevents typos.
type FormMode string

const (
	// FormModeEdit indicates the form is in edit mode.
	FormModeEdit FormMode = "edit"
	// FormModeCreate indicates the form is in create mode.
	FormModeCreate FormMode = "create"
)

// Content templates are defined once and reused to avoid per-call allocations.
//
//nolint:gochecknoglobals // static read-only lookup for templates
var contentTemplates = map[string]string{
	PageClasses:     "classes-content",
	PageClassForm:   "class-form-content",
	PageTeachers:    "teachers-content",
	PageTeacherForm: "teacher-form-content",
	PageMembers:     "members-content",
	PageMemberForm:  "member-form-content",
	PageBookings:    "bookings-content",
	PageProfile:     "profile-content",
	PageLogin:       "login-content",
	PageRegister:    "register-content",
}

// ContentTemplateFor returns the content template for the given CurrentPage.
// Falls back to the classes list for unknown pages.
func ContentTemplateFor(currentPage string) string {
	if name, ok := contentTemplates[currentPage]; ok {
		return name
	}
	return "classes-content"
}
