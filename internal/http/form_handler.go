package httpx

import (
	"context"
	"errors"
	"net/http"

	apperrors "github.com/classpoint/admin-ui/internal/errors"
)

// FormParser parses form data from an HTTP request and returns the parsed
// draft along with any field-level validation errors. Parsing never touches
// the network; a draft with field errors is re-rendered without any remote
// call.
type FormParser[T any] func(r *http.Request) (T, map[string]string)

// FormService is the submit target for a form. Create and Update each issue
// exactly one call to the booking platform.
type FormService[T any] interface {
	Create(ctx context.Context, req T) error
	Update(ctx context.Context, id string, req T) error
}

// FormRenderer is a function that renders the form template with the given data.
// This allows the form handler to work with different rendering strategies.
type FormRenderer func(w http.ResponseWriter, r *http.Request, data map[string]any)

// FormHandlerOpts contains all options needed to handle a form submission.
// It uses a single struct parameter to maintain the ≤3 parameters constraint.
type FormHandlerOpts[T any] struct {
	// Handler owns session-expiry handling for the screen (optional; without
	// it an expired session still redirects, but nothing is dropped)
	Handler  *UIHandlers
	W        http.ResponseWriter // Response writer
	R        *http.Request       // Request
	Mode     FormMode            // "create" or "edit"
	Parser   FormParser[T]       // Function to parse form data
	Service  FormService[T]      // Service to call for Create/Update
	Renderer FormRenderer        // Function to render form with data
	// Success redirect URL (the owning list)
	SuccessURL string
	// Page metadata for rendering
	PageMeta PageMeta
	// Optional: additional data to pass to template on error
	ExtraData map[string]any
	// Optional: function to extract ID from request (defaults to r.PathValue("id"))
	GetID func(r *http.Request) string
}

// HandleForm is a generic form handler that processes Create and Update
// submissions. A draft that fails validation re-renders with field errors and
// zero network calls; a valid draft issues exactly one Create or Update.
// Success redirects to the owning list; a server rejection re-renders the
// form with all values intact and the server's message verbatim.
func HandleForm[T any](opts FormHandlerOpts[T]) {
	// Guard rails: validate required options
	if !validateFormOptions(opts) {
		return
	}

	// For edit mode, check ID first before parsing
	id, ok := checkFormID(opts)
	if !ok {
		return
	}

	// Parse form data and get validation errors
	data, fieldErrors := opts.Parser(opts.R)

	// If validation errors exist, re-render form with errors
	if len(fieldErrors) > 0 {
		opts.renderFormError(fieldErrors, "", data)
		return
	}

	// Execute create or update operation
	err := executeFormOperation(opts, id, data)
	if err != nil {
		handleFormServiceError(opts, err, data)
		return
	}

	// Success: redirect to the owning list
	if IsHTMX(opts.R) {
		HTMX(opts.W).Redirect(opts.SuccessURL)
		return
	}
	http.Redirect(opts.W, opts.R, opts.SuccessURL, http.StatusSeeOther)
}

// validateFormOptions validates required options and mode.
func validateFormOptions[T any](opts FormHandlerOpts[T]) bool {
	if opts.Parser == nil || opts.Service == nil || opts.Renderer == nil {
		http.Error(opts.W, "misconfigured form handler", http.StatusInternalServerError)
		return false
	}

	switch opts.Mode {
	case FormModeEdit, FormModeCreate:
		return true
	default:
		http.Error(opts.W, "invalid form mode", http.StatusBadRequest)
		return false
	}
}

// checkFormID checks and returns the ID for edit mode. Returns empty string and true for create mode.
func checkFormID[T any](opts FormHandlerOpts[T]) (string, bool) {
	if opts.Mode != FormModeEdit {
		return "", true
	}

	id := getFormID(opts)
	if id == "" {
		http.NotFound(opts.W, opts.R)
		return "", false
	}
	return id, true
}

// executeFormOperation executes the create or update operation based on mode.
func executeFormOperation[T any](opts FormHandlerOpts[T], id string, data T) error {
	if opts.Mode == FormModeEdit {
		return opts.Service.Update(opts.R.Context(), id, data)
	}
	return opts.Service.Create(opts.R.Context(), data)
}

// getFormID extracts the ID from the request, using custom getter if provided.
func getFormID[T any](opts FormHandlerOpts[T]) string {
	if opts.GetID != nil {
		return opts.GetID(opts.R)
	}
	return opts.R.PathValue("id")
}

// handleFormServiceError maps a failed submit onto the re-rendered form.
// Remote rejections carry the server's message verbatim; transport failures
// get a generic line; an expired session sends the user back to login.
func handleFormServiceError[T any](opts FormHandlerOpts[T], err error, data T) {
	// Special-case context cancellation/timeouts to avoid noisy UX
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		http.Error(opts.W, "request canceled", http.StatusRequestTimeout)
		return
	}

	switch {
	case apperrors.IsSessionExpired(err):
		if opts.Handler != nil {
			opts.Handler.handleSessionExpired(opts.W, opts.R)
			return
		}
		redirectToLogin(opts.W, opts.R)
	case apperrors.IsRemote(err), apperrors.IsNotFound(err):
		opts.renderFormError(nil, apperrors.UserMessage(err), data)
	case apperrors.IsValidation(err):
		if field := apperrors.GetField(err); field != "" {
			opts.renderFormError(map[string]string{field: apperrors.UserMessage(err)}, "", data)
			return
		}
		opts.renderFormError(nil, apperrors.UserMessage(err), data)
	default:
		opts.renderFormError(nil, "Unable to save. Please try again.", data)
	}
}

// renderFormError renders the form with errors and preserves form data.
func (fh FormHandlerOpts[T]) renderFormError(fieldErrors map[string]string, generalError string, data T) {
	templateData := NewTemplateData(fh.R, fh.PageMeta)

	if len(fieldErrors) > 0 {
		templateData.WithFieldErrors(fieldErrors)
	}

	if generalError != "" {
		templateData.WithError(generalError)
	} else if len(fieldErrors) > 0 {
		templateData.WithError(errMsgFixBelow)
	}

	templateData.With("Mode", fh.Mode)

	// Add any extra data first (so FormData can override if needed)
	for k, v := range fh.ExtraData {
		templateData.With(k, v)
	}

	// Form data lets the template re-render every submitted value intact
	templateData.With("FormData", data)

	fh.Renderer(fh.W, fh.R, templateData.Build())
}
