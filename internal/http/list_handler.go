package httpx

import (
	"context"
	"net/http"

	apperrors "github.com/classpoint/admin-ui/internal/errors"
)

// ListFetcher fetches the rows for a list screen. Each invocation issues a
// fresh call to the booking platform; results are never cached between
// requests.
type ListFetcher[T any] func(ctx context.Context) ([]T, error)

// DataEnricher can add screen-specific data to the template after fetching
// items (e.g., row counts, related labels).
type DataEnricher[T any] func(builder *TemplateDataBuilder, items []T)

// ListHandlerOpts contains all options needed for the generic list handler.
type ListHandlerOpts[T any] struct {
	// Handler is the UIHandlers instance for rendering (required)
	Handler *UIHandlers
	// W is the HTTP response writer (required)
	W http.ResponseWriter
	// R is the HTTP request (required)
	R *http.Request
	// Fetcher is the function to fetch the rows (required)
	Fetcher ListFetcher[T]
	// EnrichData is an optional function to add custom data to the template after fetching
	EnrichData DataEnricher[T]
	// PageMeta contains page metadata for rendering
	PageMeta PageMeta
	// ItemsKey is the template data key for the items (e.g., "Teachers", "Classes")
	ItemsKey string
	// ErrorMessage is the message to display when data fetching fails
	ErrorMessage string
}

// HandleList is the generic list view handler. Every GET runs exactly one
// fetch and replaces the rows wholesale. When the fetch fails the screen
// still renders, with an error banner above an empty table.
func HandleList[T any](opts ListHandlerOpts[T]) {
	if !validateListHandlerDeps(opts) {
		return
	}

	items, err := opts.Fetcher(opts.R.Context())
	if err != nil {
		if apperrors.IsSessionExpired(err) {
			opts.Handler.handleSessionExpired(opts.W, opts.R)
			return
		}
		builder := NewTemplateData(opts.R, opts.PageMeta).
			With(opts.ItemsKey, []T(nil)).
			WithError(listErrorMessage(opts))
		opts.Handler.renderDashboardPage(opts.W, opts.R, builder.Build())
		return
	}

	builder := NewTemplateData(opts.R, opts.PageMeta).
		With(opts.ItemsKey, items)
	if opts.EnrichData != nil {
		opts.EnrichData(builder, items)
	}
	opts.Handler.renderDashboardPage(opts.W, opts.R, builder.Build())
}

// validateListHandlerDeps checks required dependencies and returns false if any are nil.
func validateListHandlerDeps[T any](opts ListHandlerOpts[T]) bool {
	if opts.W == nil || opts.R == nil || opts.Handler == nil || opts.Fetcher == nil {
		if opts.W != nil {
			http.Error(opts.W, "Internal configuration error", http.StatusInternalServerError)
		}
		return false
	}
	return true
}

func listErrorMessage[T any](opts ListHandlerOpts[T]) string {
	if opts.ErrorMessage != "" {
		return opts.ErrorMessage
	}
	return "Unable to load data."
}
