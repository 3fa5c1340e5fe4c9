package httpx

import (
	"context"
	"net/http"

	"github.com/classpoint/admin-ui/internal/domain/model"
)

// ClassesList renders the class management table. classSize and slotLeft are
// a server-maintained pair and render as-is.
// GET /classes.
func (h *UIHandlers) ClassesList(w http.ResponseWriter, r *http.Request) {
	HandleList(ListHandlerOpts[model.Class]{
		Handler: h,
		W:       w,
		R:       r,
		Fetcher: func(ctx context.Context) ([]model.Class, error) {
			return h.API.Classes().List(ctx)
		},
		PageMeta:     classesMeta(),
		ItemsKey:     "Classes",
		ErrorMessage: "Unable to load classes.",
	})
}

func classesMeta() PageMeta {
	return PageMeta{Title: "ClassPoint - Classes", PageTitle: "Classes", CurrentPage: PageClasses}
}
