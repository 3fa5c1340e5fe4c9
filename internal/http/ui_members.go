package httpx

import (
	"context"
	"net/http"

	"github.com/classpoint/admin-ui/internal/domain/model"
)

// MembersList renders the member management table.
// GET /members.
func (h *UIHandlers) MembersList(w http.ResponseWriter, r *http.Request) {
	HandleList(ListHandlerOpts[model.Member]{
		Handler: h,
		W:       w,
		R:       r,
		Fetcher: func(ctx context.Context) ([]model.Member, error) {
			return h.API.Members().List(ctx)
		},
		PageMeta:     membersMeta(),
		ItemsKey:     "Members",
		ErrorMessage: "Unable to load members.",
	})
}

func membersMeta() PageMeta {
	return PageMeta{Title: "ClassPoint - Members", PageTitle: "Members", CurrentPage: PageMembers}
}
