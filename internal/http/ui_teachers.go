package httpx

import (
	"context"
	"net/http"

	"github.com/classpoint/admin-ui/internal/domain/model"
)

// TeachersList renders the teacher management table.
// GET /teachers.
func (h *UIHandlers) TeachersList(w http.ResponseWriter, r *http.Request) {
	HandleList(ListHandlerOpts[model.Teacher]{
		Handler: h,
		W:       w,
		R:       r,
		Fetcher: func(ctx context.Context) ([]model.Teacher, error) {
			return h.API.Teachers().List(ctx)
		},
		PageMeta:     teachersMeta(),
		ItemsKey:     "Teachers",
		ErrorMessage: "Unable to load teachers.",
	})
}

func teachersMeta() PageMeta {
	return PageMeta{Title: "ClassPoint - Teachers", PageTitle: "Teachers", CurrentPage: PageTeachers}
}
