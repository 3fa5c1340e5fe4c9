package httpx

import (
	"context"
	"net/http"

	"github.com/classpoint/admin-ui/internal/domain/model"
)

// BookingsList renders the booking overview. Bookings are read-only here;
// seat allocation happens entirely on the platform side.
// GET /bookings.
func (h *UIHandlers) BookingsList(w http.ResponseWriter, r *http.Request) {
	HandleList(ListHandlerOpts[model.Booking]{
		Handler: h,
		W:       w,
		R:       r,
		Fetcher: func(ctx context.Context) ([]model.Booking, error) {
			return h.API.Bookings(ctx)
		},
		PageMeta:     bookingsMeta(),
		ItemsKey:     "Bookings",
		ErrorMessage: "Unable to load bookings.",
	})
}

func bookingsMeta() PageMeta {
	return PageMeta{Title: "ClassPoint - Bookings", PageTitle: "Bookings", CurrentPage: PageBookings}
}
