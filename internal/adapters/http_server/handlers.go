package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"stayhub/internal/app"
)

type Handlers struct {
	Hotels       *app.HotelService
	Rooms        *app.RoomService
	Facilities   *app.FacilityService
	Bookings     *app.BookingService
	Availability *app.AvailabilityService
	Auth         *app.AuthService

	// requests per second allowed on the login route, per IP
	LoginRPS   float64
	LoginBurst int
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Route("/v1", func(v chi.Router) {
		v.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.register)
			r.With(RateLimit(h.LoginRPS, h.LoginBurst)).Post("/login", h.login)
			r.Post("/logout", h.logout)
			r.With(Auth(h.Auth)).Get("/me", h.me)
		})

		v.Route("/hotels", func(r chi.Router) {
			r.Get("/", h.listHotels)
			r.Post("/", h.createHotel)
			r.Route("/{hotelID}", func(r chi.Router) {
				r.Get("/", h.getHotel)
				r.Put("/", h.putHotel)
				r.Patch("/", h.patchHotel)
				r.Delete("/", h.deleteHotel)

				r.Route("/rooms", func(r chi.Router) {
					r.Get("/", h.listRooms)
					r.Post("/", h.createRoom)
					r.Route("/{roomID}", func(r chi.Router) {
						r.Get("/", h.getRoom)
						r.Put("/", h.putRoom)
						r.Patch("/", h.patchRoom)
						r.Delete("/", h.deleteRoom)
					})
				})
			})
		})

		v.Route("/facilities", func(r chi.Router) {
			r.Get("/", h.listFacilities)
			r.Post("/", h.createFacility)
		})

		v.Route("/bookings", func(r chi.Router) {
			r.Use(Auth(h.Auth))
			r.Get("/", h.listBookings)
			r.Get("/me", h.myBookings)
			r.Post("/", h.createBooking)
			r.Delete("/{bookingID}", h.cancelBooking)
		})
	})
}
