package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"stayhub/internal/adapters/observability"
	"stayhub/internal/domain"
)

type bookingDTO struct {
	ID        int64  `json:"id"`
	Ref       string `json:"ref"`
	UserID    int64  `json:"user_id"`
	RoomID    int64  `json:"room_id"`
	DateFrom  string `json:"date_from"`
	DateTo    string `json:"date_to"`
	Price     int    `json:"price"`
	TotalCost int    `json:"total_cost"`
}

func toBookingDTO(b domain.Booking) bookingDTO {
	return bookingDTO{
		ID: b.ID, Ref: b.Ref, UserID: b.UserID, RoomID: b.RoomID,
		DateFrom: b.DateFrom.Format(dateLayout), DateTo: b.DateTo.Format(dateLayout),
		Price: b.Price, TotalCost: b.TotalCost(),
	}
}

func toBookingDTOs(bs []domain.Booking) []bookingDTO {
	out := make([]bookingDTO, 0, len(bs))
	for _, b := range bs {
		out = append(out, toBookingDTO(b))
	}
	return out
}

func (h *Handlers) listBookings(w http.ResponseWriter, r *http.Request) {
	bs, err := h.Bookings.ListAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookingDTOs(bs))
}

func (h *Handlers) myBookings(w http.ResponseWriter, r *http.Request) {
	bs, err := h.Bookings.ListMine(r.Context(), userID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookingDTOs(bs))
}

func (h *Handlers) createBooking(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RoomID   int64  `json:"room_id"`
		DateFrom string `json:"date_from"`
		DateTo   string `json:"date_to"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RoomID <= 0 {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "room_id, date_from and date_to are required")
		return
	}
	from, ok1 := parseDate(req.DateFrom)
	to, ok2 := parseDate(req.DateTo)
	if !ok1 || !ok2 {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "dates must be YYYY-MM-DD")
		return
	}

	b, err := h.Bookings.Book(r.Context(), userID(r), req.RoomID, from, to)
	switch {
	case err == nil:
		observability.ObserveAdmission("accepted")
	case errors.Is(err, domain.ErrCapacityExceeded):
		observability.ObserveAdmission("capacity_exceeded")
	case errors.Is(err, domain.ErrInvalidRange), errors.Is(err, domain.ErrNotFound):
		// validation outcomes are not admission attempts
	default:
		observability.ObserveAdmission("error")
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toBookingDTO(b))
}

func (h *Handlers) cancelBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "bookingID")
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "booking id must be a positive number")
		return
	}
	if err := h.Bookings.Cancel(r.Context(), userID(r), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
