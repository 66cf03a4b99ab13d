package httpserver

import (
	"encoding/json"
	"net/http"

	"stayhub/internal/domain"
)

type hotelDTO struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Location string `json:"location"`
}

func toHotelDTO(h domain.Hotel) hotelDTO {
	return hotelDTO{ID: h.ID, Title: h.Title, Location: h.Location}
}

// listHotels is the availability-filtered hotel listing: only hotels with at
// least one bookable room for the requested dates are returned.
func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	from, to, ok := parseDateRange(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "date_from and date_to are required as YYYY-MM-DD")
		return
	}
	limit, offset, ok := parsePagination(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "page must be >= 1, per_page between 1 and 29")
		return
	}

	f := domain.HotelsFilter{Limit: limit, Offset: offset}
	if v := r.URL.Query().Get("location"); v != "" {
		f.Location = &v
	}
	if v := r.URL.Query().Get("title"); v != "" {
		f.Title = &v
	}

	hotels, err := h.Availability.FindAvailableHotels(r.Context(), from, to, f)
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]hotelDTO, 0, len(hotels))
	for _, ht := range hotels {
		out = append(out, toHotelDTO(ht))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "hotelID")
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "hotel id must be a positive number")
		return
	}
	ht, err := h.Hotels.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toHotelDTO(ht))
}

type hotelAddReq struct {
	Title    string `json:"title"`
	Location string `json:"location"`
}

func (h *Handlers) createHotel(w http.ResponseWriter, r *http.Request) {
	var req hotelAddReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" || req.Location == "" {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "title and location are required")
		return
	}
	ht, err := h.Hotels.Create(r.Context(), domain.HotelAdd{Title: req.Title, Location: req.Location})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toHotelDTO(ht))
}

func (h *Handlers) putHotel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "hotelID")
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "hotel id must be a positive number")
		return
	}
	var req hotelAddReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" || req.Location == "" {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "title and location are required")
		return
	}
	if err := h.Hotels.Update(r.Context(), id, domain.HotelUpdate{Title: &req.Title, Location: &req.Location}); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) patchHotel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "hotelID")
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "hotel id must be a positive number")
		return
	}
	var req struct {
		Title    *string `json:"title"`
		Location *string `json:"location"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "malformed body")
		return
	}
	if err := h.Hotels.Update(r.Context(), id, domain.HotelUpdate{Title: req.Title, Location: req.Location}); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) deleteHotel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "hotelID")
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "hotel id must be a positive number")
		return
	}
	if err := h.Hotels.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
