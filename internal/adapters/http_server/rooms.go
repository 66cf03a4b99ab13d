package httpserver

import (
	"encoding/json"
	"net/http"

	"stayhub/internal/domain"
)

type roomDTO struct {
	ID          int64   `json:"id"`
	HotelID     int64   `json:"hotel_id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Price       int     `json:"price"`
	Quantity    int     `json:"quantity"`
	FacilityIDs []int64 `json:"facility_ids"`
}

func toRoomDTO(r domain.Room) roomDTO {
	fids := r.FacilityIDs
	if fids == nil {
		fids = []int64{}
	}
	return roomDTO{
		ID: r.ID, HotelID: r.HotelID, Title: r.Title, Description: r.Description,
		Price: r.Price, Quantity: r.Quantity, FacilityIDs: fids,
	}
}

// listRooms returns the hotel's rooms with at least one unreserved unit for
// the requested dates.
func (h *Handlers) listRooms(w http.ResponseWriter, r *http.Request) {
	hotelID, ok := pathID(r, "hotelID")
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "hotel id must be a positive number")
		return
	}
	from, to, ok := parseDateRange(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "date_from and date_to are required as YYYY-MM-DD")
		return
	}

	rooms, err := h.Availability.FindAvailableRooms(r.Context(), hotelID, from, to)
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]roomDTO, 0, len(rooms))
	for _, rm := range rooms {
		out = append(out, toRoomDTO(rm))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) getRoom(w http.ResponseWriter, r *http.Request) {
	hotelID, ok1 := pathID(r, "hotelID")
	roomID, ok2 := pathID(r, "roomID")
	if !ok1 || !ok2 {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "ids must be positive numbers")
		return
	}
	rm, err := h.Rooms.Get(r.Context(), hotelID, roomID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toRoomDTO(rm))
}

type roomAddReq struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Price       int     `json:"price"`
	Quantity    int     `json:"quantity"`
	FacilityIDs []int64 `json:"facility_ids"`
}

func (h *Handlers) createRoom(w http.ResponseWriter, r *http.Request) {
	hotelID, ok := pathID(r, "hotelID")
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "hotel id must be a positive number")
		return
	}
	var req roomAddReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" || req.Price < 0 || req.Quantity < 1 {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "title, a non-negative price and quantity >= 1 are required")
		return
	}
	rm, err := h.Rooms.Create(r.Context(), domain.RoomAdd{
		HotelID: hotelID, Title: req.Title, Description: req.Description,
		Price: req.Price, Quantity: req.Quantity, FacilityIDs: req.FacilityIDs,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRoomDTO(rm))
}

func (h *Handlers) putRoom(w http.ResponseWriter, r *http.Request) {
	hotelID, ok1 := pathID(r, "hotelID")
	roomID, ok2 := pathID(r, "roomID")
	if !ok1 || !ok2 {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "ids must be positive numbers")
		return
	}
	var req roomAddReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" || req.Price < 0 || req.Quantity < 1 {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "title, a non-negative price and quantity >= 1 are required")
		return
	}
	fids := req.FacilityIDs
	if fids == nil {
		fids = []int64{}
	}
	u := domain.RoomUpdate{
		Title: &req.Title, Description: req.Description,
		Price: &req.Price, Quantity: &req.Quantity, FacilityIDs: fids,
	}
	if err := h.Rooms.Update(r.Context(), hotelID, roomID, u); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) patchRoom(w http.ResponseWriter, r *http.Request) {
	hotelID, ok1 := pathID(r, "hotelID")
	roomID, ok2 := pathID(r, "roomID")
	if !ok1 || !ok2 {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "ids must be positive numbers")
		return
	}
	var req struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Price       *int    `json:"price"`
		Quantity    *int    `json:"quantity"`
		FacilityIDs []int64 `json:"facility_ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "malformed body")
		return
	}
	if req.Price != nil && *req.Price < 0 || req.Quantity != nil && *req.Quantity < 1 {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "price must be non-negative, quantity >= 1")
		return
	}
	u := domain.RoomUpdate{
		Title: req.Title, Description: req.Description,
		Price: req.Price, Quantity: req.Quantity, FacilityIDs: req.FacilityIDs,
	}
	if err := h.Rooms.Update(r.Context(), hotelID, roomID, u); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) deleteRoom(w http.ResponseWriter, r *http.Request) {
	hotelID, ok1 := pathID(r, "hotelID")
	roomID, ok2 := pathID(r, "roomID")
	if !ok1 || !ok2 {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "ids must be positive numbers")
		return
	}
	if err := h.Rooms.Delete(r.Context(), hotelID, roomID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
