package mysql

import (
	"context"
	"database/sql"
	"strings"

	"stayhub/internal/domain"
)

func valStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}
func valInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

// placeholders renders "(?,?,...)" for an IN clause of n values.
func placeholders(n int) string {
	return "(" + strings.TrimSuffix(strings.Repeat("?,", n), ",") + ")"
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// ---- hotels ----

func (r *Repo) GetHotel(ctx context.Context, id int64) (domain.Hotel, error) {
	var h domain.Hotel
	err := r.db.QueryRowContext(ctx, getHotelSQL, id).Scan(&h.ID, &h.Title, &h.Location)
	if err == sql.ErrNoRows {
		return domain.Hotel{}, domain.ErrNotFound
	}
	return h, err
}

func (r *Repo) ListHotelsByIDs(ctx context.Context, ids []int64, f domain.HotelsFilter) ([]domain.Hotel, error) {
	if len(ids) == 0 {
		return []domain.Hotel{}, nil
	}

	var sb strings.Builder
	sb.WriteString("SELECT id, title, location FROM hotels WHERE id IN ")
	sb.WriteString(placeholders(len(ids)))
	args := make([]any, 0, len(ids)+4)
	for _, id := range ids {
		args = append(args, id)
	}
	if f.Location != nil && strings.TrimSpace(*f.Location) != "" {
		sb.WriteString(" AND LOWER(location) LIKE ?")
		args = append(args, "%"+strings.ToLower(strings.TrimSpace(*f.Location))+"%")
	}
	if f.Title != nil && strings.TrimSpace(*f.Title) != "" {
		sb.WriteString(" AND LOWER(title) LIKE ?")
		args = append(args, "%"+strings.ToLower(strings.TrimSpace(*f.Title))+"%")
	}
	// stable order so identical queries page identically
	sb.WriteString(" ORDER BY id LIMIT ? OFFSET ?")
	args = append(args, f.Limit, f.Offset)

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Hotel{}
	for rows.Next() {
		var h domain.Hotel
		if err := rows.Scan(&h.ID, &h.Title, &h.Location); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *Repo) CreateHotel(ctx context.Context, h domain.HotelAdd) (domain.Hotel, error) {
	res, err := r.db.ExecContext(ctx, insertHotelSQL, h.Title, h.Location)
	if err != nil {
		return domain.Hotel{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Hotel{}, err
	}
	return domain.Hotel{ID: id, Title: h.Title, Location: h.Location}, nil
}

func (r *Repo) UpdateHotel(ctx context.Context, id int64, u domain.HotelUpdate) error {
	if _, err := r.GetHotel(ctx, id); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, updateHotelSQL, valStr(u.Title), valStr(u.Location), id)
	return err
}

func (r *Repo) DeleteHotel(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, deleteHotelSQL, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ---- rooms ----

func (r *Repo) GetRoom(ctx context.Context, hotelID, roomID int64) (domain.Room, error) {
	var rm domain.Room
	var desc sql.NullString
	err := r.db.QueryRowContext(ctx, getRoomSQL, roomID, hotelID).
		Scan(&rm.ID, &rm.HotelID, &rm.Title, &desc, &rm.Price, &rm.Quantity)
	if err == sql.ErrNoRows {
		return domain.Room{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Room{}, err
	}
	if desc.Valid {
		d := desc.String
		rm.Description = &d
	}
	fids, err := r.roomFacilities(ctx, []int64{rm.ID})
	if err != nil {
		return domain.Room{}, err
	}
	rm.FacilityIDs = fids[rm.ID]
	return rm, nil
}

func (r *Repo) ListRooms(ctx context.Context, hotelID *int64) ([]domain.Room, error) {
	q := "SELECT id, hotel_id, title, description, price, quantity FROM rooms"
	var args []any
	if hotelID != nil {
		q += " WHERE hotel_id = ?"
		args = append(args, *hotelID)
	}
	q += " ORDER BY id"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Room{}
	var ids []int64
	for rows.Next() {
		var rm domain.Room
		var desc sql.NullString
		if err := rows.Scan(&rm.ID, &rm.HotelID, &rm.Title, &desc, &rm.Price, &rm.Quantity); err != nil {
			return nil, err
		}
		if desc.Valid {
			d := desc.String
			rm.Description = &d
		}
		out = append(out, rm)
		ids = append(ids, rm.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	fids, err := r.roomFacilities(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].FacilityIDs = fids[out[i].ID]
	}
	return out, nil
}

func (r *Repo) roomFacilities(ctx context.Context, roomIDs []int64) (map[int64][]int64, error) {
	if len(roomIDs) == 0 {
		return map[int64][]int64{}, nil
	}
	q := "SELECT room_id, facility_id FROM room_facilities WHERE room_id IN " +
		placeholders(len(roomIDs)) + " ORDER BY facility_id"
	args := make([]any, len(roomIDs))
	for i, id := range roomIDs {
		args[i] = id
	}
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[int64][]int64{}
	for rows.Next() {
		var roomID, facID int64
		if err := rows.Scan(&roomID, &facID); err != nil {
			return nil, err
		}
		out[roomID] = append(out[roomID], facID)
	}
	return out, rows.Err()
}

func (r *Repo) CreateRoom(ctx context.Context, add domain.RoomAdd) (domain.Room, error) {
	res, err := r.db.ExecContext(ctx, insertRoomSQL,
		add.HotelID, add.Title, valStr(add.Description), add.Price, add.Quantity)
	if err != nil {
		return domain.Room{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Room{}, err
	}
	if err := r.replaceRoomFacilities(ctx, id, add.FacilityIDs); err != nil {
		return domain.Room{}, err
	}
	return domain.Room{
		ID: id, HotelID: add.HotelID, Title: add.Title, Description: add.Description,
		Price: add.Price, Quantity: add.Quantity, FacilityIDs: add.FacilityIDs,
	}, nil
}

func (r *Repo) UpdateRoom(ctx context.Context, hotelID, roomID int64, u domain.RoomUpdate) error {
	if _, err := r.GetRoom(ctx, hotelID, roomID); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, updateRoomSQL,
		valStr(u.Title), valStr(u.Description), valInt(u.Price), valInt(u.Quantity),
		roomID, hotelID)
	if err != nil {
		return err
	}
	if u.FacilityIDs != nil {
		return r.replaceRoomFacilities(ctx, roomID, u.FacilityIDs)
	}
	return nil
}

func (r *Repo) replaceRoomFacilities(ctx context.Context, roomID int64, facilityIDs []int64) error {
	if _, err := r.db.ExecContext(ctx, deleteRoomFacilitiesSQL, roomID); err != nil {
		return err
	}
	if len(facilityIDs) == 0 {
		return nil
	}
	values := make([]string, 0, len(facilityIDs))
	args := make([]any, 0, len(facilityIDs)*2)
	for _, fid := range facilityIDs {
		values = append(values, "(?,?)")
		args = append(args, roomID, fid)
	}
	_, err := r.db.ExecContext(ctx, insertRoomFacilitiesPrefix+strings.Join(values, ","), args...)
	return err
}

func (r *Repo) DeleteRoom(ctx context.Context, hotelID, roomID int64) error {
	res, err := r.db.ExecContext(ctx, deleteRoomSQL, roomID, hotelID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ---- facilities ----

func (r *Repo) ListFacilities(ctx context.Context) ([]domain.Facility, error) {
	rows, err := r.db.QueryContext(ctx, listFacilitiesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Facility{}
	for rows.Next() {
		var f domain.Facility
		if err := rows.Scan(&f.ID, &f.Title); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *Repo) CreateFacility(ctx context.Context, title string) (domain.Facility, error) {
	res, err := r.db.ExecContext(ctx, insertFacilitySQL, title)
	if err != nil {
		return domain.Facility{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Facility{}, err
	}
	return domain.Facility{ID: id, Title: title}, nil
}
