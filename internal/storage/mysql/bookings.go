package mysql

import (
	"context"
	"database/sql"
	"time"

	"stayhub/internal/domain"
)

// OverlapCounts is the single aggregate read behind the capacity resolver: one
// grouped scan over the ledger for the date window, no per-room queries.
func (r *Repo) OverlapCounts(ctx context.Context, roomIDs []int64, from, to time.Time) (map[int64]int, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if len(roomIDs) == 0 {
		rows, err = r.db.QueryContext(ctx, overlapCountsSQL, to, from)
	} else {
		q := overlapCountsScopedPrefix + placeholders(len(roomIDs)) + " GROUP BY room_id"
		args := make([]any, 0, len(roomIDs)+2)
		args = append(args, to, from)
		for _, id := range roomIDs {
			args = append(args, id)
		}
		rows, err = r.db.QueryContext(ctx, q, args...)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[int64]int{}
	for rows.Next() {
		var roomID int64
		var booked int
		if err := rows.Scan(&roomID, &booked); err != nil {
			return nil, err
		}
		out[roomID] = booked
	}
	return out, rows.Err()
}

// Admit locks the room row, re-counts overlapping bookings under the lock and
// inserts the ledger entry, all in one transaction. The lock makes concurrent
// admissions for the same room observe each other; disjoint rooms do not
// contend. Either the ledger gains exactly one row or none.
func (r *Repo) Admit(ctx context.Context, b domain.BookingAdd) (domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Booking{}, err
	}
	defer func() { _ = tx.Rollback() }()

	var price, quantity int
	err = tx.QueryRowContext(ctx, admitLockRoomSQL, b.RoomID).Scan(&price, &quantity)
	if err == sql.ErrNoRows {
		return domain.Booking{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Booking{}, err
	}

	var booked int
	if err := tx.QueryRowContext(ctx, admitCountSQL, b.RoomID, b.DateTo, b.DateFrom).Scan(&booked); err != nil {
		return domain.Booking{}, err
	}
	if quantity-booked <= 0 {
		return domain.Booking{}, domain.ErrCapacityExceeded
	}

	res, err := tx.ExecContext(ctx, insertBookingSQL,
		b.Ref, b.UserID, b.RoomID, b.DateFrom, b.DateTo, price)
	if err != nil {
		return domain.Booking{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Booking{}, err
	}
	if err := tx.Commit(); err != nil {
		return domain.Booking{}, err
	}

	return domain.Booking{
		ID: id, Ref: b.Ref, UserID: b.UserID, RoomID: b.RoomID,
		DateFrom: b.DateFrom, DateTo: b.DateTo, Price: price,
	}, nil
}

func (r *Repo) GetBooking(ctx context.Context, id int64) (domain.Booking, error) {
	var b domain.Booking
	err := r.db.QueryRowContext(ctx, getBookingSQL, id).
		Scan(&b.ID, &b.Ref, &b.UserID, &b.RoomID, &b.DateFrom, &b.DateTo, &b.Price)
	if err == sql.ErrNoRows {
		return domain.Booking{}, domain.ErrNotFound
	}
	return b, err
}

func (r *Repo) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return r.queryBookings(ctx, listBookingsSQL)
}

func (r *Repo) ListUserBookings(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return r.queryBookings(ctx, listUserBookingsSQL, userID)
}

func (r *Repo) queryBookings(ctx context.Context, q string, args ...any) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Booking{}
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.Ref, &b.UserID, &b.RoomID, &b.DateFrom, &b.DateTo, &b.Price); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *Repo) DeleteBooking(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, deleteBookingSQL, id)
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
