package mysql

// -----------------------------------------------------------------------------
// HOTELS
// -----------------------------------------------------------------------------

const insertHotelSQL = `
INSERT INTO hotels (title, location) VALUES (?, ?)
`

const getHotelSQL = `
SELECT id, title, location FROM hotels WHERE id = ?
`

// COALESCE keeps the current value for fields the caller did not set.
const updateHotelSQL = `
UPDATE hotels
SET title    = COALESCE(?, title),
    location = COALESCE(?, location)
WHERE id = ?
`

const deleteHotelSQL = `
DELETE FROM hotels WHERE id = ?
`

// -----------------------------------------------------------------------------
// ROOMS
// -----------------------------------------------------------------------------

const insertRoomSQL = `
INSERT INTO rooms (hotel_id, title, description, price, quantity)
VALUES (?, ?, ?, ?, ?)
`

const getRoomSQL = `
SELECT id, hotel_id, title, description, price, quantity
FROM rooms
WHERE id = ? AND hotel_id = ?
`

const updateRoomSQL = `
UPDATE rooms
SET title       = COALESCE(?, title),
    description = COALESCE(?, description),
    price       = COALESCE(?, price),
    quantity    = COALESCE(?, quantity)
WHERE id = ? AND hotel_id = ?
`

const deleteRoomSQL = `
DELETE FROM rooms WHERE id = ? AND hotel_id = ?
`

const deleteRoomFacilitiesSQL = `
DELETE FROM room_facilities WHERE room_id = ?
`

// bulk VALUES list is appended at the call site
const insertRoomFacilitiesPrefix = `
INSERT INTO room_facilities (room_id, facility_id) VALUES `

// -----------------------------------------------------------------------------
// FACILITIES
// -----------------------------------------------------------------------------

const listFacilitiesSQL = `
SELECT id, title FROM facilities ORDER BY id
`

const insertFacilitySQL = `
INSERT INTO facilities (title) VALUES (?)
`

// -----------------------------------------------------------------------------
// USERS
// -----------------------------------------------------------------------------

const insertUserSQL = `
INSERT INTO users (email, password_hash) VALUES (?, ?)
`

const getUserByEmailSQL = `
SELECT id, email, password_hash FROM users WHERE email = ?
`

const getUserSQL = `
SELECT id, email FROM users WHERE id = ?
`

// -----------------------------------------------------------------------------
// BOOKING LEDGER
// -----------------------------------------------------------------------------

// Overlap filter is inclusive on both ends: date_from <= to AND date_to >= from.
// A checkout day equal to another stay's check-in day still occupies the unit.
const overlapCountsSQL = `
SELECT room_id, COUNT(*) AS booked
FROM bookings
WHERE date_from <= ? AND date_to >= ?
GROUP BY room_id
`

const overlapCountsScopedPrefix = `
SELECT room_id, COUNT(*) AS booked
FROM bookings
WHERE date_from <= ? AND date_to >= ? AND room_id IN `

// Admission runs these three inside one transaction. The row lock on the room
// serializes concurrent admissions for the same room through the insert.
const admitLockRoomSQL = `
SELECT price, quantity FROM rooms WHERE id = ? FOR UPDATE
`

const admitCountSQL = `
SELECT COUNT(*) FROM bookings
WHERE room_id = ? AND date_from <= ? AND date_to >= ?
`

const insertBookingSQL = `
INSERT INTO bookings (ref, user_id, room_id, date_from, date_to, price)
VALUES (?, ?, ?, ?, ?, ?)
`

const getBookingSQL = `
SELECT id, ref, user_id, room_id, date_from, date_to, price
FROM bookings
WHERE id = ?
`

const listBookingsSQL = `
SELECT id, ref, user_id, room_id, date_from, date_to, price
FROM bookings
ORDER BY id
`

const listUserBookingsSQL = `
SELECT id, ref, user_id, room_id, date_from, date_to, price
FROM bookings
WHERE user_id = ?
ORDER BY id
`

const deleteBookingSQL = `
DELETE FROM bookings WHERE id = ?
`
