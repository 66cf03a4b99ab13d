package domain

type Hotel struct {
	ID       int64
	Title    string
	Location string
}

type HotelAdd struct {
	Title    string
	Location string
}

// HotelUpdate carries the mutable hotel fields; nil means "leave unchanged".
// A full (PUT) update sets every pointer, a partial (PATCH) update only some.
type HotelUpdate struct {
	Title    *string
	Location *string
}

// Room is a bookable unit-type within a hotel. Quantity is the total number of
// interchangeable physical units of this type; availability is counted against
// it, never against individual units.
type Room struct {
	ID          int64
	HotelID     int64
	Title       string
	Description *string
	Price       int
	Quantity    int
	FacilityIDs []int64
}

type RoomAdd struct {
	HotelID     int64
	Title       string
	Description *string
	Price       int
	Quantity    int
	FacilityIDs []int64
}

type RoomUpdate struct {
	Title       *string
	Description *string
	Price       *int
	Quantity    *int
	FacilityIDs []int64 // nil keeps the current link set, empty slice clears it
}

type Facility struct {
	ID    int64
	Title string
}

// HotelsFilter narrows the availability-scoped hotel listing. Title and
// Location are case-insensitive substring matches, trimmed before comparison.
type HotelsFilter struct {
	Location *string
	Title    *string
	Limit    int
	Offset   int
}
