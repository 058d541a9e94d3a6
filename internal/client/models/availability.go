package models

// Slot is a bookable delivery window. Cost is in EUR.
type Slot struct {
	Time string  `json:"time"`
	Cost float64 `json:"cost"`
}

// Availability lists the valid slots of one calendar day (YYYY-MM-DD).
// Slots is empty, never nil, when the day has no valid slot.
type Availability struct {
	Date  string `json:"date"`
	Slots []Slot `json:"slots"`
}

// FirstSlot returns the earliest valid slot across days, in upstream order.
func FirstSlot(days []Availability) (Availability, Slot, bool) {
	for _, d := range days {
		if len(d.Slots) > 0 {
			return d, d.Slots[0], true
		}
	}
	return Availability{}, Slot{}, false
}
