package client

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Wire shapes of the Everli API. Only the fields the client reads are
// declared; anything optional upstream is a pointer, a slice or a loose*
// scalar so that absence survives decoding.

type signInRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	TrackFrom string `json:"trackfrom"`
}

type signInResponse struct {
	Data struct {
		User *struct {
			UserID    looseString `json:"user_id"`
			Email     string      `json:"email"`
			Country   string      `json:"country"`
			AuthToken string      `json:"auth_token"`
		} `json:"user"`
		NextLink string `json:"next_link"`
	} `json:"data"`
}

type initResponse struct {
	Data struct {
		Customer *struct {
			IsLoggedIn bool   `json:"is_logged_in"`
			Email      string `json:"email"`
		} `json:"customer"`
		NextLink *string `json:"next_link"`
	} `json:"data"`
}

type storesResponse struct {
	Data struct {
		Body []widgetGroup `json:"body"`
	} `json:"data"`
}

type widgetGroup struct {
	WidgetType string       `json:"widget_type"`
	Title      string       `json:"title"`
	List       []storeEntry `json:"list"`
}

type storeEntry struct {
	WidgetType string          `json:"widget_type"`
	ID         looseString     `json:"id"`
	Name       string          `json:"name"`
	Image      string          `json:"image"`
	Link       string          `json:"link"`
	Label      []storeLabel    `json:"label"`
	Tracking   []storeTracking `json:"tracking"`
}

type storeLabel struct {
	Value string      `json:"value"`
	Color looseString `json:"color"`
}

type storeTracking struct {
	EventName string             `json:"event_name"`
	Data      *storeTrackingData `json:"data"`
}

type storeTrackingData struct {
	LocationID      looseString `json:"location_id"`
	StoreType       looseInt    `json:"store_type"`
	StoreAddress    looseString `json:"store_address"`
	StoreProvince   looseString `json:"store_province"`
	StoreNewFlag    looseInt    `json:"store_new_flag"`
	StoreCity       looseString `json:"store_city"`
	StorePostalCode looseString `json:"store_postal_code"`
	StoreCountry    looseString `json:"store_country"`
	StoreArea       looseString `json:"store_area"`
}

type availabilityResponse struct {
	Data struct {
		StoreName string     `json:"store_name"`
		Days      []dayEntry `json:"data"`
	} `json:"data"`
}

type dayEntry struct {
	Label string      `json:"label"`
	Date  string      `json:"date"`
	Hours []hourEntry `json:"hours"`
}

type hourEntry struct {
	TimeLabel string     `json:"time_label"`
	Valid     looseBool  `json:"valid"`
	Time      string     `json:"time"`
	Cost      looseFloat `json:"cost"`
}

// The loose* types decode optional scalars without ever failing the
// enclosing payload: a value of an unexpected type leaves the field unset.

// decodeScalar returns the decoded JSON value with numbers kept as
// json.Number, or nil for null and anything undecodable.
func decodeScalar(b []byte) any {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil
	}
	return v
}

// looseString accepts a JSON string or number. Everli sends ids as strings
// ("3193") but numeric ids show up in some payloads.
type looseString struct {
	value string
	set   bool
}

func (s *looseString) UnmarshalJSON(b []byte) error {
	*s = looseString{}
	switch v := decodeScalar(b).(type) {
	case string:
		*s = looseString{value: v, set: true}
	case json.Number:
		*s = looseString{value: v.String(), set: true}
	}
	return nil
}

// String returns the value, or "" when unset.
func (s looseString) String() string { return s.value }

func (s looseString) ptr() *string {
	if !s.set {
		return nil
	}
	v := s.value
	return &v
}

// looseInt accepts a JSON number or a numeric string within the int range.
// Fractions are truncated.
type looseInt struct {
	value int
	set   bool
}

func (i *looseInt) UnmarshalJSON(b []byte) error {
	*i = looseInt{}

	var n json.Number
	switch v := decodeScalar(b).(type) {
	case json.Number:
		n = v
	case string:
		n = json.Number(strings.TrimSpace(v))
	default:
		return nil
	}

	if v, err := strconv.ParseInt(n.String(), 10, strconv.IntSize); err == nil {
		*i = looseInt{value: int(v), set: true}
		return nil
	}
	f, err := strconv.ParseFloat(n.String(), 64)
	if err != nil || math.IsNaN(f) || f < minIntFloat || f >= -minIntFloat {
		return nil
	}
	*i = looseInt{value: int(f), set: true}
	return nil
}

// minIntFloat is math.MinInt as a float64; -minIntFloat is the first float
// above math.MaxInt.
const minIntFloat = float64(math.MinInt)

func (i looseInt) ptr() *int {
	if !i.set {
		return nil
	}
	v := i.value
	return &v
}

// looseFloat accepts a JSON number or a numeric string, with either a dot or
// a comma as decimal separator ("4.90", "4,90").
type looseFloat struct {
	value float64
	set   bool
}

func (f *looseFloat) UnmarshalJSON(b []byte) error {
	*f = looseFloat{}

	var raw string
	switch v := decodeScalar(b).(type) {
	case json.Number:
		raw = v.String()
	case string:
		raw = strings.TrimSpace(v)
		if !strings.Contains(raw, ".") {
			raw = strings.Replace(raw, ",", ".", 1)
		}
	default:
		return nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	*f = looseFloat{value: v, set: true}
	return nil
}

// looseBool accepts true/false, 0/1 and their string forms. Anything else,
// absence included, reads as false.
type looseBool struct {
	value bool
	set   bool
}

func (v *looseBool) UnmarshalJSON(b []byte) error {
	*v = looseBool{}

	var raw string
	switch x := decodeScalar(b).(type) {
	case bool:
		*v = looseBool{value: x, set: true}
		return nil
	case json.Number:
		raw = x.String()
	case string:
		raw = strings.TrimSpace(x)
	default:
		return nil
	}

	if parsed, err := strconv.ParseBool(raw); err == nil {
		*v = looseBool{value: parsed, set: true}
	}
	return nil
}

// isTrue reports whether the flag was present and true.
func (v looseBool) isTrue() bool { return v.set && v.value }
