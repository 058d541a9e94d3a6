package client

import "github.com/dmitrijs2005/everli/internal/client/models"

// projectStores flattens the widget groups into one ordered store list.
func projectStores(groups []widgetGroup) []models.Store {
	stores := make([]models.Store, 0)
	for _, g := range groups {
		for _, e := range g.List {
			stores = append(stores, projectStore(e))
		}
	}
	return stores
}

func projectStore(e storeEntry) models.Store {
	s := models.Store{
		ID:    e.ID.String(),
		Name:  e.Name,
		Image: e.Image,
	}

	if len(e.Label) > 0 {
		s.Color = e.Label[0].Color.ptr()
	}

	if len(e.Tracking) == 0 || e.Tracking[0].Data == nil {
		return s
	}
	t := e.Tracking[0].Data

	s.LocationID = t.LocationID.ptr()
	s.Type = t.StoreType.ptr()
	s.Address = t.StoreAddress.ptr()
	s.Province = t.StoreProvince.ptr()
	s.IsNew = t.StoreNewFlag.ptr()
	s.City = t.StoreCity.ptr()
	s.PostalCode = t.StorePostalCode.ptr()
	s.Country = t.StoreCountry.ptr()
	s.Area = t.StoreArea.ptr()

	return s
}

// projectAvailability keeps one record per day and only the valid slots,
// both in upstream order. A valid slot whose cost does not parse is kept
// with a zero cost.
func projectAvailability(days []dayEntry) []models.Availability {
	out := make([]models.Availability, 0, len(days))
	for _, d := range days {
		slots := make([]models.Slot, 0, len(d.Hours))
		for _, h := range d.Hours {
			if !h.Valid.isTrue() {
				continue
			}
			slots = append(slots, models.Slot{Time: h.Time, Cost: h.Cost.value})
		}
		out = append(out, models.Availability{Date: d.Date, Slots: slots})
	}
	return out
}
