package entities

import "strings"

// NormalizeItem trims free-text fields and collapses a blank details bag.
// Empty string and absent are the same thing at the storage boundary; this is
// where that rule is enforced.
func NormalizeItem(i ItineraryItem) ItineraryItem {
	i.Title = strings.TrimSpace(i.Title)
	i.StartTime = strings.TrimSpace(i.StartTime)
	i.EndTime = strings.TrimSpace(i.EndTime)
	i.Location = strings.TrimSpace(i.Location)
	i.Description = strings.TrimSpace(i.Description)
	i.Details = NormalizeDetails(i.Details)
	return i
}

// NormalizeTrip applies NormalizeItem to every item and trims the trip's own
// free-text fields. The items slice is replaced, never shared.
func NormalizeTrip(t Trip) Trip {
	t.Destination = strings.TrimSpace(t.Destination)
	t.Notes = strings.TrimSpace(t.Notes)
	t.ImageURL = strings.TrimSpace(t.ImageURL)
	items := make([]ItineraryItem, len(t.Items))
	for n, item := range t.Items {
		items[n] = NormalizeItem(item)
	}
	t.Items = items
	return t
}
