package entities

import (
	"sort"

	"itinero/pkg/utils"
)

// UnscheduledKey labels the day group holding items without a start time.
const UnscheduledKey = "unscheduled"

// SortItems returns a new slice sorted ascending by start time. Items without
// a start time go after every scheduled item and keep their relative order
// among themselves; the sort is stable, so equal start times also keep their
// original order.
func SortItems(items []ItineraryItem) []ItineraryItem {
	out := make([]ItineraryItem, len(items))
	copy(out, items)
	sort.SliceStable(out, func(a, b int) bool {
		ai, bi := out[a], out[b]
		switch {
		case ai.Scheduled() && bi.Scheduled():
			// Canonical strings compare chronologically.
			return ai.StartTime < bi.StartTime
		case ai.Scheduled():
			return true
		default:
			return false
		}
	})
	return out
}

// DayGroup is one timeline section: a local calendar day, or the trailing
// unscheduled section.
type DayGroup struct {
	Key   string          `json:"key"`
	Items []ItineraryItem `json:"items"`
}

// GroupItemsByDay partitions items by the local calendar day of their start
// time. Day groups come out in ascending date order with items sorted within
// each; the unscheduled group, if any, is always last.
func GroupItemsByDay(items []ItineraryItem) []DayGroup {
	sorted := SortItems(items)

	var groups []DayGroup
	index := map[string]int{}
	for _, item := range sorted {
		key := UnscheduledKey
		if item.Scheduled() {
			if t, err := utils.ParseDateTime(item.StartTime); err == nil {
				key = utils.FormatDate(t)
			}
		}
		if at, ok := index[key]; ok {
			groups[at].Items = append(groups[at].Items, item)
			continue
		}
		index[key] = len(groups)
		groups = append(groups, DayGroup{Key: key, Items: []ItineraryItem{item}})
	}
	return groups
}
