package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itinero/internal/models/entities"
)

func item(id, title, start string) entities.ItineraryItem {
	return entities.ItineraryItem{
		ID:        id,
		Type:      entities.ItemTypeActivity,
		Title:     title,
		StartTime: start,
	}
}

func titles(items []entities.ItineraryItem) []string {
	out := make([]string, len(items))
	for n, i := range items {
		out[n] = i.Title
	}
	return out
}

func TestSortItems_UnscheduledLast(t *testing.T) {
	items := []entities.ItineraryItem{
		item("1", "Packing list", ""),
		item("2", "Flight", "2024-06-01T08:00"),
		item("3", "Reminder", ""),
		item("4", "Louvre", "2024-06-01T14:00"),
	}

	sorted := entities.SortItems(items)

	assert.Equal(t, []string{"Flight", "Louvre", "Packing list", "Reminder"}, titles(sorted))
}

func TestSortItems_StableOnEqualStartTimes(t *testing.T) {
	items := []entities.ItineraryItem{
		item("a", "First", "2024-06-01T09:00"),
		item("b", "Second", "2024-06-01T09:00"),
		item("c", "Third", "2024-06-01T09:00"),
	}

	sorted := entities.SortItems(items)

	assert.Equal(t, []string{"First", "Second", "Third"}, titles(sorted))
}

func TestSortItems_Idempotent(t *testing.T) {
	items := []entities.ItineraryItem{
		item("1", "Dinner", "2024-06-02T19:00"),
		item("2", "Note", ""),
		item("3", "Museum", "2024-06-02T10:00"),
		item("4", "Another note", ""),
	}

	once := entities.SortItems(items)
	twice := entities.SortItems(once)

	assert.Equal(t, once, twice)
}

func TestSortItems_DoesNotMutateInput(t *testing.T) {
	items := []entities.ItineraryItem{
		item("1", "Later", "2024-06-03T10:00"),
		item("2", "Earlier", "2024-06-01T10:00"),
	}

	_ = entities.SortItems(items)

	assert.Equal(t, "Later", items[0].Title)
}

func TestSortItems_ParisScenario(t *testing.T) {
	// Flight at 08:00, then an unscheduled packing list, then an activity
	// at 14:00 slots between them.
	items := []entities.ItineraryItem{
		item("1", "Flight to Paris", "2024-06-01T08:00"),
		item("2", "Packing list", ""),
	}
	sorted := entities.SortItems(items)
	require.Equal(t, []string{"Flight to Paris", "Packing list"}, titles(sorted))

	sorted = entities.SortItems(append(sorted, item("3", "Louvre", "2024-06-01T14:00")))
	assert.Equal(t, []string{"Flight to Paris", "Louvre", "Packing list"}, titles(sorted))
}

func TestGroupItemsByDay_SameDayShareGroup(t *testing.T) {
	items := []entities.ItineraryItem{
		item("1", "Breakfast", "2024-06-01T08:00"),
		item("2", "Museum", "2024-06-01T11:00"),
		item("3", "Train", "2024-06-02T09:30"),
	}

	groups := entities.GroupItemsByDay(items)

	require.Len(t, groups, 2)
	assert.Equal(t, "2024-06-01", groups[0].Key)
	assert.Equal(t, []string{"Breakfast", "Museum"}, titles(groups[0].Items))
	assert.Equal(t, "2024-06-02", groups[1].Key)
}

func TestGroupItemsByDay_UnscheduledGroupAlwaysLast(t *testing.T) {
	items := []entities.ItineraryItem{
		item("1", "Packing list", ""),
		item("2", "Flight", "2024-06-01T08:00"),
	}

	groups := entities.GroupItemsByDay(items)

	require.Len(t, groups, 2)
	assert.Equal(t, "2024-06-01", groups[0].Key)
	assert.Equal(t, entities.UnscheduledKey, groups[1].Key)
	assert.Equal(t, []string{"Packing list"}, titles(groups[1].Items))
}

func TestGroupItemsByDay_Empty(t *testing.T) {
	assert.Empty(t, entities.GroupItemsByDay(nil))
}
