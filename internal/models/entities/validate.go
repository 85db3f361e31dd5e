package entities

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"itinero/pkg/utils"
)

// ValidateTrip checks field constraints before anything touches the store.
// Items are validated separately when they are added or updated.
func ValidateTrip(t Trip) utils.FieldErrors {
	errs := utils.FieldErrors{}

	if utf8.RuneCountInString(strings.TrimSpace(t.Destination)) < 2 {
		errs["destination"] = "destination must be at least 2 characters"
	}

	var start, end bool
	if t.StartDate == "" {
		errs["startDate"] = "start date is required"
	} else if _, err := utils.ParseDate(t.StartDate); err != nil {
		errs["startDate"] = fmt.Sprintf("start date must be a valid %s date", utils.LayoutDate)
	} else {
		start = true
	}
	if t.EndDate == "" {
		errs["endDate"] = "end date is required"
	} else if _, err := utils.ParseDate(t.EndDate); err != nil {
		errs["endDate"] = fmt.Sprintf("end date must be a valid %s date", utils.LayoutDate)
	} else {
		end = true
	}
	if start && end && t.EndDate < t.StartDate {
		errs["endDate"] = "end date cannot be before start date"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidateItem checks an itinerary item against the closed type set and the
// time-window invariant.
func ValidateItem(i ItineraryItem) utils.FieldErrors {
	errs := utils.FieldErrors{}

	if utf8.RuneCountInString(strings.TrimSpace(i.Title)) < 2 {
		errs["title"] = "title must be at least 2 characters"
	}
	if !i.Type.Valid() {
		errs["type"] = fmt.Sprintf("type must be one of %s", joinTypes())
	}

	var start, end bool
	if i.StartTime != "" {
		if _, err := utils.ParseDateTime(i.StartTime); err != nil {
			errs["startTime"] = fmt.Sprintf("start time must be a valid %s date-time", utils.LayoutDateTime)
		} else {
			start = true
		}
	}
	if i.EndTime != "" {
		if _, err := utils.ParseDateTime(i.EndTime); err != nil {
			errs["endTime"] = fmt.Sprintf("end time must be a valid %s date-time", utils.LayoutDateTime)
		} else {
			end = true
		}
	}
	if start && end && i.EndTime < i.StartTime {
		errs["endTime"] = "end time cannot be before start time"
	}

	if i.Details != nil && i.Type.Valid() && i.Details.DetailType() != i.Type {
		errs["details"] = fmt.Sprintf("details do not match item type %q", i.Type)
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func joinTypes() string {
	names := make([]string, len(ItemTypes))
	for i, t := range ItemTypes {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
