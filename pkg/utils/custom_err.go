package utils

import "errors"

var (
	ErrTripNotFound         = errors.New("trip not found")
	ErrItemNotFound         = errors.New("itinerary item not found")
	ErrStoreUnavailable     = errors.New("trip store unavailable")
	ErrSummaryQuotaExceeded = errors.New("summary quota exceeded")
	ErrSummaryFailed        = errors.New("summary generation failed")
	ErrInvalidInput         = errors.New("invalid input")
)
