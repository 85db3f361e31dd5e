package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbm "itinero/internal/models/db_models"
	"itinero/internal/models/entities"
	"itinero/pkg/utils"
)

// gormTripRepository stores one document per trip: a trips row plus its item
// rows, replaced wholesale inside a transaction on every save.
type gormTripRepository struct {
	db *gorm.DB
}

func NewGormTripRepository(db *gorm.DB) TripRepository {
	return &gormTripRepository{db: db}
}

func (r *gormTripRepository) ListTrips(ctx context.Context) ([]entities.Trip, error) {
	var records []dbm.Trip
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Order("start_date DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("%w: list trips: %v", utils.ErrStoreUnavailable, err)
	}
	out := make([]entities.Trip, 0, len(records))
	for _, rec := range records {
		trip, err := fromStorage(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, trip)
	}
	return out, nil
}

func (r *gormTripRepository) GetTrip(ctx context.Context, id string) (*entities.Trip, error) {
	tripID, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.ErrTripNotFound
	}
	var rec dbm.Trip
	err = r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&rec, "id = ?", tripID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrTripNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get trip: %v", utils.ErrStoreUnavailable, err)
	}
	trip, err := fromStorage(rec)
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

func (r *gormTripRepository) SaveTrip(ctx context.Context, trip *entities.Trip) error {
	prepareForSave(trip)
	rec, err := toStorage(*trip)
	if err != nil {
		return err
	}
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Whole-document overwrite: drop the old item set, then write the
		// trip row and the new items. Last write wins.
		if err := tx.Where("trip_id = ?", rec.ID).Delete(&dbm.ItineraryItem{}).Error; err != nil {
			return err
		}
		items := rec.Items
		rec.Items = nil
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rec).Error; err != nil {
			return err
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: save trip: %v", utils.ErrStoreUnavailable, err)
	}
	return nil
}

func (r *gormTripRepository) DeleteTrip(ctx context.Context, id string) error {
	tripID, err := uuid.Parse(id)
	if err != nil {
		// Nothing stored under a malformed id; deletion is idempotent.
		return nil
	}
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("trip_id = ?", tripID).Delete(&dbm.ItineraryItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&dbm.Trip{}, "id = ?", tripID).Error
	})
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: delete trip: %v", utils.ErrStoreUnavailable, err)
	}
	return nil
}

// toStorage converts the canonical string-dated aggregate into stored records.
func toStorage(trip entities.Trip) (dbm.Trip, error) {
	tripID, err := uuid.Parse(trip.ID)
	if err != nil {
		return dbm.Trip{}, fmt.Errorf("%w: trip id %q", utils.ErrInvalidInput, trip.ID)
	}
	start, err := utils.ParseDate(trip.StartDate)
	if err != nil {
		return dbm.Trip{}, fmt.Errorf("%w: start date %q", utils.ErrInvalidInput, trip.StartDate)
	}
	end, err := utils.ParseDate(trip.EndDate)
	if err != nil {
		return dbm.Trip{}, fmt.Errorf("%w: end date %q", utils.ErrInvalidInput, trip.EndDate)
	}

	rec := dbm.Trip{
		ID:          tripID,
		Destination: trip.Destination,
		StartDate:   start,
		EndDate:     end,
		Notes:       trip.Notes,
		ImageURL:    trip.ImageURL,
	}
	for n, item := range trip.Items {
		itemRec, err := itemToStorage(tripID, n, item)
		if err != nil {
			return dbm.Trip{}, err
		}
		rec.Items = append(rec.Items, itemRec)
	}
	return rec, nil
}

func itemToStorage(tripID uuid.UUID, position int, item entities.ItineraryItem) (dbm.ItineraryItem, error) {
	itemID, err := uuid.Parse(item.ID)
	if err != nil {
		return dbm.ItineraryItem{}, fmt.Errorf("%w: item id %q", utils.ErrInvalidInput, item.ID)
	}
	rec := dbm.ItineraryItem{
		ID:          itemID,
		TripID:      tripID,
		Position:    position,
		Type:        string(item.Type),
		Title:       item.Title,
		Location:    item.Location,
		Description: item.Description,
	}
	if item.StartTime != "" {
		t, err := utils.ParseDateTime(item.StartTime)
		if err != nil {
			return dbm.ItineraryItem{}, fmt.Errorf("%w: item start time %q", utils.ErrInvalidInput, item.StartTime)
		}
		rec.StartTime = &t
	}
	if item.EndTime != "" {
		t, err := utils.ParseDateTime(item.EndTime)
		if err != nil {
			return dbm.ItineraryItem{}, fmt.Errorf("%w: item end time %q", utils.ErrInvalidInput, item.EndTime)
		}
		rec.EndTime = &t
	}
	if item.Details != nil {
		raw, err := json.Marshal(item.Details)
		if err != nil {
			return dbm.ItineraryItem{}, fmt.Errorf("encode item details: %w", err)
		}
		rec.Details = raw
	}
	return rec, nil
}

// fromStorage converts stored records back to the canonical aggregate,
// re-normalizing so empty and absent collapse regardless of how a past writer
// stored them.
func fromStorage(rec dbm.Trip) (entities.Trip, error) {
	trip := entities.Trip{
		ID:          rec.ID.String(),
		Destination: rec.Destination,
		StartDate:   utils.FormatDate(rec.StartDate),
		EndDate:     utils.FormatDate(rec.EndDate),
		Notes:       rec.Notes,
		ImageURL:    rec.ImageURL,
		Items:       []entities.ItineraryItem{},
	}
	for _, itemRec := range rec.Items {
		item, err := itemFromStorage(itemRec)
		if err != nil {
			return entities.Trip{}, err
		}
		trip.Items = append(trip.Items, item)
	}
	return trip, nil
}

func itemFromStorage(rec dbm.ItineraryItem) (entities.ItineraryItem, error) {
	item := entities.ItineraryItem{
		ID:          rec.ID.String(),
		Type:        entities.ItemType(rec.Type),
		Title:       rec.Title,
		Location:    rec.Location,
		Description: rec.Description,
	}
	if rec.StartTime != nil {
		item.StartTime = utils.FormatDateTime(*rec.StartTime)
	}
	if rec.EndTime != nil {
		item.EndTime = utils.FormatDateTime(*rec.EndTime)
	}
	if len(rec.Details) > 0 {
		details, err := entities.DecodeDetails(item.Type, rec.Details)
		if err != nil {
			return entities.ItineraryItem{}, fmt.Errorf("%w: item %s: %v", utils.ErrStoreUnavailable, rec.ID, err)
		}
		item.Details = details
	}
	return entities.NormalizeItem(item), nil
}
