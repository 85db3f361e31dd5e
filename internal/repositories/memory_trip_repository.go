package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"itinero/internal/models/entities"
	"itinero/pkg/utils"
)

// tripsKey is the single well-known key the whole collection lives under.
const tripsKey = "itinero.trips"

// MemoryStore is a minimal in-process key-value store. It is an explicit
// handle injected where needed, not a package singleton, so tests can spin up
// isolated stores.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok
}

func (s *MemoryStore) Set(key string, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
}

// memoryTripRepository keeps all trips as one serialized array under a single
// key, read-modify-written in full on every operation.
type memoryTripRepository struct {
	store *MemoryStore
	mu    sync.Mutex
}

func NewMemoryTripRepository(store *MemoryStore) TripRepository {
	return &memoryTripRepository{store: store}
}

func (r *memoryTripRepository) load() ([]entities.Trip, error) {
	raw, ok := r.store.Get(tripsKey)
	if !ok || len(raw) == 0 {
		return nil, nil
	}
	var trips []entities.Trip
	if err := json.Unmarshal(raw, &trips); err != nil {
		return nil, fmt.Errorf("%w: corrupt trip collection: %v", utils.ErrStoreUnavailable, err)
	}
	return trips, nil
}

func (r *memoryTripRepository) persist(trips []entities.Trip) error {
	raw, err := json.Marshal(trips)
	if err != nil {
		return fmt.Errorf("%w: encode trip collection: %v", utils.ErrStoreUnavailable, err)
	}
	r.store.Set(tripsKey, raw)
	return nil
}

func (r *memoryTripRepository) ListTrips(ctx context.Context) ([]entities.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	trips, err := r.load()
	if err != nil {
		return nil, err
	}
	out := make([]entities.Trip, len(trips))
	for n, t := range trips {
		if t.Items == nil {
			t.Items = []entities.ItineraryItem{}
		}
		out[n] = t
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].StartDate > out[b].StartDate
	})
	return out, nil
}

func (r *memoryTripRepository) GetTrip(ctx context.Context, id string) (*entities.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	trips, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, t := range trips {
		if t.ID == id {
			found := t.Clone()
			if found.Items == nil {
				found.Items = []entities.ItineraryItem{}
			}
			return &found, nil
		}
	}
	return nil, utils.ErrTripNotFound
}

func (r *memoryTripRepository) SaveTrip(ctx context.Context, trip *entities.Trip) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	trips, err := r.load()
	if err != nil {
		return err
	}
	prepareForSave(trip)

	replaced := false
	for n, t := range trips {
		if t.ID == trip.ID {
			trips[n] = trip.Clone()
			replaced = true
			break
		}
	}
	if !replaced {
		trips = append(trips, trip.Clone())
	}
	return r.persist(trips)
}

func (r *memoryTripRepository) DeleteTrip(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	trips, err := r.load()
	if err != nil {
		return err
	}
	kept := trips[:0]
	for _, t := range trips {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	return r.persist(kept)
}
