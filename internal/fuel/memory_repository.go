package fuel

import (
	"context"
	"sort"
	"sync"
)

// InMemoryRepository is an in-memory implementation of Repository.
// This is intended for testing. Production should use PostgresRepository.
type InMemoryRepository struct {
	mu       sync.RWMutex
	nextID   int64
	stations []Station
}

// NewInMemoryRepository creates a new in-memory fuel station repository.
func NewInMemoryRepository(stations ...Station) *InMemoryRepository {
	r := &InMemoryRepository{nextID: 1}
	_, _ = r.BulkInsert(context.Background(), stations)
	return r
}

// CheapestByState returns the cheapest station per state.
func (r *InMemoryRepository) CheapestByState(_ context.Context, statesIn []string) (map[string]Station, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[string]bool, len(statesIn))
	for _, s := range statesIn {
		wanted[s] = true
	}

	result := make(map[string]Station)
	for _, station := range r.stations {
		if !wanted[station.State] {
			continue
		}
		best, ok := result[station.State]
		if !ok || station.PricePerGallon < best.PricePerGallon {
			result[station.State] = station
		}
	}

	return result, nil
}

// List returns a page of stations ordered by ID.
func (r *InMemoryRepository) List(_ context.Context, opts ListOptions) (*ListResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}

	sorted := make([]Station, len(r.stations))
	copy(sorted, r.stations)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	var page []Station
	for _, s := range sorted {
		if s.ID > opts.Cursor {
			page = append(page, s)
		}
	}

	result := &ListResult{Items: page}
	if len(page) > limit {
		result.Items = page[:limit]
		cursor := result.Items[limit-1].ID
		result.NextCursor = &cursor
	}

	return result, nil
}

// BulkInsert inserts stations, skipping (name, state) conflicts.
func (r *InMemoryRepository) BulkInsert(_ context.Context, stations []Station) (*ImportResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.nextID == 0 {
		r.nextID = 1
	}

	var outcome ImportResult
	for _, s := range stations {
		conflict := false
		for _, existing := range r.stations {
			if existing.Name == s.Name && existing.State == s.State {
				conflict = true
				break
			}
		}
		if conflict {
			outcome.Conflicts++
			continue
		}
		s.ID = r.nextID
		r.nextID++
		r.stations = append(r.stations, s)
		outcome.Inserted++
	}

	return &outcome, nil
}
