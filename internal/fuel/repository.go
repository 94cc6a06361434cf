package fuel

import "context"

// ListOptions controls station listing pagination.
type ListOptions struct {
	// Limit is the maximum number of stations to return (default 50).
	Limit int

	// Cursor is the station ID to resume after, 0 for the first page.
	Cursor int64
}

// ListResult contains a page of stations.
type ListResult struct {
	Items []Station

	// NextCursor is the cursor for the next page, nil when this is the
	// last page.
	NextCursor *int64
}

// ImportResult reports the outcome of a bulk insert.
type ImportResult struct {
	Inserted int64
	Conflicts int64
}

// Repository defines fuel station persistence operations.
type Repository interface {
	// CheapestByState returns the cheapest station per state for the given
	// state codes in a single batched query. States without stations are
	// absent from the result.
	CheapestByState(ctx context.Context, statesIn []string) (map[string]Station, error)

	// List returns a paginated list of stations ordered by ID.
	List(ctx context.Context, opts ListOptions) (*ListResult, error)

	// BulkInsert inserts stations, skipping (name, state) conflicts.
	BulkInsert(ctx context.Context, stations []Station) (*ImportResult, error)
}
