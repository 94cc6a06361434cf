package fuel

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository is a PostgreSQL implementation of Repository.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL fuel station repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// InitSchema creates the fuel_stations table if it does not exist.
func (r *PostgresRepository) InitSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS fuel_stations (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			address TEXT NOT NULL DEFAULT '',
			city TEXT NOT NULL DEFAULT '',
			state TEXT NOT NULL,
			price_per_gallon NUMERIC(5, 2) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (name, state)
		);
		CREATE INDEX IF NOT EXISTS fuel_stations_state_price_idx
			ON fuel_stations (state, price_per_gallon);
	`

	if _, err := r.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("create fuel_stations schema: %w", err)
	}
	return nil
}

// CheapestByState returns the cheapest station per state in a single query.
func (r *PostgresRepository) CheapestByState(ctx context.Context, statesIn []string) (map[string]Station, error) {
	if len(statesIn) == 0 {
		return map[string]Station{}, nil
	}

	query := `
		SELECT DISTINCT ON (state)
			id, name, address, city, state, price_per_gallon, created_at
		FROM fuel_stations
		WHERE state = ANY($1)
		ORDER BY state, price_per_gallon ASC, name ASC
	`

	rows, err := r.pool.Query(ctx, query, statesIn)
	if err != nil {
		return nil, fmt.Errorf("query cheapest stations: %w", err)
	}
	defer rows.Close()

	result := make(map[string]Station, len(statesIn))
	for rows.Next() {
		var station Station
		err := rows.Scan(
			&station.ID,
			&station.Name,
			&station.Address,
			&station.City,
			&station.State,
			&station.PricePerGallon,
			&station.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		result[station.State] = station
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// List returns a page of stations ordered by ID.
func (r *PostgresRepository) List(ctx context.Context, opts ListOptions) (*ListResult, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	// Fetch one extra to determine if there are more results
	fetchLimit := limit + 1

	query := `
		SELECT id, name, address, city, state, price_per_gallon, created_at
		FROM fuel_stations
		WHERE id > $1
		ORDER BY id
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, opts.Cursor, fetchLimit)
	if err != nil {
		return nil, fmt.Errorf("query stations: %w", err)
	}
	defer rows.Close()

	var stations []Station
	for rows.Next() {
		var station Station
		err := rows.Scan(
			&station.ID,
			&station.Name,
			&station.Address,
			&station.City,
			&station.State,
			&station.PricePerGallon,
			&station.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		stations = append(stations, station)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	result := &ListResult{Items: stations}
	if len(stations) > limit {
		result.Items = stations[:limit]
		cursor := result.Items[limit-1].ID
		result.NextCursor = &cursor
	}

	return result, nil
}

// BulkInsert inserts stations in a single batch, skipping (name, state)
// conflicts so re-running an import is safe.
func (r *PostgresRepository) BulkInsert(ctx context.Context, stations []Station) (*ImportResult, error) {
	if len(stations) == 0 {
		return &ImportResult{}, nil
	}

	batch := &pgx.Batch{}
	for _, s := range stations {
		batch.Queue(`
			INSERT INTO fuel_stations (name, address, city, state, price_per_gallon)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (name, state) DO NOTHING
		`, s.Name, s.Address, s.City, s.State, s.PricePerGallon)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	var outcome ImportResult
	for range stations {
		tag, err := results.Exec()
		if err != nil {
			return nil, fmt.Errorf("bulk insert station: %w", err)
		}
		if tag.RowsAffected() > 0 {
			outcome.Inserted++
		} else {
			outcome.Conflicts++
		}
	}

	return &outcome, nil
}
