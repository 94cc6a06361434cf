package fuel

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// CSV column headers of the truckstop price feed.
const (
	columnName  = "Truckstop Name"
	columnAddr  = "Address"
	columnCity  = "City"
	columnState = "State"
	columnPrice = "Retail Price"
)

// ImportStats summarizes a bulk import run.
type ImportStats struct {
	Inserted  int64
	Conflicts int64
	Skipped   int
	Failed    int
}

// ImporterConfig holds configuration for the CSV importer.
type ImporterConfig struct {
	// Repository receives the parsed stations (required).
	Repository Repository

	// BatchSize is how many stations to insert per batch (default 500).
	BatchSize int

	// Logger for import progress.
	Logger zerolog.Logger
}

// Importer loads fuel station prices from the truckstop CSV feed.
// When the feed lists a (name, state) pair more than once, the HIGHEST price
// wins; stations straddling state lines appear with one row per exit and the
// conservative price is the safer planning input.
type Importer struct {
	repo      Repository
	batchSize int
	logger    zerolog.Logger
}

// NewImporter creates a new CSV importer.
func NewImporter(cfg ImporterConfig) *Importer {
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = 500
	}
	return &Importer{
		repo:      cfg.Repository,
		batchSize: batchSize,
		logger:    cfg.Logger,
	}
}

// Run parses the CSV stream, dedups by (name, state) and bulk-inserts the
// result in batches.
func (im *Importer) Run(ctx context.Context, r io.Reader) (*ImportStats, error) {
	stations, stats, err := im.parse(r)
	if err != nil {
		return nil, err
	}

	for start := 0; start < len(stations); start += im.batchSize {
		end := min(start+im.batchSize, len(stations))
		result, err := im.repo.BulkInsert(ctx, stations[start:end])
		if err != nil {
			return nil, fmt.Errorf("insert batch at %d: %w", start, err)
		}
		stats.Inserted += result.Inserted
		stats.Conflicts += result.Conflicts
	}

	im.logger.Info().
		Int64("inserted", stats.Inserted).
		Int64("conflicts", stats.Conflicts).
		Int("skipped", stats.Skipped).
		Int("failed", stats.Failed).
		Msg("fuel station import completed")

	return stats, nil
}

// parse reads the CSV and applies the keep-highest dedup policy.
func (im *Importer) parse(r io.Reader) ([]Station, *ImportStats, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("read CSV header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{columnName, columnState, columnPrice} {
		if _, ok := columns[required]; !ok {
			return nil, nil, fmt.Errorf("CSV missing required column %q", required)
		}
	}

	stats := &ImportStats{}
	type key struct{ name, state string }
	index := make(map[key]int)
	var stations []Station

	for rowNumber := 1; ; rowNumber++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			stats.Failed++
			im.logger.Warn().Err(err).Int("row", rowNumber).Msg("failed to read CSV row")
			continue
		}

		name := field(record, columns, columnName)
		state := field(record, columns, columnState)
		priceRaw := field(record, columns, columnPrice)

		if name == "" || state == "" || priceRaw == "" {
			stats.Skipped++
			continue
		}

		price, err := strconv.ParseFloat(priceRaw, 64)
		if err != nil {
			stats.Failed++
			im.logger.Warn().
				Int("row", rowNumber).
				Str("price", priceRaw).
				Msg("unparseable price, row dropped")
			continue
		}

		k := key{name: name, state: state}
		if i, seen := index[k]; seen {
			if price > stations[i].PricePerGallon {
				stations[i].PricePerGallon = price
			}
			continue
		}

		index[k] = len(stations)
		stations = append(stations, Station{
			Name:           name,
			Address:        field(record, columns, columnAddr),
			City:           field(record, columns, columnCity),
			State:          state,
			PricePerGallon: price,
		})
	}

	return stations, stats, nil
}

func field(record []string, columns map[string]int, name string) string {
	i, ok := columns[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
