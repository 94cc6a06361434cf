package fuel

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

const testCSV = `OPIS Truckstop ID,Truckstop Name,Address,City,State,Rack ID,Retail Price
1,PILOT #1,I-95 EXIT 10,Newark,NJ,100,3.459
2,LOVES #22,I-80 EXIT 284,Clearfield,PA,101,3.279
3,PILOT #1,I-95 EXIT 10,Newark,NJ,100,3.599
4,FLYING J #5,,,OH,102,3.199
5,NO PRICE STOP,I-70,Columbus,OH,103,
6,BAD PRICE STOP,I-70,Columbus,OH,104,abc
`

func TestImporter_Run(t *testing.T) {
	repo := NewInMemoryRepository()
	importer := NewImporter(ImporterConfig{
		Repository: repo,
		Logger:     zerolog.Nop(),
	})

	stats, err := importer.Run(context.Background(), strings.NewReader(testCSV))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.Inserted != 3 {
		t.Errorf("expected 3 inserted, got %d", stats.Inserted)
	}
	if stats.Skipped != 1 {
		t.Errorf("expected 1 skipped (missing price), got %d", stats.Skipped)
	}
	if stats.Failed != 1 {
		t.Errorf("expected 1 failed (bad price), got %d", stats.Failed)
	}

	// Duplicate (PILOT #1, NJ) keeps the highest price.
	cheapest, err := repo.CheapestByState(context.Background(), []string{"NJ"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	station, ok := cheapest["NJ"]
	if !ok {
		t.Fatal("expected NJ station")
	}
	if station.PricePerGallon != 3.599 {
		t.Errorf("expected highest duplicate price 3.599, got %v", station.PricePerGallon)
	}
}

func TestImporter_MissingColumn(t *testing.T) {
	importer := NewImporter(ImporterConfig{
		Repository: NewInMemoryRepository(),
		Logger:     zerolog.Nop(),
	})

	_, err := importer.Run(context.Background(), strings.NewReader("Name,City\nA,B\n"))
	if err == nil {
		t.Fatal("expected error for missing columns")
	}
}

func TestImporter_RerunIsSafe(t *testing.T) {
	repo := NewInMemoryRepository()
	importer := NewImporter(ImporterConfig{
		Repository: repo,
		Logger:     zerolog.Nop(),
	})

	if _, err := importer.Run(context.Background(), strings.NewReader(testCSV)); err != nil {
		t.Fatalf("first run: %v", err)
	}

	stats, err := importer.Run(context.Background(), strings.NewReader(testCSV))
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if stats.Inserted != 0 {
		t.Errorf("expected 0 inserted on re-run, got %d", stats.Inserted)
	}
	if stats.Conflicts != 3 {
		t.Errorf("expected 3 conflicts on re-run, got %d", stats.Conflicts)
	}
}
