package main

import (
	"context"
	"flag"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/linesmerrill/la-crime-api/config"
	"github.com/linesmerrill/la-crime-api/databases"
	"github.com/linesmerrill/la-crime-api/models"
)

// Loads exported crime records, officers and upvotes into the database named by DB_URI/DB_NAME
// Usage: go run ./scripts/importdata -crimes crime_data.json -officers officers_data.json -upvotes upvotes_data.json
func main() {
	crimesPath := flag.String("crimes", "", "JSON array of raw LA crime records")
	officersPath := flag.String("officers", "", "JSON array of police officers")
	upvotesPath := flag.String("upvotes", "", "JSON array of upvotes")
	workers := flag.Int("workers", 8, "number of concurrent inserts")
	timeout := flag.Duration("timeout", 30*time.Minute, "overall import timeout")
	flag.Parse()

	conf := config.New()
	defer func() { _ = zap.L().Sync() }()
	if err := conf.Validate(); err != nil {
		zap.S().Fatalw("invalid configuration", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client, err := databases.NewClient(conf)
	if err != nil {
		zap.S().Fatalw("failed to create new client", "error", err)
	}
	if err := client.Connect(ctx); err != nil {
		zap.S().Fatalw("failed to connect to database", "error", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	db := databases.NewDatabase(conf, client)
	// unique indexes first so duplicates are rejected during the load
	if failed := databases.EnsureIndexes(ctx, db); failed > 0 {
		zap.S().Warnw("some indexes could not be created", "collections", failed)
	}

	im := Importer{
		CrimeDB:   databases.NewCrimeReportDatabase(db),
		UpvoteDB:  databases.NewUpvoteDatabase(db),
		OfficerDB: databases.NewOfficerDatabase(db),
		Workers:   *workers,
	}
	if err := run(ctx, im, *crimesPath, *officersPath, *upvotesPath); err != nil {
		zap.S().Errorw("import failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, im Importer, crimesPath, officersPath, upvotesPath string) error {
	if crimesPath != "" {
		var records []models.RawCrimeInput
		if err := readJSON(crimesPath, &records); err != nil {
			return err
		}
		res, err := im.ImportCrimes(ctx, records)
		zap.S().Infow("crime reports imported", "inserted", res.Inserted, "skipped", res.Skipped)
		if err != nil {
			return err
		}
	}
	if officersPath != "" {
		var officers []models.PoliceOfficer
		if err := readJSON(officersPath, &officers); err != nil {
			return err
		}
		res, err := im.ImportOfficers(ctx, officers)
		zap.S().Infow("police officers imported", "inserted", res.Inserted, "skipped", res.Skipped)
		if err != nil {
			return err
		}
	}
	if upvotesPath != "" {
		var upvotes []models.UpvoteInput
		if err := readJSON(upvotesPath, &upvotes); err != nil {
			return err
		}
		res, err := im.ImportUpvotes(ctx, upvotes)
		zap.S().Infow("upvotes imported", "inserted", res.Inserted, "skipped", res.Skipped)
		if err != nil {
			return err
		}
	}
	return nil
}
