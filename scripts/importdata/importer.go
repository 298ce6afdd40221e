package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/linesmerrill/la-crime-api/databases"
	"github.com/linesmerrill/la-crime-api/models"
	"github.com/linesmerrill/la-crime-api/normalizer"
	"github.com/linesmerrill/la-crime-api/validation"
)

// Result counts what happened to the records of one file
type Result struct {
	Inserted int64
	Skipped  int64
}

// Importer loads exported LA crime data, officers and upvotes into the store
type Importer struct {
	CrimeDB   databases.CrimeReportDatabase
	UpvoteDB  databases.UpvoteDatabase
	OfficerDB databases.OfficerDatabase
	Workers   int
}

// ImportCrimes validates, normalizes and inserts every record. Invalid and
// duplicate records are skipped and logged with their DR_NO; any other
// store failure stops the import.
func (im Importer) ImportCrimes(ctx context.Context, records []models.RawCrimeInput) (Result, error) {
	var res Result
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(im.workers())

	for _, raw := range records {
		g.Go(func() error {
			drNo := raw.DrNo.String()
			if err := models.NewValidationError(validation.ValidateFull(raw)); err != nil {
				zap.S().Warnw("skipping crime record", "dr_no", drNo, "error", err)
				atomic.AddInt64(&res.Skipped, 1)
				return nil
			}
			report, err := normalizer.Normalize(raw)
			if err != nil {
				zap.S().Warnw("skipping crime record", "dr_no", drNo, "error", err)
				atomic.AddInt64(&res.Skipped, 1)
				return nil
			}
			if _, err := im.CrimeDB.InsertOne(ctx, report); err != nil {
				if mongo.IsDuplicateKeyError(err) {
					zap.S().Warnw("skipping duplicate crime record", "dr_no", drNo)
					atomic.AddInt64(&res.Skipped, 1)
					return nil
				}
				return models.NewStoreError("insert crime report "+drNo, err)
			}
			atomic.AddInt64(&res.Inserted, 1)
			return nil
		})
	}
	err := g.Wait()
	return res, err
}

// ImportOfficers inserts the reference officers. Duplicates are skipped.
func (im Importer) ImportOfficers(ctx context.Context, officers []models.PoliceOfficer) (Result, error) {
	var res Result
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(im.workers())

	for _, o := range officers {
		g.Go(func() error {
			if o.BadgeNo == "" {
				zap.S().Warnw("skipping officer without badge number", "name", o.Name)
				atomic.AddInt64(&res.Skipped, 1)
				return nil
			}
			if _, err := im.OfficerDB.InsertOne(ctx, o); err != nil {
				if mongo.IsDuplicateKeyError(err) {
					atomic.AddInt64(&res.Skipped, 1)
					return nil
				}
				return models.NewStoreError("insert officer "+o.BadgeNo, err)
			}
			atomic.AddInt64(&res.Inserted, 1)
			return nil
		})
	}
	err := g.Wait()
	return res, err
}

// ImportUpvotes checks and inserts every upvote. Upvotes whose report or
// officer is not loaded are skipped, and the stored area and officer details
// replace the ones in the file. An officer upvoting the same report twice
// keeps only the first upvote.
func (im Importer) ImportUpvotes(ctx context.Context, upvotes []models.UpvoteInput) (Result, error) {
	var res Result
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(im.workers())

	for _, in := range upvotes {
		g.Go(func() error {
			if err := validation.CheckUpvote(&in); err != nil {
				zap.S().Warnw("skipping upvote", "error", err)
				atomic.AddInt64(&res.Skipped, 1)
				return nil
			}
			upvote := in.ToUpvote()
			report, err := im.CrimeDB.FindOne(ctx, bson.M{"dr_no": upvote.Report.DrNo})
			if err != nil {
				return im.skipUnresolved(&res, "crime report", upvote, err)
			}
			officer, err := im.OfficerDB.FindOne(ctx, bson.M{"badge_no": upvote.Officer.BadgeNo})
			if err != nil {
				return im.skipUnresolved(&res, "officer", upvote, err)
			}
			upvote = upvote.WithReferences(*report, *officer)

			if _, err := im.UpvoteDB.InsertOne(ctx, upvote); err != nil {
				if mongo.IsDuplicateKeyError(err) {
					zap.S().Warnw("skipping duplicate upvote",
						"badge_no", upvote.Officer.BadgeNo,
						"dr_no", upvote.Report.DrNo)
					atomic.AddInt64(&res.Skipped, 1)
					return nil
				}
				return models.NewStoreError("insert upvote", err)
			}
			atomic.AddInt64(&res.Inserted, 1)
			return nil
		})
	}
	err := g.Wait()
	return res, err
}

// skipUnresolved counts an upvote whose reference is missing as skipped and
// turns any other lookup failure into a store error
func (im Importer) skipUnresolved(res *Result, what string, upvote models.Upvote, err error) error {
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return models.NewStoreError("find "+what, err)
	}
	zap.S().Warnw("skipping upvote, "+what+" not found",
		"badge_no", upvote.Officer.BadgeNo,
		"dr_no", upvote.Report.DrNo)
	atomic.AddInt64(&res.Skipped, 1)
	return nil
}

func (im Importer) workers() int {
	if im.Workers <= 0 {
		return 1
	}
	return im.Workers
}

// readJSON decodes a JSON array file into v
func readJSON(path string, v interface{}) error {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}
