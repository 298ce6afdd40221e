package databases

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// CrimeReportIndexes are the indexes kept on crime_reports. Each compound index
// matches the filter and group key prefix of an analytics pipeline.
func CrimeReportIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "dr_no", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("dr_no_unique"),
		},
		{Keys: bson.D{{Key: "date_occurred", Value: 1}, {Key: "crime.code", Value: 1}}},
		{Keys: bson.D{{Key: "date_occurred", Value: 1}, {Key: "area.name", Value: 1}, {Key: "crime.code", Value: 1}}},
		{Keys: bson.D{{Key: "crime.code", Value: 1}, {Key: "weapon.description", Value: 1}, {Key: "area.name", Value: 1}}},
	}
}

// UpvoteIndexes are the indexes kept on upvotes. The unique index on
// (officer.badge_no, report.dr_no) closes the race between the duplicate check
// and the insert.
func UpvoteIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "officer.badge_no", Value: 1}, {Key: "report.dr_no", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("officer_report_unique"),
		},
		{Keys: bson.D{{Key: "upvote_date", Value: 1}, {Key: "report.dr_no", Value: 1}}},
		{Keys: bson.D{{Key: "officer.badge_no", Value: 1}, {Key: "officer.name", Value: 1}}},
		{Keys: bson.D{{Key: "officer.badge_no", Value: 1}, {Key: "report.area.no", Value: 1}}},
		{Keys: bson.D{{Key: "officer.email", Value: 1}, {Key: "officer.badge_no", Value: 1}}},
		{Keys: bson.D{{Key: "officer.name", Value: 1}, {Key: "report.area", Value: 1}}},
	}
}

// OfficerIndexes are the indexes kept on police_officers
func OfficerIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "badge_no", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("badge_no_unique"),
		},
		{Keys: bson.D{{Key: "name", Value: 1}}},
	}
}

// EnsureIndexes creates the crime report, upvote and officer indexes. Failures are
// logged and the number of failed collections is returned; queries stay correct without
// the indexes.
func EnsureIndexes(ctx context.Context, db DatabaseHelper) int {
	failed := 0
	for name, models := range map[string][]mongo.IndexModel{
		crimeReportName: CrimeReportIndexes(),
		upvoteName:      UpvoteIndexes(),
		officerName:     OfficerIndexes(),
	} {
		created, err := db.Collection(name).Indexes().CreateMany(ctx, models)
		if err != nil {
			failed++
			zap.S().Warnw("failed to create indexes", "collection", name, "error", err)
			continue
		}
		zap.S().Infow("ensured indexes", "collection", name, "indexes", created)
	}
	return failed
}
