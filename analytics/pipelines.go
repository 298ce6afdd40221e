package analytics

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// TopLimit caps the upvote leaderboards
const TopLimit = 50

func dateBetween(r Range) bson.D {
	return bson.D{{Key: "$gte", Value: r.Start}, {Key: "$lte", Value: r.End}}
}

// ReportsPerCrimeCodePipeline counts crime entries per code within r
func ReportsPerCrimeCodePipeline(r Range) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "date_occurred", Value: dateBetween(r)}}}},
		{{Key: "$unwind", Value: "$crime"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$crime.code"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "code", Value: "$_id"},
			{Key: "count", Value: 1},
		}}},
	}
}

// ReportsPerDayPipeline counts entries of one crime code per calendar day within r.
// The second match drops the other codes a matching report carries.
func ReportsPerDayPipeline(code string, r Range) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{
			{Key: "date_occurred", Value: dateBetween(r)},
			{Key: "crime.code", Value: code},
		}}},
		{{Key: "$unwind", Value: "$crime"}},
		{{Key: "$match", Value: bson.D{{Key: "crime.code", Value: code}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{{Key: "$dateToString", Value: bson.D{
				{Key: "format", Value: "%Y-%m-%d"},
				{Key: "date", Value: bson.D{{Key: "$dateFromString", Value: bson.D{
					{Key: "dateString", Value: "$date_occurred"},
				}}}},
			}}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "date", Value: "$_id"},
			{Key: "count", Value: 1},
		}}},
	}
}

// TopCrimesPerAreaPipeline lists the three most frequent crime codes per area in day.
// day is a half-open window.
func TopCrimesPerAreaPipeline(day Range) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "date_occurred", Value: bson.D{
			{Key: "$gte", Value: day.Start},
			{Key: "$lt", Value: day.End},
		}}}}},
		{{Key: "$unwind", Value: "$crime"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "area", Value: "$area.name"},
				{Key: "crime_code", Value: "$crime.code"},
			}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "_id.area", Value: 1},
			{Key: "count", Value: -1},
			{Key: "_id.crime_code", Value: 1},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$_id.area"},
			{Key: "crimes", Value: bson.D{{Key: "$push", Value: bson.D{
				{Key: "crime_code", Value: "$_id.crime_code"},
				{Key: "count", Value: "$count"},
			}}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "area", Value: "$_id"},
			{Key: "top_crimes", Value: bson.D{{Key: "$slice", Value: bson.A{"$crimes", 3}}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "area", Value: 1}}}},
	}
}

// LeastCommonCrimesPipeline returns the two rarest crime codes within r
func LeastCommonCrimesPipeline(r Range) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "date_occurred", Value: dateBetween(r)}}}},
		{{Key: "$unwind", Value: "$crime"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$crime.code"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: 1}, {Key: "_id", Value: 1}}}},
		{{Key: "$limit", Value: 2}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "code", Value: "$_id"},
			{Key: "count", Value: 1},
		}}},
	}
}

// WeaponsMultipleAreasPipeline finds (crime code, weapon) pairs seen in more than one area
func WeaponsMultipleAreasPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$unwind", Value: "$crime"}},
		{{Key: "$match", Value: bson.D{{Key: "weapon.description", Value: bson.D{
			{Key: "$exists", Value: true},
			{Key: "$nin", Value: bson.A{"", nil}},
		}}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "crime_code", Value: "$crime.code"},
				{Key: "weapon", Value: "$weapon.description"},
			}},
			{Key: "areas", Value: bson.D{{Key: "$addToSet", Value: "$area.name"}}},
		}}},
		{{Key: "$match", Value: bson.D{{Key: "$expr", Value: bson.D{
			{Key: "$gt", Value: bson.A{bson.D{{Key: "$size", Value: "$areas"}}, 1}},
		}}}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id.crime_code", Value: 1}, {Key: "_id.weapon", Value: 1}}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "crime_code", Value: "$_id.crime_code"},
			{Key: "weapon", Value: "$_id.weapon"},
			{Key: "areas", Value: 1},
		}}},
	}
}

// TopUpvotedReportsPipeline ranks reports by upvotes cast on day
func TopUpvotedReportsPipeline(day string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "upvote_date", Value: day}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$report.dr_no"},
			{Key: "upvote_count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "upvote_count", Value: -1}, {Key: "_id", Value: 1}}}},
		{{Key: "$limit", Value: TopLimit}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "dr_no", Value: "$_id"},
			{Key: "upvote_count", Value: 1},
		}}},
	}
}

// TopActiveOfficersPipeline ranks officers by the number of upvotes they cast
func TopActiveOfficersPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$officer.badge_no"},
			{Key: "name", Value: bson.D{{Key: "$first", Value: "$officer.name"}}},
			{Key: "total_upvotes", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "total_upvotes", Value: -1}, {Key: "_id", Value: 1}}}},
		{{Key: "$limit", Value: TopLimit}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "badge_no", Value: "$_id"},
			{Key: "name", Value: 1},
			{Key: "total_upvotes", Value: 1},
		}}},
	}
}

// TopOfficersByUniqueAreasPipeline ranks officers by the distinct areas of the reports they upvoted
func TopOfficersByUniqueAreasPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$officer.badge_no"},
			{Key: "name", Value: bson.D{{Key: "$first", Value: "$officer.name"}}},
			{Key: "unique_areas", Value: bson.D{{Key: "$addToSet", Value: "$report.area.no"}}},
		}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "total_unique_areas", Value: bson.D{{Key: "$size", Value: "$unique_areas"}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "total_unique_areas", Value: -1}, {Key: "_id", Value: 1}}}},
		{{Key: "$limit", Value: TopLimit}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "badge_no", Value: "$_id"},
			{Key: "name", Value: 1},
			{Key: "total_unique_areas", Value: 1},
		}}},
	}
}

// SharedEmailPipeline groups upvotes by officer email and keeps emails used by more than one badge
func SharedEmailPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$officer.email"},
			{Key: "unique_badge_numbers", Value: bson.D{{Key: "$addToSet", Value: "$officer.badge_no"}}},
			{Key: "report_dr_nos", Value: bson.D{{Key: "$addToSet", Value: "$report.dr_no"}}},
		}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "badge_count", Value: bson.D{{Key: "$size", Value: "$unique_badge_numbers"}}},
		}}},
		{{Key: "$match", Value: bson.D{{Key: "badge_count", Value: bson.D{{Key: "$gt", Value: 1}}}}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "officer_email", Value: "$_id"},
			{Key: "unique_badge_numbers", Value: 1},
			{Key: "report_dr_nos", Value: 1},
		}}},
	}
}

// OfficerAreasPipeline lists the distinct report areas upvoted by officers named name
func OfficerAreasPipeline(name string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "officer.name", Value: name}}}},
		{{Key: "$group", Value: bson.D{{Key: "_id", Value: "$report.area"}}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id.no", Value: 1}}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "area", Value: "$_id"},
		}}},
	}
}
