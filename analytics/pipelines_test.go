package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func stageNames(p mongo.Pipeline) []string {
	names := make([]string, 0, len(p))
	for _, stage := range p {
		names = append(names, stage[0].Key)
	}
	return names
}

func stage(t *testing.T, p mongo.Pipeline, i int) bson.D {
	t.Helper()
	require.Less(t, i, len(p))
	v, ok := p[i][0].Value.(bson.D)
	require.True(t, ok, "stage %d is not a document", i)
	return v
}

var testRange = Range{Start: "2020-01-01T00:00:00", End: "2020-01-31T00:00:00"}

func TestReportsPerCrimeCodePipeline(t *testing.T) {
	p := ReportsPerCrimeCodePipeline(testRange)

	assert.Equal(t, []string{"$match", "$unwind", "$group", "$sort", "$project"}, stageNames(p))
	assert.Equal(t, bson.D{{Key: "date_occurred", Value: bson.D{
		{Key: "$gte", Value: "2020-01-01T00:00:00"},
		{Key: "$lte", Value: "2020-01-31T00:00:00"},
	}}}, stage(t, p, 0))
	assert.Equal(t, "$crime", p[1][0].Value)
	assert.Equal(t, bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}, stage(t, p, 3))
}

func TestReportsPerDayPipeline_MatchesCodeTwice(t *testing.T) {
	p := ReportsPerDayPipeline("624", testRange)

	assert.Equal(t, []string{"$match", "$unwind", "$match", "$group", "$sort", "$project"}, stageNames(p))
	first := stage(t, p, 0)
	assert.Equal(t, "crime.code", first[1].Key)
	assert.Equal(t, "624", first[1].Value)
	assert.Equal(t, bson.D{{Key: "crime.code", Value: "624"}}, stage(t, p, 2))
	assert.Equal(t, bson.D{{Key: "_id", Value: 1}}, stage(t, p, 4))
}

func TestTopCrimesPerAreaPipeline(t *testing.T) {
	p := TopCrimesPerAreaPipeline(Range{Start: "2020-01-08T00:00:00", End: "2020-01-09T00:00:00"})

	assert.Equal(t, []string{"$match", "$unwind", "$group", "$sort", "$group", "$project", "$sort"}, stageNames(p))
	assert.Equal(t, bson.D{{Key: "date_occurred", Value: bson.D{
		{Key: "$gte", Value: "2020-01-08T00:00:00"},
		{Key: "$lt", Value: "2020-01-09T00:00:00"},
	}}}, stage(t, p, 0))
	assert.Equal(t, bson.D{
		{Key: "_id.area", Value: 1},
		{Key: "count", Value: -1},
		{Key: "_id.crime_code", Value: 1},
	}, stage(t, p, 3))

	project := stage(t, p, 5)
	assert.Equal(t, "top_crimes", project[2].Key)
	assert.Equal(t, bson.D{{Key: "$slice", Value: bson.A{"$crimes", 3}}}, project[2].Value)
}

func TestLeastCommonCrimesPipeline(t *testing.T) {
	p := LeastCommonCrimesPipeline(testRange)

	assert.Equal(t, []string{"$match", "$unwind", "$group", "$sort", "$limit", "$project"}, stageNames(p))
	assert.Equal(t, bson.D{{Key: "count", Value: 1}, {Key: "_id", Value: 1}}, stage(t, p, 3))
	assert.Equal(t, 2, p[4][0].Value)
}

func TestWeaponsMultipleAreasPipeline(t *testing.T) {
	p := WeaponsMultipleAreasPipeline()

	assert.Equal(t, []string{"$unwind", "$match", "$group", "$match", "$sort", "$project"}, stageNames(p))
	assert.Equal(t, bson.D{{Key: "weapon.description", Value: bson.D{
		{Key: "$exists", Value: true},
		{Key: "$nin", Value: bson.A{"", nil}},
	}}}, stage(t, p, 1))
	group := stage(t, p, 2)
	assert.Equal(t, bson.D{{Key: "$addToSet", Value: "$area.name"}}, group[1].Value)
}

func TestTopUpvotedReportsPipeline(t *testing.T) {
	p := TopUpvotedReportsPipeline("2023-05-01")

	assert.Equal(t, []string{"$match", "$group", "$sort", "$limit", "$project"}, stageNames(p))
	assert.Equal(t, bson.D{{Key: "upvote_date", Value: "2023-05-01"}}, stage(t, p, 0))
	assert.Equal(t, TopLimit, p[3][0].Value)
}

func TestOfficerLeaderboardPipelines(t *testing.T) {
	active := TopActiveOfficersPipeline()
	assert.Equal(t, []string{"$group", "$sort", "$limit", "$project"}, stageNames(active))
	assert.Equal(t, TopLimit, active[2][0].Value)

	areas := TopOfficersByUniqueAreasPipeline()
	assert.Equal(t, []string{"$group", "$addFields", "$sort", "$limit", "$project"}, stageNames(areas))
	group := stage(t, areas, 0)
	assert.Equal(t, bson.D{{Key: "$addToSet", Value: "$report.area.no"}}, group[2].Value)
}

func TestSharedEmailPipeline_GroupsByEmailOnly(t *testing.T) {
	p := SharedEmailPipeline()

	assert.Equal(t, []string{"$group", "$addFields", "$match", "$sort", "$project"}, stageNames(p))
	group := stage(t, p, 0)
	assert.Equal(t, "_id", group[0].Key)
	assert.Equal(t, "$officer.email", group[0].Value)
	assert.Equal(t, bson.D{{Key: "badge_count", Value: bson.D{{Key: "$gt", Value: 1}}}}, stage(t, p, 2))
}

func TestOfficerAreasPipeline(t *testing.T) {
	p := OfficerAreasPipeline("Jane Doe")

	assert.Equal(t, []string{"$match", "$group", "$sort", "$project"}, stageNames(p))
	assert.Equal(t, bson.D{{Key: "officer.name", Value: "Jane Doe"}}, stage(t, p, 0))
	assert.Equal(t, bson.D{{Key: "_id", Value: "$report.area"}}, stage(t, p, 1))
}
