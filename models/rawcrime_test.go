package models_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linesmerrill/la-crime-api/models"
)

func TestFlexString_UnmarshalJSON(t *testing.T) {
	var in struct {
		A *models.FlexString `json:"a"`
		B *models.FlexString `json:"b"`
		C *models.FlexString `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": "0784", "b": 510, "c": null}`), &in))

	assert.Equal(t, "0784", in.A.String())
	assert.Equal(t, "510", in.B.String())
	assert.Nil(t, in.C)
	assert.Equal(t, "", in.C.String())
}

func TestFlexString_UnmarshalJSONRejectsObjects(t *testing.T) {
	var f models.FlexString
	assert.Error(t, json.Unmarshal([]byte(`{"x": 1}`), &f))
}

func TestFlexFloat_UnmarshalJSON(t *testing.T) {
	var in struct {
		Lat models.FlexFloat `json:"lat"`
		Lon models.FlexFloat `json:"lon"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"lat": "34.0141", "lon": -118.2978}`), &in))

	assert.Equal(t, models.FlexFloat(34.0141), in.Lat)
	assert.Equal(t, models.FlexFloat(-118.2978), in.Lon)

	var f models.FlexFloat
	assert.Error(t, json.Unmarshal([]byte(`"north"`), &f))
}

func TestRawCrimeInput_IsEmpty(t *testing.T) {
	assert.True(t, models.RawCrimeInput{}.IsEmpty())
	assert.False(t, models.RawCrimeInput{Mocodes: models.StringPtr("")}.IsEmpty())
}

func TestRawCrimeInput_Merge(t *testing.T) {
	base := models.RawCrimeInput{
		DrNo:    models.FlexStringPtr("190326475"),
		VictSex: models.StringPtr("M"),
		Lat:     models.FlexFloatPtr(34.03),
	}
	update := models.RawCrimeInput{
		VictSex: models.StringPtr("F"),
		Status:  models.StringPtr("AA"),
	}

	merged := base.Merge(update)

	assert.Equal(t, "190326475", merged.DrNo.String())
	assert.Equal(t, "F", *merged.VictSex)
	assert.Equal(t, "AA", *merged.Status)
	assert.Equal(t, models.FlexFloat(34.03), *merged.Lat)
	assert.Equal(t, "M", *base.VictSex)
}

func TestUpvoteInput_ToUpvote(t *testing.T) {
	var in models.UpvoteInput
	require.NoError(t, json.Unmarshal([]byte(`{
		"officer": {"badge_no": 4521, "name": "Jane Doe", "email": "jane@lapd.gov"},
		"report": {"dr_no": 190326475, "area": {"no": "07", "name": "Wilshire", "report_dist_no": "0784"}},
		"upvote_date": "2024-05-01"
	}`), &in))

	u := in.ToUpvote()

	assert.Equal(t, models.Upvote{
		Officer:    models.UpvoteOfficer{BadgeNo: "4521", Name: "Jane Doe", Email: "jane@lapd.gov"},
		Report:     models.UpvoteReport{DrNo: "190326475", Area: models.Area{No: "07", Name: "Wilshire", ReportDistNo: "0784"}},
		UpvoteDate: "2024-05-01",
	}, u)
}

func TestUpvoteInput_NumericAreaCode(t *testing.T) {
	var in models.UpvoteInput
	require.NoError(t, json.Unmarshal([]byte(`{"report": {"dr_no": "190326475", "area": {"no": 7}}}`), &in))

	require.NotNil(t, in.Report.Area)
	assert.Equal(t, models.Area{No: "7"}, in.Report.Area.ToArea())
}

func TestUpvote_WithReferences(t *testing.T) {
	u := models.Upvote{
		Officer:    models.UpvoteOfficer{BadgeNo: "4521", Name: "Someone Else", Email: "x@example.com"},
		Report:     models.UpvoteReport{DrNo: "190326475", Area: models.Area{No: "99", Name: "Nowhere"}},
		UpvoteDate: "2024-05-01",
	}
	report := models.CrimeReport{DrNo: "190326475", Area: models.Area{No: "07", Name: "Wilshire", ReportDistNo: "0784"}}
	officer := models.PoliceOfficer{BadgeNo: "4521", Name: "Jane Doe", Email: "jane@lapd.gov"}

	got := u.WithReferences(report, officer)

	assert.Equal(t, models.UpvoteOfficer{BadgeNo: "4521", Name: "Jane Doe", Email: "jane@lapd.gov"}, got.Officer)
	assert.Equal(t, report.Area, got.Report.Area)
	assert.Equal(t, "2024-05-01", got.UpvoteDate)
}

func TestErrorKinds(t *testing.T) {
	assert.ErrorIs(t, models.NewInputError("start_date", "is required"), models.ErrInput)
	assert.EqualError(t, models.NewInputError("start_date", "is required"), "start_date is required")
	assert.ErrorIs(t, models.NewNotFoundError("Officer with badge number %s not found.", "1"), models.ErrNotFound)
	assert.ErrorIs(t, models.NewConflictError("dup"), models.ErrConflict)

	cause := errors.New("socket closed")
	storeErr := models.NewStoreError("find upvote", cause)
	assert.ErrorIs(t, storeErr, models.ErrStore)
	assert.ErrorIs(t, storeErr, cause)
	assert.EqualError(t, storeErr, "find upvote: socket closed")
}

func TestValidationError(t *testing.T) {
	assert.NoError(t, models.NewValidationError(nil))

	err := models.NewValidationError(map[string]string{"vict_sex": "Invalid victim sex.", "dr_no": "bad"})

	assert.ErrorIs(t, err, models.ErrValidation)
	assert.EqualError(t, err, "dr_no: bad; vict_sex: Invalid victim sex.")
}
