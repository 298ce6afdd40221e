package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/linesmerrill/la-crime-api/api/handlers"
	mocksdb "github.com/linesmerrill/la-crime-api/databases/mocks"
	"github.com/linesmerrill/la-crime-api/models"
	"github.com/linesmerrill/la-crime-api/validation"
)

const validCrime = `{
	"dr_no": "190326475",
	"date_rptd": "2020-03-01T00:00:00",
	"date_occ": "2020-03-01T00:00:00",
	"time_occ": "2130",
	"area": "07",
	"area_name": "Wilshire",
	"rpt_dist_no": "0784",
	"crm_cd": 510,
	"crm_cd_2": "998",
	"crm_cd_desc": "VEHICLE - STOLEN",
	"vict_age": 0,
	"vict_sex": "M",
	"vict_descent": "O",
	"premis_cd": "101",
	"premis_desc": "STREET",
	"location": "1900 S  LONGWOOD AV",
	"lat": 34.0375,
	"lon": -118.3506,
	"status": "AA",
	"status_desc": "Adult Arrest"
}`

var duplicateKeyErr = mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key error"}}}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) models.MessageError {
	t.Helper()
	var resp models.ErrorMessageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Response
}

func decodeMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp handlers.MessageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Message
}

func storedReport() *models.CrimeReport {
	desc := "VEHICLE - STOLEN"
	age := 31
	sex := "M"
	return &models.CrimeReport{
		DrNo:         "190326475",
		DateReported: "2020-03-01T00:00:00",
		DateOccurred: "2020-03-01T00:00:00",
		TimeOccurred: "2130",
		Area:         models.Area{No: "07", Name: "Wilshire", ReportDistNo: "0784"},
		Crime:        []models.CrimeCode{{Severity: 1, Code: "510", Description: &desc}},
		Victim:       models.Victim{Age: &age, Sex: &sex},
		Location: models.Location{
			Premis:      models.Premis{Code: "101", Description: "STREET"},
			Location:    "1900 S  LONGWOOD AV",
			Coordinates: models.Coordinates{Latitude: 34.0375, Longitude: -118.3506},
		},
		Status: models.Status{Code: "AA", Description: "Adult Arrest"},
	}
}

func TestCrime_CreateCrimeHandler(t *testing.T) {
	db := &mocksdb.CrimeReportDatabase{}
	db.On("InsertOne", mock.Anything, mock.MatchedBy(func(r models.CrimeReport) bool {
		return r.DrNo == "190326475" &&
			len(r.Crime) == 2 &&
			r.Crime[0].Code == "510" && r.Crime[0].Description != nil &&
			r.Crime[1].Severity == 2 && r.Crime[1].Description == nil &&
			r.Area.Name == "Wilshire" &&
			r.Weapon.IsEmpty() &&
			*r.Victim.Age == 0
	})).Return(nil, nil)

	req := httptest.NewRequest("POST", "/api/v1/crimes", bytes.NewBufferString(validCrime))
	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.Crime{DB: db}.CreateCrimeHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "Crime report added successfully!", decodeMessage(t, rr))
	db.AssertExpectations(t)
}

func TestCrime_CreateCrimeHandlerValidationFailed(t *testing.T) {
	db := &mocksdb.CrimeReportDatabase{}

	body := `{"dr_no": "12345", "vict_age": "120", "vict_sex": "Q", "lat": 0, "lon": -118.35}`
	req := httptest.NewRequest("POST", "/api/v1/crimes", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.Crime{DB: db}.CreateCrimeHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	resp := decodeError(t, rr)
	assert.Equal(t, "validation failed", resp.Message)
	assert.Equal(t, map[string]string{
		validation.FieldDrNo:        validation.MsgInvalidDrNo,
		validation.FieldCrmCd:       validation.MsgMissingCrmCd,
		validation.FieldVictAge:     validation.MsgInvalidVictAge,
		validation.FieldVictSex:     validation.MsgInvalidVictSex,
		validation.FieldCoordinates: validation.MsgInvalidCoordinates,
	}, resp.Fields)
	db.AssertNotCalled(t, "InsertOne", mock.Anything, mock.Anything)
}

func TestCrime_CreateCrimeHandlerEmptyBody(t *testing.T) {
	db := &mocksdb.CrimeReportDatabase{}

	req := httptest.NewRequest("POST", "/api/v1/crimes", bytes.NewBufferString(`{}`))
	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.Crime{DB: db}.CreateCrimeHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Crime data is missing.", decodeError(t, rr).Error)
}

func TestCrime_CreateCrimeHandlerMalformedJSON(t *testing.T) {
	db := &mocksdb.CrimeReportDatabase{}

	req := httptest.NewRequest("POST", "/api/v1/crimes", bytes.NewBufferString(`{"dr_no": `))
	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.Crime{DB: db}.CreateCrimeHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "invalid input", decodeError(t, rr).Message)
}

func TestCrime_CreateCrimeHandlerDuplicate(t *testing.T) {
	db := &mocksdb.CrimeReportDatabase{}
	db.On("InsertOne", mock.Anything, mock.Anything).Return(nil, duplicateKeyErr)

	req := httptest.NewRequest("POST", "/api/v1/crimes", bytes.NewBufferString(validCrime))
	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.Crime{DB: db}.CreateCrimeHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "Crime report with DR_NO 190326475 already exists.", decodeError(t, rr).Error)
}

func TestCrime_CreateCrimeHandlerStoreFailure(t *testing.T) {
	db := &mocksdb.CrimeReportDatabase{}
	db.On("InsertOne", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset by peer"))

	req := httptest.NewRequest("POST", "/api/v1/crimes", bytes.NewBufferString(validCrime))
	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.Crime{DB: db}.CreateCrimeHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "connection reset")
}

func TestCrime_CrimeByDrNoHandler(t *testing.T) {
	db := &mocksdb.CrimeReportDatabase{}
	db.On("FindOne", mock.Anything, bson.M{"dr_no": "190326475"}).Return(storedReport(), nil)

	req := httptest.NewRequest("GET", "/api/v1/crimes/190326475", nil)
	req = mux.SetURLVars(req, map[string]string{"dr_no": "190326475"})
	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.Crime{DB: db}.CrimeByDrNoHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var got models.CrimeReport
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "Wilshire", got.Area.Name)
}

func TestCrime_CrimeByDrNoHandlerNotFound(t *testing.T) {
	db := &mocksdb.CrimeReportDatabase{}
	db.On("FindOne", mock.Anything, mock.Anything).Return(nil, mongo.ErrNoDocuments)

	req := httptest.NewRequest("GET", "/api/v1/crimes/999999999", nil)
	req = mux.SetURLVars(req, map[string]string{"dr_no": "999999999"})
	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.Crime{DB: db}.CrimeByDrNoHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Crime report with DR_NO 999999999 not found.", decodeError(t, rr).Error)
}

func TestCrime_CrimeByDrNoHandlerDeadlineExceeded(t *testing.T) {
	db := &mocksdb.CrimeReportDatabase{}
	db.On("FindOne", mock.Anything, mock.Anything).Return(nil, context.DeadlineExceeded)

	req := httptest.NewRequest("GET", "/api/v1/crimes/190326475", nil)
	req = mux.SetURLVars(req, map[string]string{"dr_no": "190326475"})
	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.Crime{DB: db}.CrimeByDrNoHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusRequestTimeout, rr.Code)
}

func TestCrime_UpdateCrimeHandlerPartial(t *testing.T) {
	db := &mocksdb.CrimeReportDatabase{}
	filter := bson.M{"dr_no": "190326475"}
	db.On("FindOne", mock.Anything, filter).Return(storedReport(), nil)
	db.On("UpdateOne", mock.Anything, filter, mock.MatchedBy(func(u bson.M) bool {
		set, ok := u["$set"].(map[string]interface{})
		if !ok || len(set) != 1 {
			return false
		}
		victim, ok := set["victim"].(models.Victim)
		return ok && *victim.Age == 45 && *victim.Sex == "M"
	})).Return(int64(1), nil)

	req := httptest.NewRequest("PUT", "/api/v1/crimes/190326475", bytes.NewBufferString(`{"vict_age": "45"}`))
	req = mux.SetURLVars(req, map[string]string{"dr_no": "190326475"})
	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.Crime{DB: db}.UpdateCrimeHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Crime report with DR_NO 190326475 updated successfully!", decodeMessage(t, rr))
	db.AssertExpectations(t)
}

func TestCrime_UpdateCrimeHandlerPartialLatitudeOnly(t *testing.T) {
	db := &mocksdb.CrimeReportDatabase{}
	db.On("FindOne", mock.Anything, mock.Anything).Return(storedReport(), nil)
	db.On("UpdateOne", mock.Anything, mock.Anything, mock.MatchedBy(func(u bson.M) bool {
		set := u["$set"].(map[string]interface{})
		loc, ok := set["location"].(models.Location)
		return ok && loc.Coordinates.Latitude == 34.1 && loc.Coordinates.Longitude == -118.3506
	})).Return(int64(1), nil)

	req := httptest.NewRequest("PUT", "/api/v1/crimes/190326475", bytes.NewBufferString(`{"lat": 34.1}`))
	req = mux.SetURLVars(req, map[string]string{"dr_no": "190326475"})
	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.Crime{DB: db}.UpdateCrimeHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	db.AssertExpectations(t)
}

func TestCrime_UpdateCrimeHandlerImmutableDrNo(t *testing.T) {
	db := &mocksdb.CrimeReportDatabase{}
	db.On("FindOne", mock.Anything, mock.Anything).Return(storedReport(), nil)

	req := httptest.NewRequest("PUT", "/api/v1/crimes/190326475", bytes.NewBufferString(`{"dr_no": "190326476"}`))
	req = mux.SetURLVars(req, map[string]string{"dr_no": "190326475"})
	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.Crime{DB: db}.UpdateCrimeHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, validation.MsgImmutableDrNo, decodeError(t, rr).Fields[validation.FieldDrNo])
	db.AssertNotCalled(t, "UpdateOne", mock.Anything, mock.Anything, mock.Anything)
}

func TestCrime_UpdateCrimeHandlerBlankCrimeCode(t *testing.T) {
	db := &mocksdb.CrimeReportDatabase{}
	db.On("FindOne", mock.Anything, mock.Anything).Return(storedReport(), nil)

	req := httptest.NewRequest("PUT", "/api/v1/crimes/190326475", bytes.NewBufferString(`{"crm_cd": ""}`))
	req = mux.SetURLVars(req, map[string]string{"dr_no": "190326475"})
	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.Crime{DB: db}.UpdateCrimeHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, validation.MsgMissingCrmCd, decodeError(t, rr).Fields[validation.FieldCrmCd])
	db.AssertNotCalled(t, "UpdateOne", mock.Anything, mock.Anything, mock.Anything)
}

func TestCrime_UpdateCrimeHandlerReplace(t *testing.T) {
	db := &mocksdb.CrimeReportDatabase{}
	filter := bson.M{"dr_no": "190326475"}
	db.On("FindOne", mock.Anything, filter).Return(storedReport(), nil)
	db.On("ReplaceOne", mock.Anything, filter, mock.MatchedBy(func(r models.CrimeReport) bool {
		return r.DrNo == "190326475" && len(r.Crime) == 2
	})).Return(int64(1), nil)

	req := httptest.NewRequest("PUT", "/api/v1/crimes/190326475?replace=true", bytes.NewBufferString(validCrime))
	req = mux.SetURLVars(req, map[string]string{"dr_no": "190326475"})
	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.Crime{DB: db}.UpdateCrimeHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	db.AssertExpectations(t)
}

func TestCrime_UpdateCrimeHandlerReplaceDifferentDrNo(t *testing.T) {
	db := &mocksdb.CrimeReportDatabase{}
	db.On("FindOne", mock.Anything, mock.Anything).Return(storedReport(), nil)

	req := httptest.NewRequest("PUT", "/api/v1/crimes/111111111?replace=true", bytes.NewBufferString(validCrime))
	req = mux.SetURLVars(req, map[string]string{"dr_no": "111111111"})
	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.Crime{DB: db}.UpdateCrimeHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, validation.MsgImmutableDrNo, decodeError(t, rr).Fields[validation.FieldDrNo])
	db.AssertNotCalled(t, "ReplaceOne", mock.Anything, mock.Anything, mock.Anything)
}

func TestCrime_UpdateCrimeHandlerNotFound(t *testing.T) {
	db := &mocksdb.CrimeReportDatabase{}
	db.On("FindOne", mock.Anything, mock.Anything).Return(nil, mongo.ErrNoDocuments)

	req := httptest.NewRequest("PUT", "/api/v1/crimes/999999999", bytes.NewBufferString(`{"vict_sex": "F"}`))
	req = mux.SetURLVars(req, map[string]string{"dr_no": "999999999"})
	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.Crime{DB: db}.UpdateCrimeHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCrime_UpdateCrimeHandlerDeletedMeanwhile(t *testing.T) {
	db := &mocksdb.CrimeReportDatabase{}
	db.On("FindOne", mock.Anything, mock.Anything).Return(storedReport(), nil)
	db.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), nil)

	req := httptest.NewRequest("PUT", "/api/v1/crimes/190326475", bytes.NewBufferString(`{"vict_sex": "F"}`))
	req = mux.SetURLVars(req, map[string]string{"dr_no": "190326475"})
	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.Crime{DB: db}.UpdateCrimeHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCrime_UpdateCrimeHandlerNoFields(t *testing.T) {
	db := &mocksdb.CrimeReportDatabase{}

	req := httptest.NewRequest("PUT", "/api/v1/crimes/190326475", bytes.NewBufferString(`{}`))
	req = mux.SetURLVars(req, map[string]string{"dr_no": "190326475"})
	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.Crime{DB: db}.UpdateCrimeHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "No fields to update.", decodeError(t, rr).Error)
	db.AssertNotCalled(t, "FindOne", mock.Anything, mock.Anything)
}
