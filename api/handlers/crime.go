package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/linesmerrill/la-crime-api/api"
	"github.com/linesmerrill/la-crime-api/databases"
	"github.com/linesmerrill/la-crime-api/logging"
	"github.com/linesmerrill/la-crime-api/models"
	"github.com/linesmerrill/la-crime-api/normalizer"
	"github.com/linesmerrill/la-crime-api/validation"
)

// Crime exported for testing purposes
type Crime struct {
	DB databases.CrimeReportDatabase
}

// CreateCrimeHandler validates, normalizes and stores a flat crime record
func (c Crime) CreateCrimeHandler(w http.ResponseWriter, r *http.Request) {
	var raw models.RawCrimeInput
	if err := decodeBody(r, &raw); err != nil {
		errorStatus(w, r, err)
		return
	}
	if raw.IsEmpty() {
		errorStatus(w, r, models.NewInputError("", "Crime data is missing."))
		return
	}
	if err := models.NewValidationError(validation.ValidateFull(raw)); err != nil {
		errorStatus(w, r, err)
		return
	}
	report, err := normalizer.Normalize(raw)
	if err != nil {
		errorStatus(w, r, models.NewInputError("", err.Error()))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if _, err := c.DB.InsertOne(ctx, report); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			errorStatus(w, r, models.NewConflictError("Crime report with DR_NO %s already exists.", report.DrNo))
			return
		}
		errorStatus(w, r, models.NewStoreError("insert crime report", err))
		return
	}

	logging.FromContext(r.Context()).Infow("crime report added", "dr_no", report.DrNo)
	writeResponse(w, http.StatusCreated, MessageResponse{Message: "Crime report added successfully!"})
}

// CrimeByDrNoHandler returns a single crime report
func (c Crime) CrimeByDrNoHandler(w http.ResponseWriter, r *http.Request) {
	drNo := mux.Vars(r)["dr_no"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	report, err := c.find(ctx, drNo)
	if err != nil {
		errorStatus(w, r, err)
		return
	}
	writeResponse(w, http.StatusOK, report)
}

// UpdateCrimeHandler applies a partial update to a crime report, or replaces
// it entirely when called with replace=true. dr_no cannot change.
func (c Crime) UpdateCrimeHandler(w http.ResponseWriter, r *http.Request) {
	drNo := mux.Vars(r)["dr_no"]
	replace := r.URL.Query().Get("replace") == "true"

	var update models.RawCrimeInput
	if err := decodeBody(r, &update); err != nil {
		errorStatus(w, r, err)
		return
	}
	if update.IsEmpty() {
		errorStatus(w, r, models.NewInputError("", "No fields to update."))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	existing, err := c.find(ctx, drNo)
	if err != nil {
		errorStatus(w, r, err)
		return
	}

	filter := bson.M{"dr_no": drNo}
	var matched int64
	if replace {
		errs := validation.ValidateFull(update)
		if update.DrNo != nil && update.DrNo.String() != drNo && errs[validation.FieldDrNo] == "" {
			errs[validation.FieldDrNo] = validation.MsgImmutableDrNo
		}
		if err := models.NewValidationError(errs); err != nil {
			errorStatus(w, r, err)
			return
		}
		report, err := normalizer.Normalize(update)
		if err != nil {
			errorStatus(w, r, models.NewInputError("", err.Error()))
			return
		}
		matched, err = c.DB.ReplaceOne(ctx, filter, report)
		if err != nil {
			errorStatus(w, r, models.NewStoreError("replace crime report", err))
			return
		}
	} else {
		if err := models.NewValidationError(validation.ValidatePartial(update, *existing)); err != nil {
			errorStatus(w, r, err)
			return
		}
		report, err := normalizer.Normalize(normalizer.Denormalize(*existing).Merge(update))
		if err != nil {
			errorStatus(w, r, models.NewInputError("", err.Error()))
			return
		}
		matched, err = c.DB.UpdateOne(ctx, filter, bson.M{"$set": normalizer.UpdateFields(update, report)})
		if err != nil {
			errorStatus(w, r, models.NewStoreError("update crime report", err))
			return
		}
	}

	if matched == 0 {
		errorStatus(w, r, models.NewNotFoundError("Crime report with DR_NO %s not found.", drNo))
		return
	}
	logging.FromContext(r.Context()).Infow("crime report updated", "dr_no", drNo, "replace", replace)
	writeResponse(w, http.StatusOK, MessageResponse{Message: fmt.Sprintf("Crime report with DR_NO %s updated successfully!", drNo)})
}

func (c Crime) find(ctx context.Context, drNo string) (*models.CrimeReport, error) {
	report, err := c.DB.FindOne(ctx, bson.M{"dr_no": drNo})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.NewNotFoundError("Crime report with DR_NO %s not found.", drNo)
		}
		return nil, models.NewStoreError("find crime report", err)
	}
	return report, nil
}
