package handlers

import (
	"context"
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/linesmerrill/la-crime-api/api"
	"github.com/linesmerrill/la-crime-api/databases"
	"github.com/linesmerrill/la-crime-api/logging"
	"github.com/linesmerrill/la-crime-api/models"
	"github.com/linesmerrill/la-crime-api/validation"
)

// Upvote exported for testing purposes
type Upvote struct {
	DB        databases.UpvoteDatabase
	CrimeDB   databases.CrimeReportDatabase
	OfficerDB databases.OfficerDatabase
}

// CreateUpvoteHandler records an officer's upvote of a crime report. The
// report and the officer must exist and an officer can upvote a report once.
func (u Upvote) CreateUpvoteHandler(w http.ResponseWriter, r *http.Request) {
	var in models.UpvoteInput
	if err := decodeBody(r, &in); err != nil {
		errorStatus(w, r, err)
		return
	}
	if err := validation.CheckUpvote(&in); err != nil {
		errorStatus(w, r, err)
		return
	}
	upvote := in.ToUpvote()

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	report, officer, err := u.findReferences(ctx, upvote)
	if err != nil {
		errorStatus(w, r, err)
		return
	}
	upvote = upvote.WithReferences(*report, *officer)

	filter := bson.M{"officer.badge_no": upvote.Officer.BadgeNo, "report.dr_no": upvote.Report.DrNo}
	exists, err := u.DB.Exists(ctx, filter)
	if err != nil {
		errorStatus(w, r, models.NewStoreError("find upvote", err))
		return
	}
	if exists {
		errorStatus(w, r, duplicateUpvote(upvote))
		return
	}

	if _, err := u.DB.InsertOne(ctx, upvote); err != nil {
		// a concurrent request for the same pair won the race
		if mongo.IsDuplicateKeyError(err) {
			errorStatus(w, r, duplicateUpvote(upvote))
			return
		}
		errorStatus(w, r, models.NewStoreError("insert upvote", err))
		return
	}

	logging.FromContext(r.Context()).Infow("upvote added",
		"badge_no", upvote.Officer.BadgeNo,
		"dr_no", upvote.Report.DrNo)
	writeResponse(w, http.StatusCreated, MessageResponse{Message: "Upvote added successfully!"})
}

// findReferences loads the upvoted report and the upvoting officer
func (u Upvote) findReferences(ctx context.Context, upvote models.Upvote) (*models.CrimeReport, *models.PoliceOfficer, error) {
	report, err := u.CrimeDB.FindOne(ctx, bson.M{"dr_no": upvote.Report.DrNo})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil, models.NewNotFoundError("Crime report with DR_NO %s not found.", upvote.Report.DrNo)
		}
		return nil, nil, models.NewStoreError("find crime report", err)
	}
	officer, err := u.OfficerDB.FindOne(ctx, bson.M{"badge_no": upvote.Officer.BadgeNo})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil, models.NewNotFoundError("Officer with badge number %s not found.", upvote.Officer.BadgeNo)
		}
		return nil, nil, models.NewStoreError("find officer", err)
	}
	return report, officer, nil
}

func duplicateUpvote(upvote models.Upvote) error {
	return models.NewConflictError("Officer %s has already upvoted crime report %s.",
		upvote.Officer.BadgeNo, upvote.Report.DrNo)
}
