package handlers

import (
	"net/http"

	"github.com/linesmerrill/la-crime-api/analytics"
	"github.com/linesmerrill/la-crime-api/api"
)

// Analytics serves the fixed analytics queries
type Analytics struct {
	Engine *analytics.Engine
}

func respond[T any](w http.ResponseWriter, r *http.Request, rows []T, err error) {
	if err != nil {
		errorStatus(w, r, err)
		return
	}
	writeResponse(w, http.StatusOK, rows)
}

// ReportsPerCrimeCodeHandler returns the number of crime entries per crime code between start_date and end_date
func (a Analytics) ReportsPerCrimeCodeHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	rows, err := a.Engine.ReportsPerCrimeCode(ctx, q.Get("start_date"), q.Get("end_date"))
	respond(w, r, rows, err)
}

// ReportsPerDayHandler returns the daily number of reports for crime_code between start_date and end_date
func (a Analytics) ReportsPerDayHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	rows, err := a.Engine.ReportsPerDayForCrimeCode(ctx, q.Get("crime_code"), q.Get("start_date"), q.Get("end_date"))
	respond(w, r, rows, err)
}

// TopCrimesPerAreaHandler returns the three most common crimes per area on specific_date
func (a Analytics) TopCrimesPerAreaHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	rows, err := a.Engine.TopThreeCrimesPerAreaForDay(ctx, r.URL.Query().Get("specific_date"))
	respond(w, r, rows, err)
}

// LeastCommonCrimesHandler returns the two least common crimes between start_date and end_date
func (a Analytics) LeastCommonCrimesHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	rows, err := a.Engine.TwoLeastCommonCrimes(ctx, q.Get("start_date"), q.Get("end_date"))
	respond(w, r, rows, err)
}

// WeaponsMultipleAreasHandler returns the weapons used for the same crime in more than one area
func (a Analytics) WeaponsMultipleAreasHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	rows, err := a.Engine.WeaponsUsedInMultipleAreas(ctx)
	respond(w, r, rows, err)
}

// TopUpvotedReportsHandler returns the fifty most upvoted reports on specific_date
func (a Analytics) TopUpvotedReportsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	rows, err := a.Engine.TopUpvotedReportsForDay(ctx, r.URL.Query().Get("specific_date"))
	respond(w, r, rows, err)
}

// TopActiveOfficersHandler returns the fifty officers who cast the most upvotes
func (a Analytics) TopActiveOfficersHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	rows, err := a.Engine.TopActiveOfficers(ctx)
	respond(w, r, rows, err)
}

// TopOfficersUniqueAreasHandler returns the fifty officers who upvoted reports in the most areas
func (a Analytics) TopOfficersUniqueAreasHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	rows, err := a.Engine.TopOfficersByUniqueAreas(ctx)
	respond(w, r, rows, err)
}

// SharedOfficerEmailsHandler returns the officer emails used by more than one badge number
func (a Analytics) SharedOfficerEmailsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	rows, err := a.Engine.OfficersSharingEmail(ctx)
	respond(w, r, rows, err)
}

// OfficerAreasHandler returns the areas of the reports upvoted by the officer called name
func (a Analytics) OfficerAreasHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	rows, err := a.Engine.AreasForOfficerName(ctx, r.URL.Query().Get("name"))
	respond(w, r, rows, err)
}
