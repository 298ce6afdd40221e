// Package docs LA Crime API.
//
// Documentation of LA Crime API.
//
//     Schemes: https
//     BasePath: /
//     Version: 1.0.0
//
//     Consumes:
//     - application/json
//
//     Produces:
//     - application/json
//
//     Security:
//     - basic
//
//    SecurityDefinitions:
//    basic:
//      type: basic
//
// swagger:meta
package docs

import (
	"github.com/linesmerrill/la-crime-api/api/handlers"
	"github.com/linesmerrill/la-crime-api/models"
)

// swagger:route GET /health health healthEndpointID
// Lists the healthchex of the web service api.
// responses:
//   200: healthResponse

// Shows the current health of the api. true means it is alive, false means it is not.
// swagger:response healthResponse
type healthResponseWrapper struct {
	// in:body
	Body models.HealthCheckResponse
}

// swagger:route POST /api/v1/crimes crimes createCrime
// Adds a flat LA open data crime record.
// responses:
//   201: messageResponse
//   400: errorResponse
//   409: errorResponse

// swagger:route PUT /api/v1/crimes/{dr_no} crimes updateCrime
// Updates the given fields of a crime report, or replaces it with replace=true.
// responses:
//   200: messageResponse
//   400: errorResponse
//   404: errorResponse

// swagger:parameters createCrime updateCrime
type crimeParamsWrapper struct {
	// in:body
	Body models.RawCrimeInput
}

// swagger:route GET /api/v1/crimes/{dr_no} crimes crimeByDrNo
// Gets a single crime report by its DR_NO.
// responses:
//   200: crimeReportResponse
//   404: errorResponse

// A normalized crime report
// swagger:response crimeReportResponse
type crimeReportResponseWrapper struct {
	// in:body
	Body models.CrimeReport
}

// swagger:route POST /api/v1/upvotes upvotes createUpvote
// Records an officer upvote of a crime report.
// responses:
//   201: messageResponse
//   400: errorResponse
//   404: errorResponse
//   409: errorResponse

// swagger:parameters createUpvote
type upvoteParamsWrapper struct {
	// in:body
	Body models.UpvoteInput
}

// swagger:route GET /api/v1/analytics/reports-per-crime-code analytics reportsPerCrimeCode
// Number of crime entries per crime code between start_date and end_date.
// responses:
//   200: crimeCodeCountResponse
//   400: errorResponse

// swagger:route GET /api/v1/analytics/least-common-crimes analytics leastCommonCrimes
// The two least common crime codes between start_date and end_date.
// responses:
//   200: crimeCodeCountResponse
//   400: errorResponse

// swagger:response crimeCodeCountResponse
type crimeCodeCountResponseWrapper struct {
	// in:body
	Body []models.CrimeCodeCount
}

// swagger:route GET /api/v1/analytics/reports-per-day analytics reportsPerDay
// Daily number of reports for crime_code between start_date and end_date.
// responses:
//   200: dayCountResponse
//   400: errorResponse

// swagger:response dayCountResponse
type dayCountResponseWrapper struct {
	// in:body
	Body []models.DayCount
}

// swagger:route GET /api/v1/analytics/top-crimes-per-area analytics topCrimesPerArea
// The three most common crimes of every area on specific_date.
// responses:
//   200: areaTopCrimesResponse
//   400: errorResponse

// swagger:response areaTopCrimesResponse
type areaTopCrimesResponseWrapper struct {
	// in:body
	Body []models.AreaTopCrimes
}

// swagger:route GET /api/v1/analytics/weapons-multiple-areas analytics weaponsMultipleAreas
// Weapons used for the same crime code in more than one area.
// responses:
//   200: weaponAreasResponse

// swagger:response weaponAreasResponse
type weaponAreasResponseWrapper struct {
	// in:body
	Body []models.WeaponAreas
}

// swagger:route GET /api/v1/analytics/top-upvoted-reports analytics topUpvotedReports
// The fifty most upvoted reports on specific_date.
// responses:
//   200: reportUpvotesResponse
//   400: errorResponse

// swagger:response reportUpvotesResponse
type reportUpvotesResponseWrapper struct {
	// in:body
	Body []models.ReportUpvotes
}

// swagger:route GET /api/v1/analytics/top-active-officers analytics topActiveOfficers
// The fifty officers who cast the most upvotes.
// responses:
//   200: officerUpvotesResponse

// swagger:response officerUpvotesResponse
type officerUpvotesResponseWrapper struct {
	// in:body
	Body []models.OfficerUpvotes
}

// swagger:route GET /api/v1/analytics/top-officers-unique-areas analytics topOfficersUniqueAreas
// The fifty officers whose upvotes cover the most areas.
// responses:
//   200: officerAreaCoverageResponse

// swagger:response officerAreaCoverageResponse
type officerAreaCoverageResponseWrapper struct {
	// in:body
	Body []models.OfficerAreaCoverage
}

// swagger:route GET /api/v1/analytics/shared-officer-emails analytics sharedOfficerEmails
// Officer emails used by more than one badge number.
// responses:
//   200: sharedEmailResponse

// swagger:response sharedEmailResponse
type sharedEmailResponseWrapper struct {
	// in:body
	Body []models.SharedEmail
}

// swagger:route GET /api/v1/analytics/officer-areas analytics officerAreas
// Areas of the reports upvoted by the officer called name.
// responses:
//   200: officerAreaResponse
//   400: errorResponse

// swagger:response officerAreaResponse
type officerAreaResponseWrapper struct {
	// in:body
	Body []models.OfficerArea
}

// swagger:response messageResponse
type messageResponseWrapper struct {
	// in:body
	Body handlers.MessageResponse
}

// swagger:response errorResponse
type errorResponseWrapper struct {
	// in:body
	Body models.ErrorMessageResponse
}
