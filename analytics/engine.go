package analytics

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/linesmerrill/la-crime-api/databases"
	"github.com/linesmerrill/la-crime-api/logging"
	"github.com/linesmerrill/la-crime-api/models"
)

// Query names, used as metric labels and in store errors
const (
	QueryReportsPerCrimeCode      = "reports_per_crime_code"
	QueryReportsPerDay            = "reports_per_day"
	QueryTopCrimesPerArea         = "top_crimes_per_area"
	QueryLeastCommonCrimes        = "least_common_crimes"
	QueryWeaponsMultipleAreas     = "weapons_multiple_areas"
	QueryTopUpvotedReports        = "top_upvoted_reports"
	QueryTopActiveOfficers        = "top_active_officers"
	QueryTopOfficersByUniqueAreas = "top_officers_unique_areas"
	QuerySharedOfficerEmails      = "shared_officer_emails"
	QueryOfficerAreas             = "officer_areas"
)

type aggregator interface {
	Aggregate(ctx context.Context, pipeline interface{}, results interface{}) error
}

// Engine runs the fixed analytics aggregations over crime reports and upvotes.
// Every method validates its parameters before touching the store.
type Engine struct {
	crimes  databases.CrimeReportDatabase
	upvotes databases.UpvoteDatabase
}

// NewEngine creates an Engine reading from the given collections
func NewEngine(crimes databases.CrimeReportDatabase, upvotes databases.UpvoteDatabase) *Engine {
	return &Engine{crimes: crimes, upvotes: upvotes}
}

func run[T any](ctx context.Context, name string, db aggregator, pipeline mongo.Pipeline) ([]T, error) {
	start := time.Now()
	var out []T
	err := db.Aggregate(ctx, pipeline, &out)
	observe(name, start, err)
	if err != nil {
		logging.FromContext(ctx).Errorw("analytics query failed", "query", name, "error", err)
		return nil, models.NewStoreError(name, err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// ReportsPerCrimeCode counts crime entries per crime code for reports that occurred in [start, end]
func (e *Engine) ReportsPerCrimeCode(ctx context.Context, start, end string) ([]models.CrimeCodeCount, error) {
	r, err := ParseRange(start, end)
	if err != nil {
		return nil, err
	}
	return run[models.CrimeCodeCount](ctx, QueryReportsPerCrimeCode, e.crimes, ReportsPerCrimeCodePipeline(r))
}

// ReportsPerDayForCrimeCode counts entries of code per day in [start, end], oldest day first
func (e *Engine) ReportsPerDayForCrimeCode(ctx context.Context, code, start, end string) ([]models.DayCount, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, models.NewInputError("", "Please provide crime_code, start_date and end_date")
	}
	r, err := ParseRange(start, end)
	if err != nil {
		return nil, err
	}
	return run[models.DayCount](ctx, QueryReportsPerDay, e.crimes, ReportsPerDayPipeline(code, r))
}

// TopThreeCrimesPerAreaForDay lists the three most common crime codes per area on date
func (e *Engine) TopThreeCrimesPerAreaForDay(ctx context.Context, date string) ([]models.AreaTopCrimes, error) {
	day, err := DayWindow("specific_date", date)
	if err != nil {
		return nil, err
	}
	rows, err := run[models.AreaTopCrimes](ctx, QueryTopCrimesPerArea, e.crimes, TopCrimesPerAreaPipeline(day))
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if rows[i].TopCrimes == nil {
			rows[i].TopCrimes = []models.AreaCrimeCount{}
		}
	}
	return rows, nil
}

// TwoLeastCommonCrimes returns the two rarest crime codes in [start, end]
func (e *Engine) TwoLeastCommonCrimes(ctx context.Context, start, end string) ([]models.CrimeCodeCount, error) {
	r, err := ParseRange(start, end)
	if err != nil {
		return nil, err
	}
	return run[models.CrimeCodeCount](ctx, QueryLeastCommonCrimes, e.crimes, LeastCommonCrimesPipeline(r))
}

// WeaponsUsedInMultipleAreas finds weapons used for the same crime code in more than one area
func (e *Engine) WeaponsUsedInMultipleAreas(ctx context.Context) ([]models.WeaponAreas, error) {
	rows, err := run[models.WeaponAreas](ctx, QueryWeaponsMultipleAreas, e.crimes, WeaponsMultipleAreasPipeline())
	if err != nil {
		return nil, err
	}
	for i := range rows {
		sort.Strings(rows[i].Areas)
	}
	return rows, nil
}

// TopUpvotedReportsForDay ranks the fifty most upvoted reports on date (YYYY-MM-DD)
func (e *Engine) TopUpvotedReportsForDay(ctx context.Context, date string) ([]models.ReportUpvotes, error) {
	day, err := ParseDay("specific_date", date)
	if err != nil {
		return nil, err
	}
	return run[models.ReportUpvotes](ctx, QueryTopUpvotedReports, e.upvotes, TopUpvotedReportsPipeline(day))
}

// TopActiveOfficers ranks the fifty officers who cast the most upvotes
func (e *Engine) TopActiveOfficers(ctx context.Context) ([]models.OfficerUpvotes, error) {
	return run[models.OfficerUpvotes](ctx, QueryTopActiveOfficers, e.upvotes, TopActiveOfficersPipeline())
}

// TopOfficersByUniqueAreas ranks the fifty officers whose upvotes cover the most areas
func (e *Engine) TopOfficersByUniqueAreas(ctx context.Context) ([]models.OfficerAreaCoverage, error) {
	return run[models.OfficerAreaCoverage](ctx, QueryTopOfficersByUniqueAreas, e.upvotes, TopOfficersByUniqueAreasPipeline())
}

// OfficersSharingEmail lists emails used by more than one badge number, with the reports they upvoted
func (e *Engine) OfficersSharingEmail(ctx context.Context) ([]models.SharedEmail, error) {
	rows, err := run[models.SharedEmail](ctx, QuerySharedOfficerEmails, e.upvotes, SharedEmailPipeline())
	if err != nil {
		return nil, err
	}
	for i := range rows {
		sort.Strings(rows[i].UniqueBadgeNumbers)
		sort.Strings(rows[i].ReportDrNos)
	}
	return rows, nil
}

// AreasForOfficerName lists the distinct areas of the reports upvoted by officers named name
func (e *Engine) AreasForOfficerName(ctx context.Context, name string) ([]models.OfficerArea, error) {
	if strings.TrimSpace(name) == "" {
		return nil, models.NewInputError("name", "is required")
	}
	return run[models.OfficerArea](ctx, QueryOfficerAreas, e.upvotes, OfficerAreasPipeline(name))
}
