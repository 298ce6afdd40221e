package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/linesmerrill/la-crime-api/analytics"
	"github.com/linesmerrill/la-crime-api/api"
	"github.com/linesmerrill/la-crime-api/api/scheduler"
	"github.com/linesmerrill/la-crime-api/config"
	"github.com/linesmerrill/la-crime-api/databases"
)

// App stores the router and db connection, so it can be reused
type App struct {
	Router    *mux.Router
	Config    config.Config
	Scheduler *scheduler.Scheduler
	client    databases.ClientHelper
	dbHelper  databases.DatabaseHelper
}

// NewApp creates an App around an existing database connection
func NewApp(conf config.Config, db databases.DatabaseHelper) *App {
	a := &App{Config: conf, dbHelper: db}
	a.initializeRoutes()
	return a
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	guard := api.NewGuard(context.Background(), a.Config.Auth, api.DefaultTokenTTL)

	crimeDB := databases.NewCrimeReportDatabase(a.dbHelper)
	upvoteDB := databases.NewUpvoteDatabase(a.dbHelper)
	engine := analytics.NewEngine(crimeDB, upvoteDB)

	c := Crime{DB: crimeDB}
	u := Upvote{DB: upvoteDB, CrimeDB: crimeDB, OfficerDB: databases.NewOfficerDatabase(a.dbHelper)}
	an := Analytics{Engine: engine}

	// health and metrics
	r := api.New()

	apiCreate := r.PathPrefix("/api/v1").Subrouter()
	apiCreate.Use(api.MetricsMiddleware)
	apiCreate.Use(api.TimeoutMiddleware(time.Duration(a.Config.RequestTimeoutSec) * time.Second))

	apiCreate.Handle("/auth/token", guard.Middleware(http.HandlerFunc(guard.CreateToken))).Methods("POST")
	apiCreate.Handle("/auth/logout", guard.Middleware(http.HandlerFunc(guard.RevokeToken))).Methods("DELETE")

	apiCreate.Handle("/crimes", guard.Middleware(http.HandlerFunc(c.CreateCrimeHandler))).Methods("POST")
	apiCreate.Handle("/crimes/{dr_no}", guard.Middleware(http.HandlerFunc(c.UpdateCrimeHandler))).Methods("PUT")
	apiCreate.Handle("/crimes/{dr_no}", http.HandlerFunc(c.CrimeByDrNoHandler)).Methods("GET")
	apiCreate.Handle("/upvotes", guard.Middleware(http.HandlerFunc(u.CreateUpvoteHandler))).Methods("POST")

	apiCreate.Handle("/analytics/reports-per-crime-code", http.HandlerFunc(an.ReportsPerCrimeCodeHandler)).Methods("GET")
	apiCreate.Handle("/analytics/reports-per-day", http.HandlerFunc(an.ReportsPerDayHandler)).Methods("GET")
	apiCreate.Handle("/analytics/top-crimes-per-area", http.HandlerFunc(an.TopCrimesPerAreaHandler)).Methods("GET")
	apiCreate.Handle("/analytics/least-common-crimes", http.HandlerFunc(an.LeastCommonCrimesHandler)).Methods("GET")
	apiCreate.Handle("/analytics/weapons-multiple-areas", http.HandlerFunc(an.WeaponsMultipleAreasHandler)).Methods("GET")
	apiCreate.Handle("/analytics/top-upvoted-reports", http.HandlerFunc(an.TopUpvotedReportsHandler)).Methods("GET")
	apiCreate.Handle("/analytics/top-active-officers", http.HandlerFunc(an.TopActiveOfficersHandler)).Methods("GET")
	apiCreate.Handle("/analytics/top-officers-unique-areas", http.HandlerFunc(an.TopOfficersUniqueAreasHandler)).Methods("GET")
	apiCreate.Handle("/analytics/shared-officer-emails", http.HandlerFunc(an.SharedOfficerEmailsHandler)).Methods("GET")
	apiCreate.Handle("/analytics/officer-areas", http.HandlerFunc(an.OfficerAreasHandler)).Methods("GET")

	a.Scheduler = scheduler.NewScheduler(engine, a.Config.DigestSchedule)

	return r
}

// Initialize is invoked by main to connect with the database, create the indexes and the router
func (a *App) Initialize() error {
	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().Errorw("failed to create new client", "error", err)
		return err
	}
	a.client = client

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = client.Connect(ctx); err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().Errorw("failed to connect to database", "error", err)
		return err
	}
	if err = client.Ping(ctx); err != nil {
		zap.S().Errorw("failed to ping database", "error", err)
		return err
	}
	a.dbHelper = databases.NewDatabase(&a.Config, client)
	zap.S().Infow("la-crime-api has connected to the database", "database", a.Config.DatabaseName)

	if failed := databases.EnsureIndexes(ctx, a.dbHelper); failed > 0 {
		zap.S().Warnw("some indexes could not be created", "collections", failed)
	}
	api.SetQueryTimeout(time.Duration(a.Config.QueryTimeoutSec) * time.Second)

	// initialize api router
	a.initializeRoutes()
	return a.Scheduler.Start()
}

// Close stops the scheduler and disconnects from the database
func (a *App) Close(ctx context.Context) {
	if a.Scheduler != nil {
		a.Scheduler.Stop()
	}
	if a.client != nil {
		if err := a.client.Disconnect(ctx); err != nil {
			zap.S().Errorw("failed to disconnect from database", "error", err)
		}
	}
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}
