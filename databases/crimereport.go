package databases

// go generate: mockery --name CrimeReportDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linesmerrill/la-crime-api/models"
)

const crimeReportName = "crime_reports"

// CrimeReportDatabase contains the methods to use with the crime report database
type CrimeReportDatabase interface {
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.CrimeReport, error)
	InsertOne(context.Context, interface{}, ...*options.InsertOneOptions) (InsertOneResultHelper, error)
	UpdateOne(context.Context, interface{}, interface{}, ...*options.UpdateOptions) (int64, error)
	ReplaceOne(context.Context, interface{}, interface{}, ...*options.ReplaceOptions) (int64, error)
	Aggregate(ctx context.Context, pipeline interface{}, results interface{}) error
}

type crimeReportDatabase struct {
	db DatabaseHelper
}

// NewCrimeReportDatabase initializes a new instance of crime report database with the provided db connection
func NewCrimeReportDatabase(db DatabaseHelper) CrimeReportDatabase {
	return &crimeReportDatabase{
		db: db,
	}
}

func (c *crimeReportDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.CrimeReport, error) {
	report := &models.CrimeReport{}
	err := c.db.Collection(crimeReportName).FindOne(ctx, filter, opts...).Decode(&report)
	if err != nil {
		return nil, err
	}
	return report, nil
}

func (c *crimeReportDatabase) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	return c.db.Collection(crimeReportName).InsertOne(ctx, document, opts...)
}

// UpdateOne returns the number of matched documents
func (c *crimeReportDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (int64, error) {
	res, err := c.db.Collection(crimeReportName).UpdateOne(ctx, filter, update, opts...)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// ReplaceOne returns the number of matched documents
func (c *crimeReportDatabase) ReplaceOne(ctx context.Context, filter interface{}, replacement interface{}, opts ...*options.ReplaceOptions) (int64, error) {
	res, err := c.db.Collection(crimeReportName).ReplaceOne(ctx, filter, replacement, opts...)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (c *crimeReportDatabase) Aggregate(ctx context.Context, pipeline interface{}, results interface{}) error {
	return aggregate(ctx, c.db.Collection(crimeReportName), pipeline, results)
}
