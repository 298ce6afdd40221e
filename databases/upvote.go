package databases

// go generate: mockery --name UpvoteDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linesmerrill/la-crime-api/models"
)

const upvoteName = "upvotes"

// UpvoteDatabase contains the methods to use with the upvote database
type UpvoteDatabase interface {
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.Upvote, error)
	Exists(ctx context.Context, filter interface{}) (bool, error)
	InsertOne(context.Context, interface{}, ...*options.InsertOneOptions) (InsertOneResultHelper, error)
	Aggregate(ctx context.Context, pipeline interface{}, results interface{}) error
}

type upvoteDatabase struct {
	db DatabaseHelper
}

// NewUpvoteDatabase initializes a new instance of upvote database with the provided db connection
func NewUpvoteDatabase(db DatabaseHelper) UpvoteDatabase {
	return &upvoteDatabase{
		db: db,
	}
}

func (c *upvoteDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.Upvote, error) {
	upvote := &models.Upvote{}
	err := c.db.Collection(upvoteName).FindOne(ctx, filter, opts...).Decode(&upvote)
	if err != nil {
		return nil, err
	}
	return upvote, nil
}

// Exists reports whether at least one upvote matches filter
func (c *upvoteDatabase) Exists(ctx context.Context, filter interface{}) (bool, error) {
	n, err := c.db.Collection(upvoteName).CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (c *upvoteDatabase) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	return c.db.Collection(upvoteName).InsertOne(ctx, document, opts...)
}

func (c *upvoteDatabase) Aggregate(ctx context.Context, pipeline interface{}, results interface{}) error {
	return aggregate(ctx, c.db.Collection(upvoteName), pipeline, results)
}
