// Package txn wraps the paired profile + satellite-entity writes in a
// single all-or-nothing unit. Either both documents commit or neither
// does; there is no retry here beyond what the driver's transaction
// callback itself performs on transient errors.
package txn

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readconcern"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"go.mongodb.org/mongo-driver/v2/mongo/writeconcern"

	"github.com/nstuweb/campus-backend/internal/apperr"
	"github.com/nstuweb/campus-backend/internal/logger"
)

type Coordinator interface {
	// Run executes fn inside one transaction; writes made through the ctx
	// passed to fn are committed together or rolled back together.
	Run(ctx context.Context, fn func(ctx context.Context) error) error
}

type mongoCoordinator struct {
	client *mongo.Client
	log    *logger.Logger
}

func NewCoordinator(client *mongo.Client, baseLog *logger.Logger) Coordinator {
	return &mongoCoordinator{
		client: client,
		log:    baseLog.With("component", "txn.Coordinator"),
	}
}

func (c *mongoCoordinator) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := c.client.StartSession()
	if err != nil {
		c.log.Error("Failed to start session", "error", err)
		return apperr.Transaction(err)
	}
	defer session.EndSession(ctx)

	opts := options.Transaction().
		SetReadPreference(readpref.Primary()).
		SetReadConcern(readconcern.Local()).
		SetWriteConcern(writeconcern.Majority())

	_, err = session.WithTransaction(ctx, func(sessCtx context.Context) (interface{}, error) {
		return nil, fn(sessCtx)
	}, opts)
	if err != nil {
		c.log.Error("Transaction aborted with an error", "error", err)
		return apperr.Transaction(err)
	}
	return nil
}
