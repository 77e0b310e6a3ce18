package repos

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/nstuweb/campus-backend/internal/apperr"
	"github.com/nstuweb/campus-backend/internal/logger"
	"github.com/nstuweb/campus-backend/internal/types"
)

// Collection is the generic store for one document kind. It offers exactly
// three write-side operations: find, insert, whole-document replace. It has
// no transactional behavior of its own; cross-collection atomicity belongs
// to the coordinator, which passes its session through ctx.
type Collection[T any, PT interface {
	*T
	types.Document
}] struct {
	coll *mongo.Collection
	log  *logger.Logger
}

func NewCollection[T any, PT interface {
	*T
	types.Document
}](db *mongo.Database, name string, baseLog *logger.Logger) *Collection[T, PT] {
	return &Collection[T, PT]{
		coll: db.Collection(name),
		log:  baseLog.With("collection", name),
	}
}

// FindOne returns (nil, nil) when no document matches.
func (c *Collection[T, PT]) FindOne(ctx context.Context, filter bson.D) (PT, error) {
	var doc T
	err := c.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find one in %s: %w", c.coll.Name(), err)
	}
	return PT(&doc), nil
}

func (c *Collection[T, PT]) FindAll(ctx context.Context) ([]PT, error) {
	cur, err := c.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find all in %s: %w", c.coll.Name(), err)
	}
	var docs []PT
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode all in %s: %w", c.coll.Name(), err)
	}
	return docs, nil
}

func (c *Collection[T, PT]) Insert(ctx context.Context, doc PT) error {
	if _, err := c.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperr.Duplicate("document already exists in %s", c.coll.Name())
		}
		return fmt.Errorf("insert into %s: %w", c.coll.Name(), err)
	}
	return nil
}

// Replace persists the whole document, guarded by the version the caller
// loaded. A concurrent writer that committed first leaves our version
// stale; the replace then matches nothing and the caller gets a conflict
// instead of silently overwriting the other write.
func (c *Collection[T, PT]) Replace(ctx context.Context, doc PT) error {
	expected := doc.DocVersion()
	doc.SetDocVersion(expected + 1)
	res, err := c.coll.ReplaceOne(ctx, bson.D{
		{Key: "shortid", Value: doc.DocShortID()},
		{Key: "version", Value: expected},
	}, doc)
	if err != nil {
		doc.SetDocVersion(expected)
		return fmt.Errorf("replace in %s: %w", c.coll.Name(), err)
	}
	if res.MatchedCount == 0 {
		doc.SetDocVersion(expected)
		return apperr.Conflict("document %s changed concurrently in %s", doc.DocShortID(), c.coll.Name())
	}
	return nil
}
