package repos

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/nstuweb/campus-backend/internal/db"
	"github.com/nstuweb/campus-backend/internal/logger"
	"github.com/nstuweb/campus-backend/internal/types"
)

type IdeaRepo interface {
	GetByShortID(ctx context.Context, shortid string) (*types.Idea, error)
	GetByTitle(ctx context.Context, title string) (*types.Idea, error)
	List(ctx context.Context) ([]*types.Idea, error)
	Insert(ctx context.Context, i *types.Idea) error
	Replace(ctx context.Context, i *types.Idea) error
}

type ideaRepo struct {
	coll *Collection[types.Idea, *types.Idea]
}

func NewIdeaRepo(database *mongo.Database, baseLog *logger.Logger) IdeaRepo {
	repoLog := baseLog.With("repo", "IdeaRepo")
	return &ideaRepo{coll: NewCollection[types.Idea](database, db.CollIdeas, repoLog)}
}

func (r *ideaRepo) GetByShortID(ctx context.Context, shortid string) (*types.Idea, error) {
	return r.coll.FindOne(ctx, bson.D{{Key: "shortid", Value: shortid}})
}

func (r *ideaRepo) GetByTitle(ctx context.Context, title string) (*types.Idea, error) {
	return r.coll.FindOne(ctx, bson.D{{Key: "title", Value: title}})
}

func (r *ideaRepo) List(ctx context.Context) ([]*types.Idea, error) {
	return r.coll.FindAll(ctx)
}

func (r *ideaRepo) Insert(ctx context.Context, i *types.Idea) error {
	return r.coll.Insert(ctx, i)
}

func (r *ideaRepo) Replace(ctx context.Context, i *types.Idea) error {
	return r.coll.Replace(ctx, i)
}
