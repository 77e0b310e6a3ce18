package repos

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/nstuweb/campus-backend/internal/db"
	"github.com/nstuweb/campus-backend/internal/logger"
	"github.com/nstuweb/campus-backend/internal/types"
)

type AreaRepo interface {
	GetByShortID(ctx context.Context, shortid string) (*types.Area, error)
	GetByTitle(ctx context.Context, title string) (*types.Area, error)
	List(ctx context.Context) ([]*types.Area, error)
	Insert(ctx context.Context, a *types.Area) error
	Replace(ctx context.Context, a *types.Area) error
}

type areaRepo struct {
	coll *Collection[types.Area, *types.Area]
}

func NewAreaRepo(database *mongo.Database, baseLog *logger.Logger) AreaRepo {
	repoLog := baseLog.With("repo", "AreaRepo")
	return &areaRepo{coll: NewCollection[types.Area](database, db.CollAreas, repoLog)}
}

func (r *areaRepo) GetByShortID(ctx context.Context, shortid string) (*types.Area, error) {
	return r.coll.FindOne(ctx, bson.D{{Key: "shortid", Value: shortid}})
}

func (r *areaRepo) GetByTitle(ctx context.Context, title string) (*types.Area, error) {
	return r.coll.FindOne(ctx, bson.D{{Key: "title", Value: title}})
}

func (r *areaRepo) List(ctx context.Context) ([]*types.Area, error) {
	return r.coll.FindAll(ctx)
}

func (r *areaRepo) Insert(ctx context.Context, a *types.Area) error {
	return r.coll.Insert(ctx, a)
}

func (r *areaRepo) Replace(ctx context.Context, a *types.Area) error {
	return r.coll.Replace(ctx, a)
}
