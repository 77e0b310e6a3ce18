package repos

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/nstuweb/campus-backend/internal/db"
	"github.com/nstuweb/campus-backend/internal/logger"
	"github.com/nstuweb/campus-backend/internal/types"
)

type MaterialRepo interface {
	GetByShortID(ctx context.Context, shortid string) (*types.Material, error)
	GetByTitle(ctx context.Context, title string) (*types.Material, error)
	List(ctx context.Context) ([]*types.Material, error)
	Insert(ctx context.Context, m *types.Material) error
	Replace(ctx context.Context, m *types.Material) error
}

type materialRepo struct {
	coll *Collection[types.Material, *types.Material]
}

func NewMaterialRepo(database *mongo.Database, baseLog *logger.Logger) MaterialRepo {
	repoLog := baseLog.With("repo", "MaterialRepo")
	return &materialRepo{coll: NewCollection[types.Material](database, db.CollMaterials, repoLog)}
}

func (r *materialRepo) GetByShortID(ctx context.Context, shortid string) (*types.Material, error) {
	return r.coll.FindOne(ctx, bson.D{{Key: "shortid", Value: shortid}})
}

func (r *materialRepo) GetByTitle(ctx context.Context, title string) (*types.Material, error) {
	return r.coll.FindOne(ctx, bson.D{{Key: "title", Value: title}})
}

func (r *materialRepo) List(ctx context.Context) ([]*types.Material, error) {
	return r.coll.FindAll(ctx)
}

func (r *materialRepo) Insert(ctx context.Context, m *types.Material) error {
	return r.coll.Insert(ctx, m)
}

func (r *materialRepo) Replace(ctx context.Context, m *types.Material) error {
	return r.coll.Replace(ctx, m)
}
