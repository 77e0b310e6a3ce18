package repos

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/nstuweb/campus-backend/internal/db"
	"github.com/nstuweb/campus-backend/internal/logger"
	"github.com/nstuweb/campus-backend/internal/types"
)

type ProfileRepo interface {
	GetByName(ctx context.Context, name string) (*types.Profile, error)
	GetByShortID(ctx context.Context, shortid string) (*types.Profile, error)
	GetByNameAndShortID(ctx context.Context, name, shortid string) (*types.Profile, error)
	List(ctx context.Context) ([]*types.Profile, error)
	Insert(ctx context.Context, p *types.Profile) error
	Replace(ctx context.Context, p *types.Profile) error
}

type profileRepo struct {
	coll *Collection[types.Profile, *types.Profile]
}

func NewProfileRepo(database *mongo.Database, baseLog *logger.Logger) ProfileRepo {
	repoLog := baseLog.With("repo", "ProfileRepo")
	return &profileRepo{coll: NewCollection[types.Profile](database, db.CollProfiles, repoLog)}
}

func (r *profileRepo) GetByName(ctx context.Context, name string) (*types.Profile, error) {
	return r.coll.FindOne(ctx, bson.D{{Key: "name", Value: name}})
}

func (r *profileRepo) GetByShortID(ctx context.Context, shortid string) (*types.Profile, error) {
	return r.coll.FindOne(ctx, bson.D{{Key: "shortid", Value: shortid}})
}

func (r *profileRepo) GetByNameAndShortID(ctx context.Context, name, shortid string) (*types.Profile, error) {
	return r.coll.FindOne(ctx, bson.D{{Key: "name", Value: name}, {Key: "shortid", Value: shortid}})
}

func (r *profileRepo) List(ctx context.Context) ([]*types.Profile, error) {
	return r.coll.FindAll(ctx)
}

func (r *profileRepo) Insert(ctx context.Context, p *types.Profile) error {
	return r.coll.Insert(ctx, p)
}

func (r *profileRepo) Replace(ctx context.Context, p *types.Profile) error {
	return r.coll.Replace(ctx, p)
}
