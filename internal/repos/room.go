package repos

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/nstuweb/campus-backend/internal/db"
	"github.com/nstuweb/campus-backend/internal/logger"
	"github.com/nstuweb/campus-backend/internal/types"
)

type RoomRepo interface {
	GetByShortID(ctx context.Context, shortid string) (*types.Room, error)
	GetByDormitoryAndNum(ctx context.Context, dormitory string, num float64) (*types.Room, error)
	List(ctx context.Context) ([]*types.Room, error)
	Insert(ctx context.Context, room *types.Room) error
	Replace(ctx context.Context, room *types.Room) error
}

type roomRepo struct {
	coll *Collection[types.Room, *types.Room]
}

func NewRoomRepo(database *mongo.Database, baseLog *logger.Logger) RoomRepo {
	repoLog := baseLog.With("repo", "RoomRepo")
	return &roomRepo{coll: NewCollection[types.Room](database, db.CollRooms, repoLog)}
}

func (r *roomRepo) GetByShortID(ctx context.Context, shortid string) (*types.Room, error) {
	return r.coll.FindOne(ctx, bson.D{{Key: "shortid", Value: shortid}})
}

func (r *roomRepo) GetByDormitoryAndNum(ctx context.Context, dormitory string, num float64) (*types.Room, error) {
	return r.coll.FindOne(ctx, bson.D{{Key: "dormitory", Value: dormitory}, {Key: "num", Value: num}})
}

func (r *roomRepo) List(ctx context.Context) ([]*types.Room, error) {
	return r.coll.FindAll(ctx)
}

func (r *roomRepo) Insert(ctx context.Context, room *types.Room) error {
	return r.coll.Insert(ctx, room)
}

func (r *roomRepo) Replace(ctx context.Context, room *types.Room) error {
	return r.coll.Replace(ctx, room)
}
