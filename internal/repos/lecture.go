package repos

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/nstuweb/campus-backend/internal/db"
	"github.com/nstuweb/campus-backend/internal/logger"
	"github.com/nstuweb/campus-backend/internal/types"
)

type LectureRepo interface {
	GetByShortID(ctx context.Context, shortid string) (*types.Lecture, error)
	GetByTitle(ctx context.Context, title string) (*types.Lecture, error)
	List(ctx context.Context) ([]*types.Lecture, error)
	Insert(ctx context.Context, l *types.Lecture) error
	Replace(ctx context.Context, l *types.Lecture) error
}

type lectureRepo struct {
	coll *Collection[types.Lecture, *types.Lecture]
}

func NewLectureRepo(database *mongo.Database, baseLog *logger.Logger) LectureRepo {
	repoLog := baseLog.With("repo", "LectureRepo")
	return &lectureRepo{coll: NewCollection[types.Lecture](database, db.CollLectures, repoLog)}
}

func (r *lectureRepo) GetByShortID(ctx context.Context, shortid string) (*types.Lecture, error) {
	return r.coll.FindOne(ctx, bson.D{{Key: "shortid", Value: shortid}})
}

func (r *lectureRepo) GetByTitle(ctx context.Context, title string) (*types.Lecture, error) {
	return r.coll.FindOne(ctx, bson.D{{Key: "title", Value: title}})
}

func (r *lectureRepo) List(ctx context.Context) ([]*types.Lecture, error) {
	return r.coll.FindAll(ctx)
}

func (r *lectureRepo) Insert(ctx context.Context, l *types.Lecture) error {
	return r.coll.Insert(ctx, l)
}

func (r *lectureRepo) Replace(ctx context.Context, l *types.Lecture) error {
	return r.coll.Replace(ctx, l)
}
