package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/nstuweb/campus-backend/internal/logger"
	"github.com/nstuweb/campus-backend/internal/utils"
)

const (
	CollProfiles  = "profiles"
	CollMaterials = "materials"
	CollRooms     = "rooms"
	CollLectures  = "lectures"
	CollAreas     = "areas"
	CollIdeas     = "ideas"
)

type MongoService struct {
	client *mongo.Client
	db     *mongo.Database
	log    *logger.Logger
}

func NewMongoService(ctx context.Context, log *logger.Logger) (*MongoService, error) {
	serviceLog := log.With("service", "MongoService")

	log.Info("Loading environment variables...")
	mongoURL := utils.GetEnv("MONGO_URL", "mongodb://localhost:27017", log)
	mongoName := utils.GetEnv("MONGO_NAME", "nstuweb", log)
	log.Debug("Environment variables loaded")

	log.Info("Connecting to MongoDB...")
	client, err := mongo.Connect(options.Client().ApplyURI(mongoURL))
	if err != nil {
		log.Error("Failed to connect to MongoDB", "error", err)
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Error("Failed to ping MongoDB", "error", err)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	log.Info("MongoDB is connected...")

	return &MongoService{
		client: client,
		db:     client.Database(mongoName),
		log:    serviceLog,
	}, nil
}

// EnsureIndexes installs the uniqueness guards the creation paths rely on:
// shortid everywhere, name for profiles, title for materials, lectures,
// areas and ideas, dormitory+num for rooms.
func (s *MongoService) EnsureIndexes(ctx context.Context) error {
	s.log.Info("Ensuring MongoDB indexes...")

	unique := func(keys bson.D) mongo.IndexModel {
		return mongo.IndexModel{Keys: keys, Options: options.Index().SetUnique(true)}
	}

	perColl := map[string][]mongo.IndexModel{
		CollProfiles: {
			unique(bson.D{{Key: "shortid", Value: 1}}),
			unique(bson.D{{Key: "name", Value: 1}}),
		},
		CollMaterials: {
			unique(bson.D{{Key: "shortid", Value: 1}}),
			unique(bson.D{{Key: "title", Value: 1}}),
		},
		CollRooms: {
			unique(bson.D{{Key: "shortid", Value: 1}}),
			unique(bson.D{{Key: "dormitory", Value: 1}, {Key: "num", Value: 1}}),
		},
		CollLectures: {
			unique(bson.D{{Key: "shortid", Value: 1}}),
			unique(bson.D{{Key: "title", Value: 1}}),
		},
		CollAreas: {
			unique(bson.D{{Key: "shortid", Value: 1}}),
			unique(bson.D{{Key: "title", Value: 1}}),
		},
		CollIdeas: {
			unique(bson.D{{Key: "shortid", Value: 1}}),
			unique(bson.D{{Key: "title", Value: 1}}),
		},
	}

	for coll, models := range perColl {
		if _, err := s.db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			s.log.Error("Failed to create indexes", "collection", coll, "error", err)
			return fmt.Errorf("create indexes for %s: %w", coll, err)
		}
	}
	return nil
}

func (s *MongoService) Client() *mongo.Client {
	return s.client
}

func (s *MongoService) Database() *mongo.Database {
	return s.db
}

func (s *MongoService) Close(ctx context.Context) {
	if err := s.client.Disconnect(ctx); err != nil {
		s.log.Warn("MongoDB disconnect failed", "error", err)
	}
}
