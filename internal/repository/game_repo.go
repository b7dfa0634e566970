package repository

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sanguo/internal/model"
)

// GameRepo archives finished games in MongoDB
type GameRepo interface {
	Save(ctx context.Context, game *model.GameRecord) error
	GetByID(ctx context.Context, id string) (*model.GameRecord, error)
	ListByRoom(ctx context.Context, roomCode string) ([]*model.GameRecord, error)
	Recent(ctx context.Context, limit int) ([]*model.GameRecord, error)
}

type gameRepo struct {
	collection *mongo.Collection
}

// NewGameRepo creates a new game archive repository with indexes
func NewGameRepo(db *mongo.Database) GameRepo {
	repo := &gameRepo{
		collection: db.Collection("games"),
	}
	repo.ensureIndexes(context.Background())
	return repo
}

func (r *gameRepo) ensureIndexes(ctx context.Context) {
	models := []mongo.IndexModel{
		{Keys: bson.D{{Key: "finishedAt", Value: -1}}},
		{Keys: bson.D{{Key: "roomCode", Value: 1}, {Key: "finishedAt", Value: -1}}},
	}
	if _, err := r.collection.Indexes().CreateMany(ctx, models); err != nil {
		log.Printf("Warning: failed to create games indexes: %v", err)
	}
}

// Save upserts by id so a retried archive never duplicates a game
func (r *gameRepo) Save(ctx context.Context, game *model.GameRecord) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": game.ID}, game, opts)
	return err
}

func (r *gameRepo) GetByID(ctx context.Context, id string) (*model.GameRecord, error) {
	var game model.GameRecord
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&game)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func (r *gameRepo) ListByRoom(ctx context.Context, roomCode string) ([]*model.GameRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "finishedAt", Value: -1}})
	return r.find(ctx, bson.M{"roomCode": roomCode}, opts)
}

func (r *gameRepo) Recent(ctx context.Context, limit int) ([]*model.GameRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "finishedAt", Value: -1}}).
		SetLimit(int64(limit))
	return r.find(ctx, bson.M{}, opts)
}

func (r *gameRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*model.GameRecord, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var games []*model.GameRecord
	if err = cursor.All(ctx, &games); err != nil {
		return nil, err
	}
	return games, nil
}
