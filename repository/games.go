package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ldelgadom/partidas-api/models"
)

type gamesRepository struct {
	col *mongo.Collection
}

// NewGames returns a Games repository over the "games" collection.
func NewGames(db *mongo.Database) Games {
	return &gamesRepository{col: db.Collection("games")}
}

func (r *gamesRepository) HighestID(ctx context.Context) (int, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "id", Value: -1}})
	var game models.Game
	err := r.col.FindOne(ctx, bson.D{}, opts).Decode(&game)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return game.ID, nil
}

func (r *gamesRepository) Insert(ctx context.Context, game models.Game) error {
	_, err := r.col.InsertOne(ctx, game)
	return err
}

func (r *gamesRepository) All(ctx context.Context) ([]models.Game, error) {
	cur, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	games := make([]models.Game, 0)
	if err := cur.All(ctx, &games); err != nil {
		return nil, err
	}
	return games, nil
}

func (r *gamesRepository) ByUser(ctx context.Context, uid string) ([]models.Game, error) {
	cur, err := r.col.Find(ctx, bson.D{{Key: "userId", Value: uid}})
	if err != nil {
		return nil, err
	}
	games := make([]models.Game, 0)
	if err := cur.All(ctx, &games); err != nil {
		return nil, err
	}
	return games, nil
}

func (r *gamesRepository) Delete(ctx context.Context, id int) error {
	// Two steps on purpose: resolve the first match to its document id,
	// then remove exactly that document. Duplicate application ids (which
	// the non-atomic id assignment can produce) therefore lose a single
	// document per call.
	var doc struct {
		DocID primitive.ObjectID `bson:"_id"`
	}
	err := r.col.FindOne(ctx, bson.D{{Key: "id", Value: id}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	_, err = r.col.DeleteOne(ctx, bson.M{"_id": doc.DocID})
	return err
}
