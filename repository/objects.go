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

type objectsRepository struct {
	col *mongo.Collection
}

// NewObjects returns an Objects repository over the "objects" collection.
func NewObjects(db *mongo.Database) Objects {
	return &objectsRepository{col: db.Collection("objects")}
}

func (r *objectsRepository) HighestID(ctx context.Context) (int, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "id", Value: -1}})
	var obj models.ObjectRecord
	err := r.col.FindOne(ctx, bson.D{}, opts).Decode(&obj)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return obj.ID, nil
}

func (r *objectsRepository) Insert(ctx context.Context, obj models.ObjectRecord) error {
	_, err := r.col.InsertOne(ctx, obj)
	return err
}

func (r *objectsRepository) All(ctx context.Context) ([]models.ObjectRecord, error) {
	cur, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	objects := make([]models.ObjectRecord, 0)
	if err := cur.All(ctx, &objects); err != nil {
		return nil, err
	}
	return objects, nil
}

func (r *objectsRepository) Delete(ctx context.Context, id int) error {
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
