package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ldelgadom/partidas-api/models"
)

type usersRepository struct {
	col *mongo.Collection
}

// NewUsers returns a Users repository over the "users" collection.
func NewUsers(db *mongo.Database) Users {
	return &usersRepository{col: db.Collection("users")}
}

func (r *usersRepository) Insert(ctx context.Context, user models.User) error {
	_, err := r.col.InsertOne(ctx, user)
	return err
}

func (r *usersRepository) ByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := r.col.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *usersRepository) Delete(ctx context.Context, uid string) error {
	res, err := r.col.DeleteOne(ctx, bson.D{{Key: "uid", Value: uid}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
