// Package repository provides collection-scoped access to the document
// store. Every operation is a single standalone call; there are no
// transactions and no retries.
package repository

import (
	"context"
	"errors"

	"github.com/ldelgadom/partidas-api/models"
)

// ErrNotFound reports that no document matched the query.
var ErrNotFound = errors.New("repository: document not found")

// Games is the store surface the game service depends on.
type Games interface {
	// HighestID returns the largest assigned game id, or 0 when the
	// collection is empty.
	HighestID(ctx context.Context) (int, error)
	Insert(ctx context.Context, game models.Game) error
	All(ctx context.Context) ([]models.Game, error)
	ByUser(ctx context.Context, uid string) ([]models.Game, error)
	// Delete removes the first document whose application id matches.
	Delete(ctx context.Context, id int) error
}

// Objects mirrors Games for object records.
type Objects interface {
	HighestID(ctx context.Context) (int, error)
	Insert(ctx context.Context, obj models.ObjectRecord) error
	All(ctx context.Context) ([]models.ObjectRecord, error)
	Delete(ctx context.Context, id int) error
}

// Users is the store surface the user service depends on.
type Users interface {
	Insert(ctx context.Context, user models.User) error
	ByEmail(ctx context.Context, email string) (models.User, error)
	Delete(ctx context.Context, uid string) error
}
