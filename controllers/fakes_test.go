package controllers

import (
	"context"
	"errors"
	"sync"

	"github.com/ldelgadom/partidas-api/models"
	"github.com/ldelgadom/partidas-api/repository"
)

var errStoreDown = errors.New("store unavailable")

// fakeGames is an in-memory stand-in for the games collection.
type fakeGames struct {
	mu    sync.Mutex
	games []models.Game
	fail  bool
}

func (f *fakeGames) HighestID(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return 0, errStoreDown
	}
	highest := 0
	for _, g := range f.games {
		if g.ID > highest {
			highest = g.ID
		}
	}
	return highest, nil
}

func (f *fakeGames) Insert(ctx context.Context, game models.Game) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errStoreDown
	}
	f.games = append(f.games, game)
	return nil
}

func (f *fakeGames) All(ctx context.Context) ([]models.Game, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return nil, errStoreDown
	}
	out := make([]models.Game, len(f.games))
	copy(out, f.games)
	return out, nil
}

func (f *fakeGames) ByUser(ctx context.Context, uid string) ([]models.Game, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return nil, errStoreDown
	}
	out := make([]models.Game, 0)
	for _, g := range f.games {
		if g.UserID == uid {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeGames) Delete(ctx context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errStoreDown
	}
	for i, g := range f.games {
		if g.ID == id {
			f.games = append(f.games[:i], f.games[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeGames) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.games)
}

// fakeObjects is an in-memory stand-in for the objects collection.
type fakeObjects struct {
	mu      sync.Mutex
	objects []models.ObjectRecord
}

func (f *fakeObjects) HighestID(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	highest := 0
	for _, o := range f.objects {
		if o.ID > highest {
			highest = o.ID
		}
	}
	return highest, nil
}

func (f *fakeObjects) Insert(ctx context.Context, obj models.ObjectRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects = append(f.objects, obj)
	return nil
}

func (f *fakeObjects) All(ctx context.Context) ([]models.ObjectRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.ObjectRecord, len(f.objects))
	copy(out, f.objects)
	return out, nil
}

func (f *fakeObjects) Delete(ctx context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, o := range f.objects {
		if o.ID == id {
			f.objects = append(f.objects[:i], f.objects[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// fakeUsers is an in-memory stand-in for the users collection.
type fakeUsers struct {
	mu    sync.Mutex
	users []models.User
}

func (f *fakeUsers) Insert(ctx context.Context, user models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUsers) ByEmail(ctx context.Context, email string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, repository.ErrNotFound
}

func (f *fakeUsers) Delete(ctx context.Context, uid string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, u := range f.users {
		if u.UID == uid {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}
