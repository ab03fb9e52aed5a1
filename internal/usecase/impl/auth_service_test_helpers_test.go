package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"moodify/internal/domain/entity"
	domainerrors "moodify/internal/domain/errors"
	"moodify/internal/domain/repository"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memoryUserRepository is an in-memory credential store with a unique email index.
type memoryUserRepository struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]*entity.User
	byEmail map[string]uuid.UUID
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{
		byID:    make(map[uuid.UUID]*entity.User),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (r *memoryUserRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	clone := *user

	return &clone, nil
}

func (r *memoryUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	id, ok := r.byEmail[email]
	r.mu.Unlock()
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return r.FindByID(ctx, id)
}

func (r *memoryUserRepository) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("unique email index")
	}

	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	clone := *user
	r.byID[user.ID] = &clone
	r.byEmail[user.Email] = user.ID

	return nil
}

func (r *memoryUserRepository) all() []*entity.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := make([]*entity.User, 0, len(r.byID))
	for _, user := range r.byID {
		users = append(users, user)
	}

	return users
}
