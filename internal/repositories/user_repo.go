package repositories

import (
	"sync"
	"time"

	"github.com/adlaunch/backend/internal/models"
	"github.com/google/uuid"
)

type UserRepo struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*models.User
}

func NewUserRepo() *UserRepo {
	return &UserRepo{users: make(map[uuid.UUID]*models.User)}
}

func (r *UserRepo) Create(username, passwordHash string) *models.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	u := &models.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	r.users[u.ID] = u
	return copyUser(u)
}

func (r *UserRepo) GetByID(id uuid.UUID) (*models.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, false
	}
	return copyUser(u), true
}

// GetByUsername returns the first user with the given username. Username
// uniqueness is assumed but not enforced by a constraint; registration
// checks here before creating.
func (r *UserRepo) GetByUsername(username string) (*models.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			return copyUser(u), true
		}
	}
	return nil, false
}

func copyUser(u *models.User) *models.User {
	out := *u
	return &out
}
