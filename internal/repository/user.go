package repository

import (
	"sync"
	"time"

	"github.com/technova-labs/portal-go/internal/domain/user"
)

type UserRepo interface {
	Create(input *user.User) user.User
	GetByID(id uint) (user.User, error)
	GetByUsername(username string) (user.User, error)
	GetByEmail(email string) (user.User, error)
	List() []user.User
}

// MemUserRepo keeps users in a process-local map. Ids start at 1 and are
// never reused; all state is gone on restart.
type MemUserRepo struct {
	mu     sync.RWMutex
	users  map[uint]user.User
	nextID uint
}

func NewUserRepo() *MemUserRepo {
	return &MemUserRepo{users: make(map[uint]user.User), nextID: 1}
}

func (r *MemUserRepo) Create(input *user.User) user.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	u := *input
	u.ID = r.nextID
	r.nextID++
	if u.Role == "" {
		u.Role = user.RoleClient
	}
	u.IsActive = true
	u.CreatedAt = now
	u.UpdatedAt = now
	r.users[u.ID] = u
	return u
}

func (r *MemUserRepo) GetByID(id uint) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return user.User{}, ErrNotFound
	}
	return u, nil
}

func (r *MemUserRepo) GetByUsername(username string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return user.User{}, ErrNotFound
}

func (r *MemUserRepo) GetByEmail(email string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, ErrNotFound
}

func (r *MemUserRepo) List() []user.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]user.User, 0, len(r.users))
	for id := uint(1); id < r.nextID; id++ {
		if u, ok := r.users[id]; ok {
			out = append(out, u)
		}
	}
	return out
}
