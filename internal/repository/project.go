package repository

import (
	"sync"
	"time"

	"github.com/technova-labs/portal-go/internal/domain/project"
)

type ProjectRepo interface {
	Create(input *project.Project) project.Project
	GetByID(id uint) (project.Project, error)
	List() []project.Project
	ListByClientID(clientID uint) []project.Project
}

type MemProjectRepo struct {
	mu       sync.RWMutex
	projects map[uint]project.Project
	nextID   uint
}

func NewProjectRepo() *MemProjectRepo {
	return &MemProjectRepo{projects: make(map[uint]project.Project), nextID: 1}
}

// Create assigns the next id and fills server-owned defaults. Field values the
// service already resolved (status, priority, progress) are taken as-is.
func (r *MemProjectRepo) Create(input *project.Project) project.Project {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	p := *input
	p.ID = r.nextID
	r.nextID++
	if p.Status == "" {
		p.Status = project.StatusPlanning
	}
	if p.Priority == "" {
		p.Priority = project.PriorityMedium
	}
	p.CreatedAt = now
	p.UpdatedAt = now
	r.projects[p.ID] = p
	return p
}

func (r *MemProjectRepo) GetByID(id uint) (project.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.projects[id]
	if !ok {
		return project.Project{}, ErrNotFound
	}
	return p, nil
}

func (r *MemProjectRepo) List() []project.Project {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]project.Project, 0, len(r.projects))
	for id := uint(1); id < r.nextID; id++ {
		if p, ok := r.projects[id]; ok {
			out = append(out, p)
		}
	}
	return out
}

func (r *MemProjectRepo) ListByClientID(clientID uint) []project.Project {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []project.Project
	for id := uint(1); id < r.nextID; id++ {
		if p, ok := r.projects[id]; ok && p.ClientID == clientID {
			out = append(out, p)
		}
	}
	return out
}
