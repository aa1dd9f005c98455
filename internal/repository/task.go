package repository

import (
	"sync"
	"time"

	"github.com/technova-labs/portal-go/internal/domain/project"
	"github.com/technova-labs/portal-go/internal/domain/task"
)

type TaskRepo interface {
	Create(input *task.Task) task.Task
	GetByID(id uint) (task.Task, error)
	List() []task.Task
	ListByProjectID(projectID uint) []task.Task
}

type MemTaskRepo struct {
	mu     sync.RWMutex
	tasks  map[uint]task.Task
	nextID uint
}

func NewTaskRepo() *MemTaskRepo {
	return &MemTaskRepo{tasks: make(map[uint]task.Task), nextID: 1}
}

func (r *MemTaskRepo) Create(input *task.Task) task.Task {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	t := *input
	t.ID = r.nextID
	r.nextID++
	if t.Status == "" {
		t.Status = task.StatusTodo
	}
	if t.Priority == "" {
		t.Priority = project.PriorityMedium
	}
	t.CreatedAt = now
	t.UpdatedAt = now
	r.tasks[t.ID] = t
	return t
}

func (r *MemTaskRepo) GetByID(id uint) (task.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tasks[id]
	if !ok {
		return task.Task{}, ErrNotFound
	}
	return t, nil
}

func (r *MemTaskRepo) List() []task.Task {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]task.Task, 0, len(r.tasks))
	for id := uint(1); id < r.nextID; id++ {
		if t, ok := r.tasks[id]; ok {
			out = append(out, t)
		}
	}
	return out
}

func (r *MemTaskRepo) ListByProjectID(projectID uint) []task.Task {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []task.Task
	for id := uint(1); id < r.nextID; id++ {
		if t, ok := r.tasks[id]; ok && t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out
}
