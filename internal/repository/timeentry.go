package repository

import (
	"sync"
	"time"

	"github.com/technova-labs/portal-go/internal/domain/timeentry"
)

// TimeEntryFilter narrows List by equality on its non-nil fields.
type TimeEntryFilter struct {
	ProjectID *uint
	UserID    *uint
}

type TimeEntryRepo interface {
	Create(input timeentry.CreateEntryInput) timeentry.Entry
	GetByID(id uint) (timeentry.Entry, error)
	List(filter TimeEntryFilter) []timeentry.Entry
}

type MemTimeEntryRepo struct {
	mu      sync.RWMutex
	entries map[uint]timeentry.Entry
	nextID  uint
}

func NewTimeEntryRepo() *MemTimeEntryRepo {
	return &MemTimeEntryRepo{entries: make(map[uint]timeentry.Entry), nextID: 1}
}

func (r *MemTimeEntryRepo) Create(input timeentry.CreateEntryInput) timeentry.Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := timeentry.Entry{
		ID:          r.nextID,
		ProjectID:   input.ProjectID,
		TaskID:      input.TaskID,
		UserID:      input.UserID,
		Description: input.Description,
		Hours:       input.Hours,
		Date:        input.Date,
		CreatedAt:   time.Now(),
	}
	r.nextID++
	r.entries[e.ID] = e
	return e
}

func (r *MemTimeEntryRepo) GetByID(id uint) (timeentry.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[id]
	if !ok {
		return timeentry.Entry{}, ErrNotFound
	}
	return e, nil
}

func (r *MemTimeEntryRepo) List(filter TimeEntryFilter) []timeentry.Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []timeentry.Entry
	for id := uint(1); id < r.nextID; id++ {
		e, ok := r.entries[id]
		if !ok {
			continue
		}
		if filter.ProjectID != nil && e.ProjectID != *filter.ProjectID {
			continue
		}
		if filter.UserID != nil && e.UserID != *filter.UserID {
			continue
		}
		out = append(out, e)
	}
	return out
}
