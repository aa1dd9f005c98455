package repository

import (
	"sort"
	"sync"
	"time"

	"github.com/technova-labs/portal-go/internal/domain/consultation"
)

type ConsultationRepo interface {
	Create(input consultation.CreateBookingInput) consultation.Booking
	GetByID(id uint) (consultation.Booking, error)
	List() []consultation.Booking
	UpdateStatus(id uint, status consultation.Status) (consultation.Booking, error)
}

type MemConsultationRepo struct {
	mu       sync.RWMutex
	bookings map[uint]consultation.Booking
	nextID   uint
}

func NewConsultationRepo() *MemConsultationRepo {
	return &MemConsultationRepo{bookings: make(map[uint]consultation.Booking), nextID: 1}
}

func (r *MemConsultationRepo) Create(input consultation.CreateBookingInput) consultation.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()

	b := consultation.Booking{
		ID:            r.nextID,
		Name:          input.Name,
		Email:         input.Email,
		Phone:         input.Phone,
		Service:       input.Service,
		Description:   input.Description,
		PreferredDate: input.PreferredDate,
		PreferredTime: input.PreferredTime,
		Status:        consultation.StatusPending,
		CreatedAt:     time.Now(),
	}
	r.nextID++
	r.bookings[b.ID] = b
	return b
}

func (r *MemConsultationRepo) GetByID(id uint) (consultation.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.bookings[id]
	if !ok {
		return consultation.Booking{}, ErrNotFound
	}
	return b, nil
}

// List returns bookings newest first, ties in reversed insertion order.
func (r *MemConsultationRepo) List() []consultation.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]consultation.Booking, 0, len(r.bookings))
	for id := r.nextID; id > 0; id-- {
		if b, ok := r.bookings[id]; ok {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// UpdateStatus replaces the status field only.
func (r *MemConsultationRepo) UpdateStatus(id uint, status consultation.Status) (consultation.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return consultation.Booking{}, ErrNotFound
	}
	b.Status = status
	r.bookings[id] = b
	return b, nil
}
