package repository

import (
	"sort"
	"sync"
	"time"

	"github.com/technova-labs/portal-go/internal/domain/inquiry"
)

type InquiryRepo interface {
	Create(input inquiry.CreateInquiryInput, typ inquiry.Type) inquiry.Inquiry
	GetByID(id uint) (inquiry.Inquiry, error)
	List() []inquiry.Inquiry
	MarkRead(id uint) (inquiry.Inquiry, error)
}

type MemInquiryRepo struct {
	mu        sync.RWMutex
	inquiries map[uint]inquiry.Inquiry
	nextID    uint
}

func NewInquiryRepo() *MemInquiryRepo {
	return &MemInquiryRepo{inquiries: make(map[uint]inquiry.Inquiry), nextID: 1}
}

func (r *MemInquiryRepo) Create(input inquiry.CreateInquiryInput, typ inquiry.Type) inquiry.Inquiry {
	r.mu.Lock()
	defer r.mu.Unlock()

	if typ == "" {
		typ = inquiry.TypeContact
	}
	q := inquiry.Inquiry{
		ID:        r.nextID,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		Service:   input.Service,
		Message:   input.Message,
		Type:      typ,
		IsRead:    false,
		CreatedAt: time.Now(),
	}
	r.nextID++
	r.inquiries[q.ID] = q
	return q
}

func (r *MemInquiryRepo) GetByID(id uint) (inquiry.Inquiry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	q, ok := r.inquiries[id]
	if !ok {
		return inquiry.Inquiry{}, ErrNotFound
	}
	return q, nil
}

// List returns inquiries newest first. Equal timestamps fall back to reversed
// insertion order, which the stable sort preserves from the descending-id walk.
func (r *MemInquiryRepo) List() []inquiry.Inquiry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]inquiry.Inquiry, 0, len(r.inquiries))
	for id := r.nextID; id > 0; id-- {
		if q, ok := r.inquiries[id]; ok {
			out = append(out, q)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// MarkRead is idempotent; a second call is a no-op beyond the flag.
func (r *MemInquiryRepo) MarkRead(id uint) (inquiry.Inquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	q, ok := r.inquiries[id]
	if !ok {
		return inquiry.Inquiry{}, ErrNotFound
	}
	q.IsRead = true
	r.inquiries[id] = q
	return q, nil
}
