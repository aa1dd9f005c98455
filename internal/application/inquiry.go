package application

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/technova-labs/portal-go/internal/delivery"
	"github.com/technova-labs/portal-go/internal/domain/inquiry"
	"github.com/technova-labs/portal-go/internal/repository"
	"github.com/technova-labs/portal-go/pkg/metrics"
)

var ErrInquiryNotFound = errors.New("inquiry not found")

type InquiryService struct {
	Repos    *repository.Repos
	notifier delivery.Notifier
	log      *zap.Logger
}

func NewInquiryService(repos *repository.Repos, notifier delivery.Notifier, log *zap.Logger) *InquiryService {
	return &InquiryService{Repos: repos, notifier: notifier, log: log}
}

// Create stores the submission and forwards it to the delivery channel. The
// store write decides the outcome; delivery errors are logged by the chain and
// never returned to the caller.
func (s *InquiryService) Create(ctx context.Context, input inquiry.CreateInquiryInput, typ inquiry.Type) inquiry.Inquiry {
	q := s.Repos.Inquiry.Create(input, typ)
	metrics.RecordSubmission(string(q.Type))

	if err := s.notifier.Notify(ctx, delivery.Submission{
		Kind:        string(q.Type),
		Name:        fmt.Sprintf("%s %s", q.FirstName, q.LastName),
		Email:       q.Email,
		Phone:       q.Phone,
		Service:     q.Service,
		Message:     q.Message,
		SubmittedAt: q.CreatedAt,
	}); err != nil {
		s.log.Warn("inquiry delivery returned error", zap.Uint("id", q.ID), zap.Error(err))
	}

	return q
}

func (s *InquiryService) List() []inquiry.Inquiry {
	return s.Repos.Inquiry.List()
}

func (s *InquiryService) Get(id uint) (inquiry.Inquiry, error) {
	q, err := s.Repos.Inquiry.GetByID(id)
	if err != nil {
		return inquiry.Inquiry{}, ErrInquiryNotFound
	}
	return q, nil
}

func (s *InquiryService) MarkRead(id uint) (inquiry.Inquiry, error) {
	q, err := s.Repos.Inquiry.MarkRead(id)
	if err != nil {
		return inquiry.Inquiry{}, ErrInquiryNotFound
	}
	return q, nil
}
