package application

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/technova-labs/portal-go/internal/delivery"
	"github.com/technova-labs/portal-go/internal/domain/consultation"
	"github.com/technova-labs/portal-go/internal/repository"
	"github.com/technova-labs/portal-go/pkg/metrics"
)

var (
	ErrBookingNotFound = errors.New("consultation booking not found")
	ErrInvalidStatus   = errors.New("invalid booking status")
)

type ConsultationService struct {
	Repos    *repository.Repos
	notifier delivery.Notifier
	log      *zap.Logger
}

func NewConsultationService(repos *repository.Repos, notifier delivery.Notifier, log *zap.Logger) *ConsultationService {
	return &ConsultationService{Repos: repos, notifier: notifier, log: log}
}

func (s *ConsultationService) Create(ctx context.Context, input consultation.CreateBookingInput) consultation.Booking {
	b := s.Repos.Consultation.Create(input)
	metrics.RecordSubmission("consultation")

	message := ""
	if b.Description != nil {
		message = *b.Description
	}
	if err := s.notifier.Notify(ctx, delivery.Submission{
		Kind:        "consultation",
		Name:        b.Name,
		Email:       b.Email,
		Phone:       b.Phone,
		Service:     b.Service,
		Message:     message,
		SubmittedAt: b.CreatedAt,
	}); err != nil {
		s.log.Warn("booking delivery returned error", zap.Uint("id", b.ID), zap.Error(err))
	}

	return b
}

func (s *ConsultationService) List() []consultation.Booking {
	return s.Repos.Consultation.List()
}

func (s *ConsultationService) Get(id uint) (consultation.Booking, error) {
	b, err := s.Repos.Consultation.GetByID(id)
	if err != nil {
		return consultation.Booking{}, ErrBookingNotFound
	}
	return b, nil
}

func (s *ConsultationService) UpdateStatus(id uint, status string) (consultation.Booking, error) {
	st := consultation.Status(status)
	if !st.Valid() {
		return consultation.Booking{}, ErrInvalidStatus
	}
	b, err := s.Repos.Consultation.UpdateStatus(id, st)
	if err != nil {
		return consultation.Booking{}, ErrBookingNotFound
	}
	return b, nil
}
