package application

import (
	"go.uber.org/zap"

	"github.com/technova-labs/portal-go/internal/delivery"
	"github.com/technova-labs/portal-go/internal/repository"
)

type Services struct {
	User         *UserService
	Inquiry      *InquiryService
	Consultation *ConsultationService
	Project      *ProjectService
	Task         *TaskService
	Comment      *CommentService
	TimeEntry    *TimeEntryService
}

func New(repos *repository.Repos, notifier delivery.Notifier, log *zap.Logger) *Services {
	return &Services{
		User:         NewUserService(repos),
		Inquiry:      NewInquiryService(repos, notifier, log),
		Consultation: NewConsultationService(repos, notifier, log),
		Project:      NewProjectService(repos),
		Task:         NewTaskService(repos),
		Comment:      NewCommentService(repos),
		TimeEntry:    NewTimeEntryService(repos),
	}
}
