package handlers

import (
	"github.com/technova-labs/portal-go/internal/application"
)

type Handlers struct {
	Auth         *AuthHandler
	Inquiry      *InquiryHandler
	Consultation *ConsultationHandler
	Project      *ProjectHandler
	Task         *TaskHandler
	Comment      *CommentHandler
	TimeEntry    *TimeEntryHandler
}

func New(svc *application.Services) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(svc.User),
		Inquiry:      NewInquiryHandler(svc.Inquiry),
		Consultation: NewConsultationHandler(svc.Consultation),
		Project:      NewProjectHandler(svc.Project),
		Task:         NewTaskHandler(svc.Task),
		Comment:      NewCommentHandler(svc.Comment),
		TimeEntry:    NewTimeEntryHandler(svc.TimeEntry),
	}
}
