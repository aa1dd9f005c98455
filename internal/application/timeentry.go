package application

import (
	"github.com/technova-labs/portal-go/internal/domain/timeentry"
	"github.com/technova-labs/portal-go/internal/repository"
)

type TimeEntryService struct {
	Repos *repository.Repos
}

func NewTimeEntryService(repos *repository.Repos) *TimeEntryService {
	return &TimeEntryService{Repos: repos}
}

func (s *TimeEntryService) Create(input timeentry.CreateEntryInput) (timeentry.Entry, error) {
	if _, err := s.Repos.Project.GetByID(input.ProjectID); err != nil {
		return timeentry.Entry{}, ErrProjectNotFound
	}
	return s.Repos.TimeEntry.Create(input), nil
}

func (s *TimeEntryService) List(projectID, userID *uint) []timeentry.Entry {
	return s.Repos.TimeEntry.List(repository.TimeEntryFilter{
		ProjectID: projectID,
		UserID:    userID,
	})
}
