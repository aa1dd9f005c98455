package application

import (
	"errors"

	"github.com/technova-labs/portal-go/internal/domain/project"
	"github.com/technova-labs/portal-go/internal/repository"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrClientNotFound  = errors.New("client does not exist")
)

type ProjectService struct {
	Repos *repository.Repos
}

func NewProjectService(repos *repository.Repos) *ProjectService {
	return &ProjectService{Repos: repos}
}

// Create resolves defaults and clamps progress into [0,100]. The client
// reference is checked here; the store itself does not enforce foreign keys.
func (s *ProjectService) Create(input project.CreateProjectInput) (project.Project, error) {
	if _, err := s.Repos.User.GetByID(input.ClientID); err != nil {
		return project.Project{}, ErrClientNotFound
	}

	p := project.Project{
		Name:           input.Name,
		Description:    input.Description,
		ClientID:       input.ClientID,
		ManagerID:      input.ManagerID,
		Budget:         input.Budget,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		EstimatedHours: input.EstimatedHours,
	}
	if input.Status != nil {
		p.Status = project.Status(*input.Status)
	}
	if input.Priority != nil {
		p.Priority = project.Priority(*input.Priority)
	}
	if input.Progress != nil {
		p.Progress = *input.Progress
		if p.Progress < 0 {
			p.Progress = 0
		}
		if p.Progress > 100 {
			p.Progress = 100
		}
	}

	return s.Repos.Project.Create(&p), nil
}

func (s *ProjectService) Get(id uint) (project.Project, error) {
	p, err := s.Repos.Project.GetByID(id)
	if err != nil {
		return project.Project{}, ErrProjectNotFound
	}
	return p, nil
}

// List returns all projects, or only the given client's when clientID is set.
func (s *ProjectService) List(clientID *uint) []project.Project {
	if clientID != nil {
		return s.Repos.Project.ListByClientID(*clientID)
	}
	return s.Repos.Project.List()
}
