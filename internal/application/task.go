package application

import (
	"github.com/technova-labs/portal-go/internal/domain/project"
	"github.com/technova-labs/portal-go/internal/domain/task"
	"github.com/technova-labs/portal-go/internal/repository"
)

type TaskService struct {
	Repos *repository.Repos
}

func NewTaskService(repos *repository.Repos) *TaskService {
	return &TaskService{Repos: repos}
}

func (s *TaskService) Create(input task.CreateTaskInput) (task.Task, error) {
	if _, err := s.Repos.Project.GetByID(input.ProjectID); err != nil {
		return task.Task{}, ErrProjectNotFound
	}

	t := task.Task{
		ProjectID:      input.ProjectID,
		Title:          input.Title,
		Description:    input.Description,
		AssigneeID:     input.AssigneeID,
		EstimatedHours: input.EstimatedHours,
		DueDate:        input.DueDate,
	}
	if input.Status != nil {
		t.Status = task.Status(*input.Status)
	}
	if input.Priority != nil {
		t.Priority = project.Priority(*input.Priority)
	}

	return s.Repos.Task.Create(&t), nil
}

func (s *TaskService) Get(id uint) (task.Task, error) {
	t, err := s.Repos.Task.GetByID(id)
	if err != nil {
		return task.Task{}, err
	}
	return t, nil
}

func (s *TaskService) List(projectID *uint) []task.Task {
	if projectID != nil {
		return s.Repos.Task.ListByProjectID(*projectID)
	}
	return s.Repos.Task.List()
}
