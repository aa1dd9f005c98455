package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/technova-labs/portal-go/internal/domain/project"
	"github.com/technova-labs/portal-go/internal/domain/task"
	"github.com/technova-labs/portal-go/internal/domain/timeentry"
)

func TestProjectCreate_Defaults(t *testing.T) {
	repo := NewProjectRepo()

	p := repo.Create(&project.Project{
		Name:        "Website Relaunch",
		Description: "Redesign",
		ClientID:    1,
		Budget:      25000,
	})

	assert.Equal(t, uint(1), p.ID)
	assert.Equal(t, project.StatusPlanning, p.Status)
	assert.Equal(t, project.PriorityMedium, p.Priority)
	assert.Zero(t, p.Spent)
	assert.Zero(t, p.ActualHours)
	assert.Zero(t, p.Progress)
	assert.False(t, p.CreatedAt.IsZero())
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)
}

func TestProjectListByClientID_ExactSubset(t *testing.T) {
	repo := NewProjectRepo()

	a1 := repo.Create(&project.Project{Name: "A1", ClientID: 1})
	repo.Create(&project.Project{Name: "B1", ClientID: 2})
	a2 := repo.Create(&project.Project{Name: "A2", ClientID: 1})

	got := repo.ListByClientID(1)
	require.Len(t, got, 2)
	assert.Equal(t, a1.ID, got[0].ID)
	assert.Equal(t, a2.ID, got[1].ID)

	assert.Len(t, repo.ListByClientID(2), 1)
	assert.Empty(t, repo.ListByClientID(3))
}

func TestProjectGet_UnknownID(t *testing.T) {
	repo := NewProjectRepo()

	_, err := repo.GetByID(7)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskListByProjectID_ExcludesOtherProjects(t *testing.T) {
	repo := NewTaskRepo()

	t1 := repo.Create(&task.Task{ProjectID: 1, Title: "a", Description: "d"})
	repo.Create(&task.Task{ProjectID: 2, Title: "b", Description: "d"})
	t3 := repo.Create(&task.Task{ProjectID: 1, Title: "c", Description: "d"})

	got := repo.ListByProjectID(1)
	require.Len(t, got, 2)
	assert.Equal(t, t1.ID, got[0].ID)
	assert.Equal(t, t3.ID, got[1].ID)
}

func TestTaskCreate_Defaults(t *testing.T) {
	repo := NewTaskRepo()

	created := repo.Create(&task.Task{ProjectID: 1, Title: "a", Description: "d"})
	assert.Equal(t, task.StatusTodo, created.Status)
	assert.Equal(t, project.PriorityMedium, created.Priority)
	assert.Zero(t, created.ActualHours)
}

func TestTimeEntryList_Filters(t *testing.T) {
	repo := NewTimeEntryRepo()

	repo.Create(timeentry.CreateEntryInput{ProjectID: 1, UserID: 1, Description: "a", Hours: 2, Date: "2026-08-01"})
	repo.Create(timeentry.CreateEntryInput{ProjectID: 1, UserID: 2, Description: "b", Hours: 3, Date: "2026-08-02"})
	repo.Create(timeentry.CreateEntryInput{ProjectID: 2, UserID: 1, Description: "c", Hours: 4, Date: "2026-08-03"})

	one := uint(1)
	two := uint(2)

	assert.Len(t, repo.List(TimeEntryFilter{}), 3)
	assert.Len(t, repo.List(TimeEntryFilter{ProjectID: &one}), 2)
	assert.Len(t, repo.List(TimeEntryFilter{UserID: &one}), 2)

	both := repo.List(TimeEntryFilter{ProjectID: &one, UserID: &two})
	require.Len(t, both, 1)
	assert.Equal(t, "b", both[0].Description)
}
