package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/technova-labs/portal-go/internal/domain/project"
	"github.com/technova-labs/portal-go/internal/domain/task"
	"github.com/technova-labs/portal-go/internal/domain/user"
	"github.com/technova-labs/portal-go/internal/repository"
)

func setupProjectService(t *testing.T) (*ProjectService, user.User) {
	repos := repository.New()
	client := repos.User.Create(&user.User{Username: "acme", Email: "client@acme.com", Role: user.RoleClient})
	return NewProjectService(repos), client
}

func TestProjectCreate_UnknownClient(t *testing.T) {
	svc, _ := setupProjectService(t)

	_, err := svc.Create(project.CreateProjectInput{
		Name:        "Relaunch",
		Description: "Redesign",
		ClientID:    99,
	})
	assert.Equal(t, ErrClientNotFound, err)
}

func TestProjectCreate_ClampsProgress(t *testing.T) {
	svc, client := setupProjectService(t)

	over := 140
	p, err := svc.Create(project.CreateProjectInput{
		Name:        "Relaunch",
		Description: "Redesign",
		ClientID:    client.ID,
		Progress:    &over,
	})
	require.NoError(t, err)
	assert.Equal(t, 100, p.Progress)

	under := -5
	p, err = svc.Create(project.CreateProjectInput{
		Name:        "Audit",
		Description: "Security",
		ClientID:    client.ID,
		Progress:    &under,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, p.Progress)
}

func TestProjectList_FiltersByClient(t *testing.T) {
	repos := repository.New()
	a := repos.User.Create(&user.User{Username: "a", Email: "a@x.com"})
	b := repos.User.Create(&user.User{Username: "b", Email: "b@x.com"})
	svc := NewProjectService(repos)

	_, err := svc.Create(project.CreateProjectInput{Name: "PA", Description: "d", ClientID: a.ID})
	require.NoError(t, err)
	_, err = svc.Create(project.CreateProjectInput{Name: "PB", Description: "d", ClientID: b.ID})
	require.NoError(t, err)

	got := svc.List(&a.ID)
	require.Len(t, got, 1)
	assert.Equal(t, "PA", got[0].Name)

	assert.Len(t, svc.List(nil), 2)
}

func TestTaskCreate_RequiresExistingProject(t *testing.T) {
	repos := repository.New()
	svc := NewTaskService(repos)

	_, err := svc.Create(task.CreateTaskInput{ProjectID: 1, Title: "t", Description: "d"})
	assert.Equal(t, ErrProjectNotFound, err)
}
