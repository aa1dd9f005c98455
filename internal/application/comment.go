package application

import (
	"github.com/technova-labs/portal-go/internal/domain/comment"
	"github.com/technova-labs/portal-go/internal/repository"
)

type CommentService struct {
	Repos *repository.Repos
}

func NewCommentService(repos *repository.Repos) *CommentService {
	return &CommentService{Repos: repos}
}

func (s *CommentService) Create(input comment.CreateCommentInput) comment.Comment {
	return s.Repos.Comment.Create(input)
}

func (s *CommentService) ListByProject(projectID uint) []comment.Comment {
	return s.Repos.Comment.ListByProjectID(projectID)
}
