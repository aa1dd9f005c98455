package repository

import (
	"sync"
	"time"

	"github.com/technova-labs/portal-go/internal/domain/comment"
)

type CommentRepo interface {
	Create(input comment.CreateCommentInput) comment.Comment
	GetByID(id uint) (comment.Comment, error)
	ListByProjectID(projectID uint) []comment.Comment
}

type MemCommentRepo struct {
	mu       sync.RWMutex
	comments map[uint]comment.Comment
	nextID   uint
}

func NewCommentRepo() *MemCommentRepo {
	return &MemCommentRepo{comments: make(map[uint]comment.Comment), nextID: 1}
}

func (r *MemCommentRepo) Create(input comment.CreateCommentInput) comment.Comment {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := comment.Comment{
		ID:        r.nextID,
		ProjectID: input.ProjectID,
		UserID:    input.UserID,
		Content:   input.Content,
		CreatedAt: time.Now(),
	}
	if input.IsInternal != nil {
		c.IsInternal = *input.IsInternal
	}
	r.nextID++
	r.comments[c.ID] = c
	return c
}

func (r *MemCommentRepo) GetByID(id uint) (comment.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.comments[id]
	if !ok {
		return comment.Comment{}, ErrNotFound
	}
	return c, nil
}

func (r *MemCommentRepo) ListByProjectID(projectID uint) []comment.Comment {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []comment.Comment
	for id := uint(1); id < r.nextID; id++ {
		if c, ok := r.comments[id]; ok && c.ProjectID == projectID {
			out = append(out, c)
		}
	}
	return out
}
