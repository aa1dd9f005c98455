package comment

type CreateCommentInput struct {
	ProjectID  uint   `json:"projectId" binding:"required" example:"1"`
	UserID     uint   `json:"userId" binding:"required" example:"1"`
	Content    string `json:"content" binding:"required" example:"Kickoff call went well."`
	IsInternal *bool  `json:"isInternal,omitempty" example:"false"`
}
