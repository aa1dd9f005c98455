package inquiry

type CreateInquiryInput struct {
	FirstName string `json:"firstName" binding:"required" example:"Jane"`
	LastName  string `json:"lastName" binding:"required" example:"Doe"`
	Email     string `json:"email" binding:"required,email" example:"jane@acme.com"`
	Phone     string `json:"phone" binding:"required" example:"+1 555 010 0199"`
	Service   string `json:"service" binding:"required" example:"Cloud Migration"`
	Message   string `json:"message" binding:"required" example:"We need help moving to AWS."`
}
