package user

type RegisterInput struct {
	Username  string  `json:"username" binding:"required,min=3,max=50" example:"acme-client"`
	Password  string  `json:"password" binding:"required,min=6" example:"password123"`
	Email     string  `json:"email" binding:"required,email" example:"client@acme.com"`
	FirstName *string `json:"first_name,omitempty" example:"Jane"`
	LastName  *string `json:"last_name,omitempty" example:"Doe"`
	Phone     *string `json:"phone,omitempty" example:"+1 555 010 0199"`
	Company   *string `json:"company,omitempty" example:"Acme Corp"`
	Role      *string `json:"role,omitempty" binding:"omitempty,oneof=client admin manager" example:"client"`
}

type LoginInput struct {
	Username string `json:"username" binding:"required" example:"acme-client"`
	Password string `json:"password" binding:"required" example:"password123"`
}
