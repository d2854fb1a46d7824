package handler

type createAccountRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"      validate:"required,email"`
	Password  string `json:"password"   validate:"required,min=6"`
	Role      string `json:"role"       validate:"required,oneof=admin user"`
	Verified  bool   `json:"verified"`
}

type updateAccountRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"     validate:"omitempty,oneof=admin user"`
	Verified  *bool  `json:"verified"`
	Password  string `json:"password" validate:"omitempty,min=6"`
}

type resetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=6"`
}

type accountRowResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Role     string   `json:"role"`
	Verified bool     `json:"verified"`
	Actions  []string `json:"actions"`
}

type listAccountsResponse struct {
	Data []accountRowResponse `json:"data"`
}
