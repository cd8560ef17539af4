package dto

// RegisterForm carries the registration payload. Fields stay strings so the
// form can be re-rendered with the submitted values on validation failure.
type RegisterForm struct {
	Username        string `form:"username" json:"username"`
	Password        string `form:"password" json:"password"`
	ConfirmPassword string `form:"confirmPassword" json:"confirmPassword"`
}

type LoginForm struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}
