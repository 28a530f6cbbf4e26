package dto

/* ===================== REQUESTS ===================== */

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginGoogleRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

/* ===================== RESPONSES ===================== */

type LoginResponse struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	ExpiresIn   int64    `json:"expires_in"`
	User        UserLite `json:"user"`
}

type UserLite struct {
	ID       uint   `json:"id"`
	UserName string `json:"user_name"`
	Email    string `json:"email"`
}
