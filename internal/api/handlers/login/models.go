package login

import "github.com/m04kA/MediCare-Portal/internal/domain"

// LoginRequest HTTP request model
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse HTTP response model. Токен остаётся на сервере в сессии.
type LoginResponse struct {
	User            domain.User `json:"user"`
	IsAuthenticated bool        `json:"isAuthenticated"`
}
