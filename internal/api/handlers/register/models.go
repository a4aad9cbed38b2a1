package register

import "github.com/m04kA/MediCare-Portal/internal/domain"

// RegisterRequest HTTP request model
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse HTTP response model
type RegisterResponse struct {
	User            domain.User `json:"user"`
	IsAuthenticated bool        `json:"isAuthenticated"`
}
