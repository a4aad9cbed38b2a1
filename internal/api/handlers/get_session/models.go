package get_session

import "github.com/m04kA/MediCare-Portal/internal/domain"

// SessionResponse HTTP response model. Сам токен наружу не отдаётся.
type SessionResponse struct {
	Ready           bool         `json:"ready"`
	IsAuthenticated bool         `json:"isAuthenticated"`
	HasToken        bool         `json:"hasToken"`
	User            *domain.User `json:"user"`
}

// FromSession конвертирует сессию в HTTP response
func FromSession(s domain.Session, ready bool) *SessionResponse {
	return &SessionResponse{
		Ready:           ready,
		IsAuthenticated: s.IsAuthenticated,
		HasToken:        s.HasToken(),
		User:            s.User,
	}
}
