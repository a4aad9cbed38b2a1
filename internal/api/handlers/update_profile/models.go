package update_profile

import "github.com/m04kA/MediCare-Portal/internal/domain"

// UpdateProfileRequest HTTP request model. Роль через профиль не меняется.
type UpdateProfileRequest struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
}

// ToPatch конвертирует HTTP запрос в domain.UserPatch
func (r *UpdateProfileRequest) ToPatch() domain.UserPatch {
	return domain.UserPatch{Username: r.Username, Email: r.Email}
}
