package domain

// Role is the authorization role carried by a user
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User is the identity of the logged-in account
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

// UserPatch carries a partial profile update; nil fields are left untouched
type UserPatch struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Role     *Role   `json:"role,omitempty"`
}

// IsEmpty returns true if the patch changes nothing
func (p UserPatch) IsEmpty() bool {
	return p.Username == nil && p.Email == nil && p.Role == nil
}

// Apply merges the patch into a copy of u
func (p UserPatch) Apply(u User) User {
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	return u
}

// Session is the client-held record of the logged-in identity and credential
type Session struct {
	User            *User  `json:"user"`
	Token           string `json:"token,omitempty"`
	IsAuthenticated bool   `json:"isAuthenticated"`
}

// HasToken returns true if a bearer credential is present
func (s Session) HasToken() bool {
	return s.Token != ""
}

// IsValid returns true when the flag, the token and the user are all present
func (s Session) IsValid() bool {
	return s.IsAuthenticated && s.HasToken() && s.User != nil
}

// HasRole returns true if the session user carries the given role
func (s Session) HasRole(role Role) bool {
	return s.User != nil && s.User.Role == role
}

// IsEmpty returns true for the logged-out state
func (s Session) IsEmpty() bool {
	return s.User == nil && s.Token == "" && !s.IsAuthenticated
}

// Clone returns a deep copy so callers cannot mutate shared state
func (s Session) Clone() Session {
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}
