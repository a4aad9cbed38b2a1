package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSession_IsValid(t *testing.T) {
	user := &User{ID: "u1", Username: "alice", Role: RoleUser}

	tests := []struct {
		name    string
		session Session
		want    bool
	}{
		{"empty", Session{}, false},
		{"token without flag", Session{User: user, Token: "t"}, false},
		{"flag without token", Session{User: user, IsAuthenticated: true}, false},
		{"token without user", Session{Token: "t", IsAuthenticated: true}, false},
		{"complete", Session{User: user, Token: "t", IsAuthenticated: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.session.IsValid())
		})
	}
}

func TestSession_CloneIsDeep(t *testing.T) {
	s := Session{User: &User{ID: "u1", Username: "alice"}, Token: "t", IsAuthenticated: true}

	c := s.Clone()
	c.User.Username = "mallory"

	assert.Equal(t, "alice", s.User.Username)
}

func TestUserPatch_Apply(t *testing.T) {
	email := "new@example.com"
	u := User{ID: "u1", Username: "alice", Email: "old@example.com", Role: RoleUser}

	got := UserPatch{Email: &email}.Apply(u)

	assert.Equal(t, "new@example.com", got.Email)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, RoleUser, got.Role)
	assert.True(t, UserPatch{}.IsEmpty())
}

func TestAppointmentFilter_Matches(t *testing.T) {
	confirmed := AppointmentConfirmed
	test := AppointmentTest
	a := &Appointment{AppointmentType: AppointmentTest, Status: AppointmentConfirmed}

	assert.True(t, AppointmentFilter{}.Matches(a))
	assert.True(t, AppointmentFilter{Status: &confirmed, Type: &test}.Matches(a))

	consultation := AppointmentConsultation
	assert.False(t, AppointmentFilter{Type: &consultation}.Matches(a))
}
