package services

import (
	"testing"
	"time"

	"github.com/ludomankaaaa-hub/Project-Canteen-predprof/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterStudentCreatesProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "secret", time.Hour)

	user, err := svc.Register(RegisterIn{
		Username:    "  Petya ",
		Password:    "secret123",
		Role:        entity.RoleStudent,
		Grade:       "10A",
		Allergies:   "nuts",
		Preferences: "vegetarian",
	})
	require.NoError(t, err)
	assert.Equal(t, "petya", user.Username)

	var student entity.Student
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&student).Error)
	assert.Equal(t, "10A", student.Grade)
	assert.Equal(t, 0.0, student.Balance)
}

func TestRegisterNonStudentHasNoProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "secret", time.Hour)

	user, err := svc.Register(RegisterIn{Username: "chef", Password: "secret123", Role: entity.RoleCook})
	require.NoError(t, err)

	var cnt int64
	require.NoError(t, db.Model(&entity.Student{}).Where("user_id = ?", user.ID).Count(&cnt).Error)
	assert.Equal(t, int64(0), cnt)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "secret", time.Hour)

	_, err := svc.Register(RegisterIn{Username: "petya", Password: "secret123", Role: entity.RoleStudent})
	require.NoError(t, err)

	_, err = svc.Register(RegisterIn{Username: "Petya", Password: "other456", Role: entity.RoleCook})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestRegisterInvalidRole(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "secret", time.Hour)

	_, err := svc.Register(RegisterIn{Username: "x", Password: "secret123", Role: "rider"})
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "secret", time.Hour)

	_, err := svc.Register(RegisterIn{Username: "petya", Password: "secret123", Role: entity.RoleStudent})
	require.NoError(t, err)

	token, user, err := svc.Login("petya", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, entity.RoleStudent, user.Role)

	_, _, err = svc.Login("petya", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("nobody", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "secret", time.Hour)

	u, err := svc.Register(RegisterIn{Username: "petya", Password: "secret123", Role: entity.RoleStudent, Grade: "10A"})
	require.NoError(t, err)

	user, student, err := svc.GetProfile(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "petya", user.Username)
	require.NotNil(t, student)
	assert.Equal(t, "10A", student.Grade)
}
