package services

import (
	"errors"
	"strings"
	"time"

	"github.com/ludomankaaaa-hub/Project-Canteen-predprof/entity"
	"github.com/ludomankaaaa-hub/Project-Canteen-predprof/repository"
	"github.com/ludomankaaaa-hub/Project-Canteen-predprof/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken      = errors.New("username already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
)

// AuthService handles registration, login and profile lookups.
type AuthService struct {
	DB          *gorm.DB
	UserRepo    *repository.UserRepository
	StudentRepo *repository.StudentRepository
	jwtSecret   string
	jwtTTL      time.Duration
}

func NewAuthService(db *gorm.DB, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		DB:          db,
		UserRepo:    repository.NewUserRepository(db),
		StudentRepo: repository.NewStudentRepository(db),
		jwtSecret:   secret,
		jwtTTL:      ttl,
	}
}

type RegisterIn struct {
	Username    string
	Password    string
	Role        entity.Role
	Email       string
	Grade       string
	Allergies   string
	Preferences string
}

// Register creates a user, and for students the one-to-one profile in the
// same transaction, so a student user never exists without a profile.
func (s *AuthService) Register(in RegisterIn) (*entity.User, error) {
	username := strings.ToLower(strings.TrimSpace(in.Username))
	if !in.Role.Valid() {
		return nil, ErrInvalidRole
	}

	count, err := s.UserRepo.CountByUsername(username)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	user := &entity.User{
		Username: username,
		Password: string(hashed),
		Email:    strings.TrimSpace(in.Email),
		Role:     in.Role,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.UserRepo.Create(tx, user); err != nil {
			return err
		}
		if in.Role == entity.RoleStudent {
			student := &entity.Student{
				UserID:      user.ID,
				Grade:       strings.TrimSpace(in.Grade),
				Allergies:   strings.TrimSpace(in.Allergies),
				Preferences: strings.TrimSpace(in.Preferences),
				Balance:     0,
			}
			if err := s.StudentRepo.Create(tx, student); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and mints a JWT.
func (s *AuthService) Login(username, password string) (string, *entity.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	user, err := s.UserRepo.FindByUsername(username)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}

	return token, user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, *entity.Student, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, nil, err
	}
	if user.Role != entity.RoleStudent {
		return user, nil, nil
	}
	student, err := s.StudentRepo.FindByUserID(userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, err
	}
	return user, student, nil
}
