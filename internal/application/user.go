package application

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/technova-labs/portal-go/internal/api/middleware"
	"github.com/technova-labs/portal-go/internal/domain/user"
	"github.com/technova-labs/portal-go/internal/repository"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrPasswordHashFailure = errors.New("failed to hash password")
)

type UserService struct {
	Repos *repository.Repos
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{Repos: repos}
}

// Register creates a portal account. Username and email uniqueness is enforced
// here; the store itself accepts anything, so this service must stay the only
// write path for users.
func (s *UserService) Register(input user.RegisterInput) (user.User, error) {
	if _, err := s.Repos.User.GetByUsername(input.Username); err == nil {
		return user.User{}, ErrUsernameTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return user.User{}, err
	}
	if _, err := s.Repos.User.GetByEmail(input.Email); err == nil {
		return user.User{}, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return user.User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, ErrPasswordHashFailure
	}

	u := user.User{
		Username:  input.Username,
		Password:  string(hashed),
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
		Company:   input.Company,
		Role:      user.RoleClient,
	}
	if input.Role != nil {
		u.Role = user.Role(*input.Role)
	}

	return s.Repos.User.Create(&u), nil
}

func (s *UserService) Login(username, password string) (user.User, string, error) {
	u, err := s.Repos.User.GetByUsername(username)
	if err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(u.ID, u.Username, string(u.Role), 24*time.Hour)
	if err != nil {
		return user.User{}, "", err
	}

	return u, token, nil
}

func (s *UserService) GetUser(id uint) (user.User, error) {
	u, err := s.Repos.User.GetByID(id)
	if err != nil {
		return user.User{}, ErrUserNotFound
	}
	return u, nil
}
