package user

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrForbidden is returned when a mutating call arrives without an acting
// admin.
var ErrForbidden = errors.New("acting admin required")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(page, perPage int) ([]User, int, error) {
	return s.repo.List(page, perPage)
}

func (s *Service) GetByID(id int) (User, error) {
	return s.repo.GetByID(id)
}

// Create hashes the password one-way before storage; the clear text never
// leaves this call.
func (s *Service) Create(actor int, cmd Command) (User, error) {
	if actor <= 0 {
		return User{}, ErrForbidden
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	return s.repo.Create(User{
		Name:     cmd.Name,
		Email:    cmd.Email,
		Password: string(hashed),
	})
}

// Update with a blank password keeps the stored hash unchanged.
func (s *Service) Update(actor, id int, cmd Command) (User, error) {
	if actor <= 0 {
		return User{}, ErrForbidden
	}

	existing, err := s.repo.GetByID(id)
	if err != nil {
		return User{}, err
	}

	u := existing
	u.Name = cmd.Name
	u.Email = cmd.Email
	if cmd.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
		if err != nil {
			return User{}, err
		}
		u.Password = string(hashed)
	}

	return s.repo.Update(id, u)
}

func (s *Service) Delete(actor, id int) error {
	if actor <= 0 {
		return ErrForbidden
	}
	return s.repo.Delete(id)
}

// Authenticate checks credentials for sign-in.
func (s *Service) Authenticate(email, password string) (User, error) {
	u, err := s.repo.GetByEmail(email)
	if err != nil {
		return User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}
