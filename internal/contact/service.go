package contact

import (
	"errors"
	"log"
)

var ErrForbidden = errors.New("acting admin required")

type Service struct {
	repo   Repository
	mailer Mailer
}

func NewService(repo Repository, mailer Mailer) *Service {
	return &Service{repo: repo, mailer: mailer}
}

// Submit stores the message and then notifies the operator. Notification is
// best effort: a mail failure is logged but the submission still succeeds.
func (s *Service) Submit(cmd Command) (Message, error) {
	created, err := s.repo.Create(Message{
		Name:    optional(cmd.Name),
		Email:   optional(cmd.Email),
		Phone:   optional(cmd.Phone),
		Subject: optional(cmd.Subject),
		Message: cmd.Message,
	})
	if err != nil {
		return Message{}, err
	}

	if err := s.mailer.Notify(created); err != nil {
		log.Printf("contact notification failed for message #%d: %v", created.ID, err)
	}
	return created, nil
}

func (s *Service) List(page, perPage int) ([]Message, int, error) {
	return s.repo.List(page, perPage)
}

func (s *Service) GetByID(id int) (Message, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Delete(actor, id int) error {
	if actor <= 0 {
		return ErrForbidden
	}
	return s.repo.Delete(id)
}
