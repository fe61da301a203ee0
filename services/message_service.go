//go:generate go run go.uber.org/mock/mockgen -source=message_service.go -destination=../mocks/mock_message_service.go -package=mocks
package services

import (
	"fmt"
	"strings"

	"speech-x-text/domain"
	"speech-x-text/errors"
	"speech-x-text/repositories"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type IMessageService interface {
	Create(text string) (domain.Message, error)
	List() ([]domain.Message, error)
	Get(id int) (domain.Message, error)
	Update(id int, text string) (domain.Message, error)
	Delete(id int) (domain.Message, error)
}

// MessageService validates input before it reaches the store.
type MessageService struct {
	repository repositories.IMessageRepository
}

type textInput struct {
	Text string `validate:"required"`
}

func NewMessageService(repository repositories.IMessageRepository) *MessageService {
	return &MessageService{repository: repository}
}

// ValidateText trims the text and rejects it when nothing is left.
func ValidateText(text string) (string, error) {
	input := textInput{Text: strings.TrimSpace(text)}
	if err := validate.Struct(input); err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrValidation, err)
	}
	return input.Text, nil
}

func (s *MessageService) Create(text string) (domain.Message, error) {
	trimmed, err := ValidateText(text)
	if err != nil {
		return domain.Message{}, err
	}
	return s.repository.Create(trimmed)
}

func (s *MessageService) List() ([]domain.Message, error) {
	return s.repository.List()
}

func (s *MessageService) Get(id int) (domain.Message, error) {
	return s.repository.Get(id)
}

// Update validates first, so an invalid text on an unknown id is a
// validation error rather than a missing message.
func (s *MessageService) Update(id int, text string) (domain.Message, error) {
	trimmed, err := ValidateText(text)
	if err != nil {
		return domain.Message{}, err
	}
	return s.repository.Update(id, trimmed)
}

func (s *MessageService) Delete(id int) (domain.Message, error) {
	return s.repository.Delete(id)
}
