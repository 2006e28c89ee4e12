// services/conversation_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"beadcraft/entity"
	"beadcraft/pkg/apperr"
	"beadcraft/pkg/mailer"
	"beadcraft/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ConversationService struct {
	repo   *repository.ConversationRepository
	mailer mailer.Mailer
	appURL string
	log    *zap.Logger
}

func NewConversationService(repo *repository.ConversationRepository, m mailer.Mailer, appURL string, log *zap.Logger) *ConversationService {
	return &ConversationService{repo: repo, mailer: m, appURL: appURL, log: log}
}

type StartConversationReq struct {
	Message         string `json:"message"`
	Email           string `json:"email"`
	ProductName     string `json:"productName"`
	ProductPrice    int64  `json:"productPrice"`
	ProductImageURL string `json:"productImage"`
}

// Start opens a thread: allocates an unguessable token, persists the header
// with the initiating customer message, and notifies the merchant. The
// caller must surface the token to the customer as a durable link.
func (s *ConversationService) Start(req *StartConversationReq) (*entity.Conversation, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, apperr.Validation("message is required")
	}

	conv := &entity.Conversation{
		Token:           uuid.New().String(),
		Email:           strings.TrimSpace(req.Email),
		ProductName:     req.ProductName,
		ProductPrice:    req.ProductPrice,
		ProductImageURL: req.ProductImageURL,
		Messages: []entity.Message{
			{Body: req.Message, Sender: entity.SenderCustomer},
		},
	}
	if err := s.repo.Create(conv); err != nil {
		return nil, apperr.Dependency("create conversation", err)
	}

	go s.notifyMerchant(conv, req.Message, "New order inquiry")

	return conv, nil
}

// Append adds a message to the thread. Customer messages additionally
// trigger a best-effort merchant email; a failed send is logged and never
// fails the append.
func (s *ConversationService) Append(token, body, sender string) (*entity.Message, error) {
	if strings.TrimSpace(body) == "" {
		return nil, apperr.Validation("message is required")
	}
	if sender != entity.SenderCustomer && sender != entity.SenderMerchant {
		return nil, apperr.Validation("unknown sender")
	}

	conv, err := s.repo.FindByToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("conversation not found")
		}
		return nil, apperr.Dependency("lookup conversation", err)
	}

	msg := &entity.Message{ConversationID: conv.ID, Body: body, Sender: sender}
	if err := s.repo.AppendMessage(msg); err != nil {
		return nil, apperr.Dependency("append message", err)
	}

	if sender == entity.SenderCustomer {
		subject := "New customer reply"
		if conv.Email != "" {
			subject = fmt.Sprintf("Reply from %s: %s", conv.Email, conv.ProductName)
		}
		go s.notifyMerchant(conv, body, subject)
	}

	return msg, nil
}

// Get returns the thread header plus its full message sequence in insertion
// order. Both participants poll this.
func (s *ConversationService) Get(token string) (*entity.Conversation, error) {
	conv, err := s.repo.FindByToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("conversation not found")
		}
		return nil, apperr.Dependency("lookup conversation", err)
	}
	return conv, nil
}

func (s *ConversationService) notifyMerchant(conv *entity.Conversation, body, subject string) {
	link := fmt.Sprintf("%s/chat/%s", s.appURL, conv.Token)
	text := fmt.Sprintf("%s\n\nView conversation: %s", body, link)
	if err := s.mailer.Send(subject, text); err != nil {
		s.log.Warn("merchant notification failed",
			zap.String("token", conv.Token),
			zap.Error(err),
		)
	}
}
