// repository/conversation_repository.go
package repository

import (
	"beadcraft/entity"

	"gorm.io/gorm"
)

type ConversationRepository struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) *ConversationRepository {
	return &ConversationRepository{db}
}

func (r *ConversationRepository) Create(conv *entity.Conversation) error {
	return r.db.Create(conv).Error
}

func (r *ConversationRepository) FindByToken(token string) (*entity.Conversation, error) {
	var conv entity.Conversation
	err := r.db.
		Preload("Messages", func(db *gorm.DB) *gorm.DB { return db.Order("messages.id ASC") }).
		Where("token = ?", token).
		First(&conv).Error
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

// AppendMessage adds to the thread's sequence; insertion order is the only
// ordering guarantee.
func (r *ConversationRepository) AppendMessage(msg *entity.Message) error {
	return r.db.Create(msg).Error
}
