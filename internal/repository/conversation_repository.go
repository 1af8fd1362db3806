// Package repository 提供了数据访问层的实现。
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ai-comment-go/internal/apperr"
	"ai-comment-go/internal/model"
)

// ConversationRepository 定义了对话及消息的持久化操作。
type ConversationRepository interface {
	CreateConversation(ctx context.Context, userID uint) (*model.Conversation, error)
	CreateMessage(ctx context.Context, conversationID uint, sender, content string) (*model.Message, error)
	FindAllWithMessages(ctx context.Context) ([]model.Conversation, error)
	FindByIDWithMessages(ctx context.Context, id uint) (*model.Conversation, error)
	DeleteByIDForUser(ctx context.Context, id, userID uint) (bool, error)
}

// conversationRepository 是 ConversationRepository 接口的 GORM 实现。
type conversationRepository struct {
	db *gorm.DB
}

// NewConversationRepository 创建一个新的 ConversationRepository 实例。
func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &conversationRepository{db: db}
}

// CreateConversation 为指定用户新建一条对话记录。
func (r *conversationRepository) CreateConversation(ctx context.Context, userID uint) (*model.Conversation, error) {
	conversation := &model.Conversation{UserID: userID}
	if err := r.db.WithContext(ctx).Create(conversation).Error; err != nil {
		return nil, apperr.Wrap(apperr.KindStorage, "创建对话失败", err)
	}
	return conversation, nil
}

// CreateMessage 向指定对话追加一条消息。
func (r *conversationRepository) CreateMessage(ctx context.Context, conversationID uint, sender, content string) (*model.Message, error) {
	message := &model.Message{
		ConversationID: conversationID,
		Sender:         sender,
		Content:        content,
	}
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		return nil, apperr.Wrap(apperr.KindStorage, "保存消息失败", err)
	}
	return message, nil
}

// FindAllWithMessages 返回全部对话，最新的在前；
// 每条对话内的消息按创建时间升序排列，时间相同时按插入顺序。
func (r *conversationRepository) FindAllWithMessages(ctx context.Context) ([]model.Conversation, error) {
	var conversations []model.Conversation
	err := r.db.WithContext(ctx).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		Order("created_at DESC, id DESC").
		Find(&conversations).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStorage, "查询对话列表失败", err)
	}
	return conversations, nil
}

// FindByIDWithMessages 按 ID 查找一条对话及其全部消息。
func (r *conversationRepository) FindByIDWithMessages(ctx context.Context, id uint) (*model.Conversation, error) {
	var conversation model.Conversation
	err := r.db.WithContext(ctx).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		First(&conversation, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "对话不存在")
		}
		return nil, apperr.Wrap(apperr.KindStorage, "查询对话失败", err)
	}
	return &conversation, nil
}

// DeleteByIDForUser 删除指定用户名下的一条对话及其消息。
// 返回值指示对话是否确实属于该用户并被删除。
func (r *conversationRepository) DeleteByIDForUser(ctx context.Context, id, userID uint) (bool, error) {
	var deleted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 先锁定并校验归属；消息表持有指向对话的外键，
		// 必须先删子表再删父表
		var conversation model.Conversation
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND user_id = ?", id, userID).
			First(&conversation).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if err := tx.Where("conversation_id = ?", id).Delete(&model.Message{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Conversation{}, id).Error; err != nil {
			return err
		}
		deleted = true
		return nil
	})
	if err != nil {
		return false, apperr.Wrap(apperr.KindStorage, "删除对话失败", err)
	}
	return deleted, nil
}
