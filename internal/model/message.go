package model

import "time"

// 消息发送方标记。一条提问对应一条 user 消息和一条 ai 消息，
// 但存储层只保证引用完整性，不强制交替顺序。
const (
	SenderUser = "user"
	SenderAI   = "ai"
)

// MaxMessageLength 是单条消息内容的最大长度，与 content 列宽一致。
const MaxMessageLength = 2000

// Message 代表对话中的一条消息（用户提问或 AI 回答）。
type Message struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ConversationID uint      `gorm:"index;not null" json:"conversationId"`
	Sender         string    `gorm:"type:enum('user','ai');not null" json:"sender"`
	Content        string    `gorm:"type:varchar(2000);not null" json:"content"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// TableName 指定了此模型在数据库中对应的表名。
func (Message) TableName() string {
	return "messages"
}
