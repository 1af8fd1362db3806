package model

import "time"

// Conversation 代表一次提问产生的聊天线程，归属于一个用户。
// 每次向 AI 提问都会新建一条记录，而不是续写旧线程。
type Conversation struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"userId"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	Messages  []Message `gorm:"foreignKey:ConversationID" json:"messages"`
}

// TableName 指定了此模型在数据库中对应的表名。
func (Conversation) TableName() string {
	return "conversation"
}
