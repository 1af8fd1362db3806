// Package model 定义了与数据库表对应的 Go 结构体。
package model

import "time"

// User 定义了 users 表的 ORM 模型。
// 密码字段只保存 bcrypt 哈希，序列化时永远不输出。
type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Password     string    `gorm:"type:varchar(300);not null" json:"-"`
	Nickname     string    `gorm:"type:varchar(200);not null;uniqueIndex" json:"nickname"`
	ProfileImage string    `gorm:"type:varchar(2048)" json:"profileImage,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// TableName 指定了此模型在数据库中对应的表名。
func (User) TableName() string {
	return "users"
}
