// Package database 提供了数据库连接的构造函数。
// 连接对象由入口函数持有并注入到各个 repository 中，生命周期随进程结束。
package database

import (
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"ai-comment-go/internal/model"
)

// NewMySQL 建立 MySQL 数据库连接并返回 *gorm.DB。
// TranslateError 使唯一键冲突等驱动错误被翻译为 gorm.ErrDuplicatedKey 这类可判定错误。
func NewMySQL(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	// 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(10)           // 设置空闲连接池中连接的最大数量
	sqlDB.SetMaxOpenConns(100)          // 设置打开数据库连接的最大数量
	sqlDB.SetConnMaxLifetime(time.Hour) // 设置了连接可复用的最大时间

	return db, nil
}

// Migrate 同步应用的表结构：users、conversation、messages。
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.User{}, &model.Conversation{}, &model.Message{})
}
