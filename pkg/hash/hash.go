// Package hash 封装了密码哈希与校验。
package hash

import "golang.org/x/crypto/bcrypt"

// bcrypt 代价因子，与既有用户数据保持一致，不可随意调低。
const cost = 10

// HashPassword 对明文密码做 bcrypt 哈希。
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(bytes), err
}

// CheckPasswordHash 校验明文密码与哈希是否匹配。
func CheckPasswordHash(password, hashed string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
	return err == nil
}
