// Package service 包含了应用的业务逻辑层。
package service

import (
	"regexp"
	"strings"
)

// 邮箱需满足 local@domain.tld 结构：局部与域名为字母数字，
// 允许 -_. 作为分隔符，顶级域名为 2~3 个字母。
var emailRegex = regexp.MustCompile(`^[0-9a-zA-Z]([-_.]?[0-9a-zA-Z])*@[0-9a-zA-Z]([-_.]?[0-9a-zA-Z])*\.[a-zA-Z]{2,3}$`)

// 密码允许出现的符号集合。
const passwordSymbols = `!@#$%^&*(),.?":{}|<>`

// IsValidEmail 判断邮箱是否符合结构要求。
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidPassword 判断密码强度：
// 长度不小于 10，且必须同时包含小写字母、数字和指定符号集中的符号；
// 只允许出现字母、数字和该符号集中的字符。
func IsValidPassword(password string) bool {
	if len(password) < 10 {
		return false
	}

	var hasLower, hasDigit, hasSymbol bool
	for _, ch := range password {
		switch {
		case ch >= 'a' && ch <= 'z':
			hasLower = true
		case ch >= 'A' && ch <= 'Z':
			// 允许但不计入强度要求
		case ch >= '0' && ch <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, ch):
			hasSymbol = true
		default:
			return false
		}
	}
	return hasLower && hasDigit && hasSymbol
}
