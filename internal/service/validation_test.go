package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"a@b.com",
		"dopal2@naver.com",
		"first.last@sub.example.org",
		"user-name@my-host.kr",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), "expected valid: %s", email)
	}

	invalid := []string{
		"",
		"plain",
		"@no-local.com",
		"no-at-sign.com",
		"user@domain",
		"user@domain.toolong",
		"user@@domain.com",
		"user@domain..com",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), "expected invalid: %s", email)
	}
}

func TestIsValidPassword(t *testing.T) {
	valid := []string{
		"abcdef123!",
		"Abcdef123!",
		`abc123?":{}`,
		"zzzzzzzzz9$",
	}
	for _, password := range valid {
		assert.True(t, IsValidPassword(password), "expected valid: %s", password)
	}

	invalid := []string{
		"",
		"short1!",        // 长度不足
		"abcdefghij",     // 缺少数字和符号
		"abcdefghi1",     // 缺少符号
		"ABCDEF1234!",    // 缺少小写字母
		"abcdef123!x\n",  // 非法字符
		"abcdef 123!",    // 空格不在允许的字符集内
	}
	for _, password := range invalid {
		assert.False(t, IsValidPassword(password), "expected invalid: %q", password)
	}
}
