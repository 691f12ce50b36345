package service

import (
	"testing"

	"moneybook/config"

	"github.com/stretchr/testify/assert"
)

func newTestEmailService() *EmailService {
	return NewEmailService(&config.EmailConfig{})
}

func TestSendResetCodeEmailDisabled(t *testing.T) {
	s := newTestEmailService()

	// 未启用邮件服务时直接报错，不尝试连接
	err := s.SendResetCodeEmail("test@example.com", "张三", "123456")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "未启用")
}

func TestGenerateResetCodeEmailBody(t *testing.T) {
	s := newTestEmailService()
	body := s.generateResetCodeEmailBody("张三", "123456")
	assert.Contains(t, body, "张三")
	assert.Contains(t, body, "123456")
	assert.Contains(t, body, "密码重置")
	assert.Contains(t, body, "10 分钟")
}
