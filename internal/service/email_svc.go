package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const resendEndpoint = "https://api.resend.com/emails"

// EmailMessage 一封待发送的邮件
type EmailMessage struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	Text    string   `json:"text"`
}

// EmailSender 邮件发送抽象，测试时注入 fake
type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// ==================== Resend 实现 ====================

// ResendSender 通过 Resend HTTP API 发送邮件
type ResendSender struct {
	client *resty.Client
	apiKey string
	logger *zap.Logger
}

func NewResendSender(apiKey string, logger *zap.Logger) *ResendSender {
	client := resty.New().
		SetTimeout(15 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond)
	return &ResendSender{client: client, apiKey: apiKey, logger: logger}
}

type resendError struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

func (s *ResendSender) Send(ctx context.Context, msg EmailMessage) error {
	// 没配 API key 时走模拟模式，只打日志不真正发送，方便本地开发
	if s.apiKey == "" {
		s.logger.Info("email_simulated",
			zap.Strings("to", msg.To),
			zap.String("subject", msg.Subject))
		return nil
	}

	var errBody resendError
	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(s.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(msg).
		SetError(&errBody).
		Post(resendEndpoint)
	if err != nil {
		return fmt.Errorf("resend request failed: %w", err)
	}
	if resp.IsError() {
		if errBody.Message != "" {
			return fmt.Errorf("resend API error (%d): %s", resp.StatusCode(), errBody.Message)
		}
		return fmt.Errorf("resend API error (%d)", resp.StatusCode())
	}
	return nil
}
