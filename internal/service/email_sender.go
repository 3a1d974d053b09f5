package service

import (
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/xxxsen/renthub/internal/config"
)

type EmailSender interface {
	Send(to, subject, body string) error
}

type smtpSender struct {
	from   string
	dialer *gomail.Dialer
}

func NewEmailSender(cfg config.MailConfig) EmailSender {
	return &smtpSender{
		from:   strings.TrimSpace(cfg.From),
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

func (s *smtpSender) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	return s.dialer.DialAndSend(msg)
}
