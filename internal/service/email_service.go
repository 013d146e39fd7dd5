package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"

	"taralog/internal/config"
	"taralog/internal/model"
	"taralog/internal/repository"
)

const emailKindWelcome = "welcome"

// EmailService sends transactional mail. Every attempt is recorded in the
// email log, successful or not.
type EmailService interface {
	SendWelcome(ctx context.Context, userID *uint, to, firstName string) error
}

type emailService struct {
	cfg     *config.Config
	logRepo repository.EmailLogRepository
	log     zerolog.Logger
	send    func(m ...*gomail.Message) error
}

// NewEmailService builds an SMTP-backed email service. Sending is a no-op
// when SMTP is not configured.
func NewEmailService(cfg *config.Config, logRepo repository.EmailLogRepository, log zerolog.Logger) EmailService {
	s := &emailService{cfg: cfg, logRepo: logRepo, log: log}
	if cfg.SMTPHost != "" {
		dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
		s.send = dialer.DialAndSend
	}
	return s
}

// SendWelcome delivers the post-registration welcome mail.
func (s *emailService) SendWelcome(ctx context.Context, userID *uint, to, firstName string) error {
	if s.send == nil {
		s.log.Debug().Str("to", to).Msg("smtp not configured, skipping welcome email")
		return nil
	}

	greeting := firstName
	if greeting == "" {
		greeting = "there"
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.SMTPFrom)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Welcome to AI Taralog")
	m.SetBody("text/html", fmt.Sprintf(
		"<h2>Welcome to AI Taralog</h2><p>Hi %s! Your account is ready.</p><p>You can now log in and start your readings.</p>",
		greeting,
	))

	entry := &model.EmailLog{
		UserID:   userID,
		To:       to,
		Kind:     emailKindWelcome,
		Provider: "smtp",
		Status:   model.EmailStatusSent,
	}

	sendErr := s.send(m)
	if sendErr != nil {
		entry.Status = model.EmailStatusFailed
		entry.Error = sendErr.Error()
		s.log.Error().Err(sendErr).Str("to", to).Msg("welcome email failed")
	}
	if err := s.logRepo.Create(ctx, entry); err != nil {
		s.log.Error().Err(err).Str("to", to).Msg("record email log failed")
	}
	return sendErr
}
