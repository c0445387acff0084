package services

import (
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/jeebendu/glassy-property-hunter-97/internal/config"
	"github.com/jeebendu/glassy-property-hunter-97/internal/utils"
)

// Mailer delivers verification codes over email.
type Mailer interface {
	SendVerificationCode(toEmail, code string) error
}

// SMSSender delivers verification codes over SMS.
type SMSSender interface {
	SendVerificationCode(toPhone, code string) error
}

// ---------------------------------------------------------------------
// SendGrid mailer
// ---------------------------------------------------------------------

type sendgridMailer struct {
	client *sendgrid.Client
	cfg    *config.Config
}

func NewSendGridMailer(cfg *config.Config) Mailer {
	return &sendgridMailer{
		client: sendgrid.NewSendClient(cfg.SendGridAPIKey),
		cfg:    cfg,
	}
}

func (m *sendgridMailer) SendVerificationCode(toEmail, code string) error {
	from := mail.NewEmail(m.cfg.OrganizationName, m.cfg.SendGridFrom)
	to := mail.NewEmail("", toEmail)
	subject := m.cfg.OrganizationName + " - Verification Code"
	plainTextContent := fmt.Sprintf("Your verification code is %s", code)
	htmlContent := fmt.Sprintf(verificationEmailHTML,
		"Verification Code",
		"Please use the following code to complete your sign in. This code will expire in 5 minutes.",
		code,
		time.Now().Year(),
	)
	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)

	if m.cfg.SendgridSandboxMode {
		ms := mail.NewMailSettings()
		ms.SetSandboxMode(mail.NewSetting(true))
		message.MailSettings = ms
	}

	if _, err := m.client.Send(message); err != nil {
		utils.Logger.WithError(err).Errorf("Failed to send verification email to %s via SendGrid", toEmail)
		return fmt.Errorf("%w: failed to send email via sendgrid: %v", utils.ErrExternalServiceFailure, err)
	}
	return nil
}

// ---------------------------------------------------------------------
// Twilio SMS sender
// ---------------------------------------------------------------------

type twilioSMSSender struct {
	client *twilio.RestClient
	cfg    *config.Config
}

func NewTwilioSMSSender(cfg *config.Config) SMSSender {
	return &twilioSMSSender{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		}),
		cfg: cfg,
	}
}

func (s *twilioSMSSender) SendVerificationCode(toPhone, code string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(toPhone)
	params.SetFrom(s.cfg.TwilioFromPhone)
	params.SetBody(fmt.Sprintf("Your %s verification code is %s", s.cfg.OrganizationName, code))

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		utils.Logger.WithError(err).Errorf("Failed to send verification SMS to %s via Twilio", toPhone)
		return fmt.Errorf("%w: failed to send sms via twilio: %v", utils.ErrExternalServiceFailure, err)
	}
	return nil
}
