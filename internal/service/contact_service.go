package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/resend/resend-go/v2"
	"github.com/techq/techq-be/internal/config"
	"github.com/techq/techq-be/internal/model"
)

const summaryLength = 100

// EmailSender delivers one rendered email and returns the provider's id.
type EmailSender interface {
	Send(ctx context.Context, email *model.OutboundEmail) (string, error)
}

// ResendSender sends mail through the Resend API.
type ResendSender struct {
	client *resend.Client
}

func NewResendSender(cfg config.EmailConfig, httpClient *http.Client) (*ResendSender, error) {
	client := resend.NewCustomClient(httpClient, cfg.APIKey)
	if cfg.BaseURL != "" {
		baseURL, err := url.Parse(cfg.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid RESEND_BASE_URL: %w", err)
		}
		client.BaseURL = baseURL
	}
	return &ResendSender{client: client}, nil
}

func (s *ResendSender) Send(ctx context.Context, email *model.OutboundEmail) (string, error) {
	resp, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    email.From,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
	})
	if err != nil {
		return "", err
	}
	return resp.Id, nil
}

type ContactService struct {
	sender EmailSender
	cfg    config.EmailConfig
	now    func() time.Time
}

func NewContactService(sender EmailSender, cfg config.EmailConfig) *ContactService {
	return &ContactService{
		sender: sender,
		cfg:    cfg,
		now:    time.Now,
	}
}

// Submit sends the business notification and the customer confirmation for a
// validated submission. Both sends are attempted; any failure is reported as
// one ErrEmailDelivery.
func (s *ContactService) Submit(ctx context.Context, sub model.ContactSubmission) (*model.ContactResult, error) {
	clean := SanitizeSubmission(sub)
	summary := SanitizeField(truncateRunes(sub.Message, summaryLength))

	businessHTML, err := renderBusinessEmail(clean, s.now())
	if err != nil {
		return nil, fmt.Errorf("render business email: %w", err)
	}
	customerHTML, err := renderCustomerEmail(clean, summary, s.cfg.BusinessInbox, s.cfg.BusinessContact)
	if err != nil {
		return nil, fmt.Errorf("render customer email: %w", err)
	}

	var result model.ContactResult
	var errs []error

	result.BusinessEmailID, err = s.sender.Send(ctx, &model.OutboundEmail{
		From:    s.cfg.FromBusiness,
		To:      []string{s.cfg.BusinessInbox},
		Subject: fmt.Sprintf("New Contact Form Submission from %s %s", clean.FirstName, clean.LastName),
		HTML:    businessHTML,
	})
	if err != nil {
		errs = append(errs, fmt.Errorf("business notification: %w", err))
	}

	// the address itself is validated, only its rendering is sanitized
	result.CustomerEmailID, err = s.sender.Send(ctx, &model.OutboundEmail{
		From:    s.cfg.FromCustomer,
		To:      []string{sub.Email},
		Subject: "Thank you for contacting Tech Q - We'll be in touch soon!",
		HTML:    customerHTML,
	})
	if err != nil {
		errs = append(errs, fmt.Errorf("customer confirmation: %w", err))
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrEmailDelivery, errors.Join(errs...))
	}
	return &result, nil
}
