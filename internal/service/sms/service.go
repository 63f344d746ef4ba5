// Package sms delivers text messages through a Semaphore-style Philippine
// SMS HTTP gateway. Delivery is best-effort: callers treat failures as
// log-and-continue, never as a reason to roll back a state change.
package sms

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"kabataan-backend/internal/config"
)

var ErrInvalidNumber = errors.New("phone number is not a valid Philippine mobile number")

type Service interface {
	Send(ctx context.Context, phone, message string) error
}

type service struct {
	client *http.Client
	cfg    *config.Config
}

func NewService(cfg *config.Config) Service {
	return &service{
		client: &http.Client{Timeout: 15 * time.Second},
		cfg:    cfg,
	}
}

func (s *service) Send(ctx context.Context, phone, message string) error {
	if s.cfg.SMSGatewayURL == "" {
		return errors.New("sms gateway not configured")
	}

	number, err := NormalizeGateway(phone)
	if err != nil {
		return err
	}

	form := url.Values{}
	form.Set("apikey", s.cfg.SMSAPIKey)
	form.Set("number", number)
	form.Set("message", message)
	form.Set("sendername", s.cfg.SMSSenderName)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.SMSGatewayURL, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("sms gateway returned status %d", resp.StatusCode)
	}

	return nil
}

// NormalizeE164 converts a local PH mobile number (09XXXXXXXXX) to
// +63XXXXXXXXXX. Numbers already in +63 form pass through.
func NormalizeE164(phone string) (string, error) {
	digits := strip(phone)

	switch {
	case strings.HasPrefix(digits, "+63") && len(digits) == 13:
		return digits, nil
	case strings.HasPrefix(digits, "63") && len(digits) == 12:
		return "+" + digits, nil
	case strings.HasPrefix(digits, "09") && len(digits) == 11:
		return "+63" + digits[1:], nil
	default:
		return "", ErrInvalidNumber
	}
}

// NormalizeGateway produces the 63XXXXXXXXXX form the gateway expects.
func NormalizeGateway(phone string) (string, error) {
	e164, err := NormalizeE164(phone)
	if err != nil {
		return "", err
	}
	return strings.TrimPrefix(e164, "+"), nil
}

func strip(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r == '+' || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
