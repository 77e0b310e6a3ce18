package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/nstuweb/campus-backend/internal/logger"
	"github.com/nstuweb/campus-backend/internal/utils"
)

type Message struct {
	To      string
	Subject string
	Body    string
}

// Mailer is the outbound notification collaborator. Sends are
// fire-and-forget with respect to the mutation that triggered them: a
// failed send is logged and never fails the caller.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type Config struct {
	BaseURL   string
	APIKey    string
	FromEmail string
	Timeout   time.Duration
}

func ConfigFromEnv(log *logger.Logger) Config {
	timeoutSec := utils.GetEnvAsInt("MAIL_TIMEOUT_SECONDS", 15, log)
	return Config{
		BaseURL:   strings.TrimSpace(os.Getenv("MAIL_BASE_URL")),
		APIKey:    strings.TrimSpace(os.Getenv("MAIL_API_KEY")),
		FromEmail: strings.TrimSpace(os.Getenv("MAIL_FROM_EMAIL")),
		Timeout:   time.Duration(timeoutSec) * time.Second,
	}
}

// NewFromEnv returns the HTTP client when a base URL is configured and a
// logging no-op otherwise, so local runs work without a mail provider.
func NewFromEnv(log *logger.Logger) Mailer {
	cfg := ConfigFromEnv(log)
	if cfg.BaseURL == "" {
		log.Warn("MAIL_BASE_URL not set, outbound email disabled")
		return &noopMailer{log: log.With("mailer", "noop")}
	}
	return New(log, cfg)
}

type httpMailer struct {
	log    *logger.Logger
	cfg    Config
	client *http.Client
}

func New(log *logger.Logger, cfg Config) Mailer {
	return &httpMailer{
		log:    log.With("mailer", "http"),
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

type sendRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

func (m *httpMailer) Send(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(sendRequest{
		From:    m.cfg.FromEmail,
		To:      msg.To,
		Subject: msg.Subject,
		HTML:    msg.Body,
	})
	if err != nil {
		return fmt.Errorf("marshal mail payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.cfg.BaseURL+"/send", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build mail request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if m.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+m.cfg.APIKey)
	}
	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("mail provider returned %d", resp.StatusCode)
	}
	return nil
}

type noopMailer struct {
	log *logger.Logger
}

func (m *noopMailer) Send(_ context.Context, msg Message) error {
	m.log.Debug("email suppressed", "to", msg.To, "subject", msg.Subject)
	return nil
}
