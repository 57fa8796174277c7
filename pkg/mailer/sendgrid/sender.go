package sendgrid

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrymomot/multimail/pkg/mailer"
)

// Sender implements mailer.Sender using the SendGrid Web API.
// It is safe for concurrent use: deliveries only read its settings.
type Sender struct {
	client   *http.Client
	settings url.Values
	endpoint string
}

// New creates a SendGrid sender.
// Returns an error wrapping mailer.ErrMissingCredentials if APIUser or APIKey is empty.
func New(cfg Config, opts ...Option) (*Sender, error) {
	if cfg.APIUser == "" {
		return nil, ErrMissingAPIUser
	}
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	o := options{
		httpClient: http.DefaultClient,
		endpoint:   DefaultEndpoint,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.httpClient == nil {
		o.httpClient = http.DefaultClient
	}

	settings, err := buildSettings(cfg)
	if err != nil {
		return nil, err
	}

	return &Sender{
		client:   o.httpClient,
		settings: settings,
		endpoint: o.endpoint,
	}, nil
}

// buildSettings copies the config into request parameters, with the
// credentials, the canonical x-smtpapi entry and the return_response flag.
func buildSettings(cfg Config) (url.Values, error) {
	settings := make(url.Values, len(cfg.Params)+3)
	returnResponse := cfg.ReturnResponse

	smtpapi, err := encodeSMTPAPI(cfg.SMTPAPI)
	if err != nil {
		return nil, errors.Join(ErrInvalidSMTPAPI, err)
	}

	for key, value := range cfg.Params {
		switch key {
		case fieldSMTPAPI:
			encoded, err := encodeSMTPAPI(value)
			if err != nil {
				return nil, errors.Join(ErrInvalidSMTPAPI, err)
			}
			if encoded != "" {
				smtpapi = encoded
			}
			continue
		case paramReturnResponse:
			returnResponse = returnResponse || truthy(value)
			continue
		}

		values, err := formValues(value)
		if err != nil {
			return nil, errors.Join(ErrInvalidParam, fmt.Errorf("%s: %w", key, err))
		}
		if values != nil {
			settings[key] = values
		}
	}

	if smtpapi != "" {
		settings.Set(fieldSMTPAPI, smtpapi)
	}

	settings.Set("api_user", cfg.APIUser)
	settings.Set("api_key", cfg.APIKey)
	if returnResponse {
		settings.Set(paramReturnResponse, "true")
	}
	return settings, nil
}

func truthy(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		b, err := strconv.ParseBool(val)
		return err == nil && b
	default:
		return false
	}
}

// Settings returns a copy of the parameters sent with every delivery,
// including credentials and the return_response flag when set.
func (s *Sender) Settings() url.Values {
	return cloneValues(s.settings)
}

// ReturnsResponse reports whether Deliver returns the provider response.
func (s *Sender) ReturnsResponse() bool {
	return s.settings.Has(paramReturnResponse)
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	_, err := s.Deliver(ctx, email)
	return err
}

// Deliver posts the email to SendGrid in a single attempt.
// Stored parameters override fields derived from the email; return_response
// is never sent. Non-200 responses are returned as *ProviderError.
func (s *Sender) Deliver(ctx context.Context, email *mailer.Email) (Result, error) {
	if email == nil {
		return Result{}, ErrNilEmail
	}

	params := cloneValues(s.settings)
	params.Del(paramReturnResponse)

	payload := Convert(email)
	payload.Merge(params)

	status, body, err := s.post(ctx, payload)
	if err != nil {
		return Result{}, err
	}

	if status != http.StatusOK {
		return Result{}, newProviderError(status, body)
	}

	if s.ReturnsResponse() {
		return Result{Response: body}, nil
	}
	return Result{Sender: s}, nil
}

func (s *Sender) post(ctx context.Context, payload *Payload) (int, Response, error) {
	reqBody, contentType, err := payload.Encode()
	if err != nil {
		return 0, nil, fmt.Errorf("sendgrid: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, reqBody)
	if err != nil {
		return 0, nil, fmt.Errorf("sendgrid: build request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("sendgrid: post: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("sendgrid: read response: %w", err)
	}

	var body Response
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &body); err != nil {
			return 0, nil, fmt.Errorf("sendgrid: decode response: %w", err)
		}
	}

	return resp.StatusCode, body, nil
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v))
	for key, values := range v {
		out[key] = append([]string(nil), values...)
	}
	return out
}
