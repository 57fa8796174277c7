package mailer

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSender is a mock implementation of Sender interface.
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, email *Email) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func validEmail() *Email {
	return &Email{
		To:      []string{"alice@example.com"},
		Subject: "Welcome",
		HTML:    "<p>Hello <b>Alice</b></p>",
	}
}

func TestMailer_Send_Success(t *testing.T) {
	t.Parallel()

	mockSender := &MockSender{}
	m := New(mockSender, Config{DefaultFrom: "Team <team@example.com>"})

	mockSender.On("Send", mock.Anything, mock.MatchedBy(func(email *Email) bool {
		return email.To[0] == "alice@example.com" &&
			email.From == "Team <team@example.com>" &&
			email.Text == "Hello Alice"
	})).Return(nil)

	err := m.Send(context.Background(), validEmail())

	require.NoError(t, err)
	mockSender.AssertExpectations(t)
}

func TestMailer_Send_DoesNotModifyInput(t *testing.T) {
	t.Parallel()

	mockSender := &MockSender{}
	m := New(mockSender, Config{DefaultFrom: "team@example.com"})
	mockSender.On("Send", mock.Anything, mock.Anything).Return(nil)

	email := validEmail()
	require.NoError(t, m.Send(context.Background(), email))

	require.Empty(t, email.From)
	require.Empty(t, email.Text)
}

func TestMailer_Send_KeepsExplicitFields(t *testing.T) {
	t.Parallel()

	mockSender := &MockSender{}
	m := New(mockSender, Config{DefaultFrom: "team@example.com"})

	mockSender.On("Send", mock.Anything, mock.MatchedBy(func(email *Email) bool {
		return email.From == "ceo@example.com" && email.Text == "Custom text"
	})).Return(nil)

	email := validEmail()
	email.From = "ceo@example.com"
	email.Text = "Custom text"

	require.NoError(t, m.Send(context.Background(), email))
	mockSender.AssertExpectations(t)
}

func TestMailer_Send_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		email *Email
		err   error
	}{
		{name: "nil email", email: nil, err: ErrNoRecipient},
		{name: "no recipient", email: &Email{Subject: "Hi", HTML: "<p>Hi</p>"}, err: ErrNoRecipient},
		{name: "no subject", email: &Email{To: []string{"a@example.com"}, HTML: "<p>Hi</p>"}, err: ErrNoSubject},
		{name: "no content", email: &Email{To: []string{"a@example.com"}, Subject: "Hi"}, err: ErrNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mockSender := &MockSender{}
			m := New(mockSender, Config{})

			err := m.Send(context.Background(), tt.email)

			require.ErrorIs(t, err, tt.err)
			mockSender.AssertNotCalled(t, "Send")
		})
	}
}

func TestMailer_Send_TextOnly(t *testing.T) {
	t.Parallel()

	mockSender := &MockSender{}
	m := New(mockSender, Config{})
	mockSender.On("Send", mock.Anything, mock.MatchedBy(func(email *Email) bool {
		return email.HTML == "" && email.Text == "plain"
	})).Return(nil)

	err := m.Send(context.Background(), &Email{To: []string{"a@example.com"}, Subject: "Hi", Text: "plain"})

	require.NoError(t, err)
	mockSender.AssertExpectations(t)
}

func TestMailer_Send_SenderFailure(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	mockSender := &MockSender{}
	m := New(mockSender, Config{}, WithLogger(slog.New(slog.NewJSONHandler(&logs, nil))))

	senderErr := errors.New("connection refused")
	mockSender.On("Send", mock.Anything, mock.Anything).Return(senderErr)

	err := m.Send(context.Background(), validEmail())

	require.ErrorIs(t, err, ErrSendFailed)
	require.ErrorIs(t, err, senderErr)
	require.Contains(t, logs.String(), "email delivery failed")
	require.Contains(t, logs.String(), "connection refused")
	mockSender.AssertExpectations(t)
}

func TestMailer_Send_PreservesProviderClassification(t *testing.T) {
	t.Parallel()

	mockSender := &MockSender{}
	m := New(mockSender, Config{})
	mockSender.On("Send", mock.Anything, mock.Anything).Return(errors.Join(ErrInvalidAPIKey, errors.New("401")))

	err := m.Send(context.Background(), validEmail())

	require.ErrorIs(t, err, ErrSendFailed)
	require.ErrorIs(t, err, ErrInvalidAPIKey)
}

func TestMailer_Send_LogsSuccess(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	mockSender := &MockSender{}
	m := New(mockSender, Config{}, WithLogger(slog.New(slog.NewJSONHandler(&logs, nil))))
	mockSender.On("Send", mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, m.Send(context.Background(), validEmail()))
	require.Contains(t, logs.String(), "email delivered")
	require.Contains(t, logs.String(), "alice@example.com")
}

func TestWithLogger_IgnoresNil(t *testing.T) {
	t.Parallel()

	m := New(&MockSender{}, Config{}, WithLogger(nil))
	require.NotNil(t, m.log)
}
