package mailer

import (
	"context"
	"errors"
	"testing"

	"github.com/GlebRadaev/gobounty/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"
)

type fakeSender struct {
	sent []*mail.Msg
	err  error
}

func (f *fakeSender) DialAndSendWithContext(_ context.Context, messages ...*mail.Msg) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, messages...)
	return nil
}

func message() domain.Message {
	return domain.Message{
		Subject: "[codesy] Your ask for 50.00 for https://github.com/codesy/codesy/issues/1 has been met",
		Body:    "Bidders have met your asking price.",
		From:    "codesy notifications <notifications@codesy.io>",
		To:      []string{"asker@example.com"},
	}
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(m *domain.Message)
		wantErr bool
	}{
		{name: "Valid message", mutate: func(m *domain.Message) {}},
		{name: "No recipients", mutate: func(m *domain.Message) { m.To = nil }, wantErr: true},
		{name: "Bad sender", mutate: func(m *domain.Message) { m.From = "not an address" }, wantErr: true},
		{name: "Bad recipient", mutate: func(m *domain.Message) { m.To = []string{"@@"} }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := message()
			tt.mutate(&msg)
			email, err := build(msg)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, email)
				return
			}
			require.NoError(t, err)
			rcpts, err := email.GetRecipients()
			require.NoError(t, err)
			assert.Equal(t, []string{"asker@example.com"}, rcpts)
			assert.Equal(t, []string{msg.Subject}, email.GetGenHeader(mail.HeaderSubject))
		})
	}
}

func TestMailer_Send(t *testing.T) {
	fake := &fakeSender{}
	m := &Mailer{client: fake}

	require.NoError(t, m.Send(context.Background(), message()))
	assert.Len(t, fake.sent, 1)

	fake.err = errors.New("connection refused")
	err := m.Send(context.Background(), message())
	assert.ErrorContains(t, err, "connection refused")

	err = m.Send(context.Background(), domain.Message{From: "a@example.com"})
	assert.ErrorIs(t, err, ErrNoRecipients)
}

func TestNew(t *testing.T) {
	m, err := New(Config{Host: "smtp.example.com", Port: 587, Username: "user", Password: "secret"})
	require.NoError(t, err)
	assert.NotNil(t, m.client)

	_, err = New(Config{Host: "", Port: 587})
	assert.Error(t, err)
}

func TestLogNotifier(t *testing.T) {
	assert.NoError(t, LogNotifier{}.Send(context.Background(), message()))
}
