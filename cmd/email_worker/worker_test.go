package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMail struct {
	to, subject, text, html string
}

type fakeSender struct {
	sent []sentMail
	err  error
}

func (f *fakeSender) Send(_ context.Context, to, subject, text, html string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to, subject, text, html})
	return nil
}

func newWorker(s sender) *worker {
	logger, _ := test.NewNullLogger()
	return &worker{sender: s, logger: logger, timeout: time.Second}
}

func TestHandle_WelcomeTemplate(t *testing.T) {
	s := &fakeSender{}
	body := []byte(`{"to":"a@test.com","template":"welcome","data":{"AppName":"Acme","Email":"a@test.com","Name":"Ann"}}`)

	got := newWorker(s).handle(context.Background(), body)

	assert.Equal(t, outcomeAck, got)
	require.Len(t, s.sent, 1)
	assert.Equal(t, "a@test.com", s.sent[0].to)
	assert.Equal(t, "Welcome to Acme", s.sent[0].subject)
	assert.Contains(t, s.sent[0].html, "Ann")
}

func TestHandle_RawJob(t *testing.T) {
	s := &fakeSender{}
	body := []byte(`{"to":"a@test.com","subject":"Hi","text":"plain"}`)

	assert.Equal(t, outcomeAck, newWorker(s).handle(context.Background(), body))
	require.Len(t, s.sent, 1)
	assert.Equal(t, "plain", s.sent[0].text)
}

func TestHandle_Discards(t *testing.T) {
	cases := map[string]string{
		"malformed":        `{"to":`,
		"no recipient":     `{"subject":"Hi"}`,
		"unknown template": `{"to":"a@test.com","template":"nope"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			s := &fakeSender{}
			assert.Equal(t, outcomeDiscard, newWorker(s).handle(context.Background(), []byte(body)))
			assert.Empty(t, s.sent)
		})
	}
}

func TestHandle_SendFailureRetries(t *testing.T) {
	s := &fakeSender{err: errors.New("mailgun 503")}
	body := []byte(`{"to":"a@test.com","subject":"Hi","text":"plain"}`)

	assert.Equal(t, outcomeRetry, newWorker(s).handle(context.Background(), body))
}
