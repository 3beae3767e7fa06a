package main

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-user-token-api/pkg/mailer"
)

type sender interface {
	Send(ctx context.Context, to, subject, text, html string) error
}

type outcome int

const (
	outcomeAck     outcome = iota
	outcomeDiscard         // malformed or unrenderable; never redeliver
	outcomeRetry           // transient send failure
)

type worker struct {
	sender  sender
	logger  logrus.FieldLogger
	timeout time.Duration
}

// handle decodes, renders and sends a single queued EmailJob.
func (w *worker) handle(ctx context.Context, body []byte) outcome {
	var job mailer.EmailJob
	if err := json.Unmarshal(body, &job); err != nil {
		w.logger.WithError(err).Warn("bad message")
		return outcomeDiscard
	}
	if job.To == "" {
		w.logger.Warn("email job without recipient")
		return outcomeDiscard
	}

	subject, text, html, err := mailer.Render(job)
	if err != nil {
		w.logger.WithError(err).WithField("template", job.Template).Warn("render failed")
		return outcomeDiscard
	}

	c, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()
	if err := w.sender.Send(c, job.To, subject, text, html); err != nil {
		w.logger.WithError(err).WithField("to", job.To).Error("send failed")
		return outcomeRetry
	}
	w.logger.WithFields(logrus.Fields{"to": job.To, "template": job.Template}).Info("email sent")
	return outcomeAck
}
