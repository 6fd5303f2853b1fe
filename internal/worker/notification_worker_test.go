package worker

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/spec-kit/storefront-service/internal/mail"
)

type recordingMailer struct {
	mu   sync.Mutex
	sent []string
	err  error
}

func (r *recordingMailer) Send(_ context.Context, msg mail.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, msg.Subject)
	return r.err
}

func TestNotificationWorkerDrainsOnStop(t *testing.T) {
	mailer := &recordingMailer{}
	w := NewNotificationWorker(mailer, nil, 2, 10)
	w.Start(context.Background())

	for _, subject := range []string{"a", "b", "c"} {
		if err := w.Send(context.Background(), mail.Message{Subject: subject}); err != nil {
			t.Fatalf("Send(%s) error = %v", subject, err)
		}
	}
	w.Stop()

	if len(mailer.sent) != 3 {
		t.Errorf("delivered %d messages, want 3", len(mailer.sent))
	}
	if err := w.Send(context.Background(), mail.Message{Subject: "late"}); !errors.Is(err, ErrQueueClosed) {
		t.Errorf("Send() after Stop error = %v, want ErrQueueClosed", err)
	}
	w.Stop()
}

func TestNotificationWorkerFullQueue(t *testing.T) {
	w := NewNotificationWorker(&recordingMailer{}, nil, 1, 1)

	if err := w.Send(context.Background(), mail.Message{Subject: "first"}); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if err := w.Send(context.Background(), mail.Message{Subject: "second"}); !errors.Is(err, ErrQueueFull) {
		t.Errorf("Send() error = %v, want ErrQueueFull", err)
	}
}

func TestNotificationWorkerKeepsGoingAfterFailure(t *testing.T) {
	mailer := &recordingMailer{err: errors.New("rejected")}
	w := NewNotificationWorker(mailer, nil, 1, 4)
	w.Start(context.Background())
	_ = w.Send(context.Background(), mail.Message{Subject: "a"})
	_ = w.Send(context.Background(), mail.Message{Subject: "b"})
	w.Stop()

	if len(mailer.sent) != 2 {
		t.Errorf("attempted %d deliveries, want 2", len(mailer.sent))
	}
}
