package worker

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/storefront-service/internal/mail"
	"github.com/spec-kit/storefront-service/internal/service"
)

// ErrQueueFull is returned when the notification backlog is at capacity.
var ErrQueueFull = errors.New("notification queue full")

// ErrQueueClosed is returned after Stop.
var ErrQueueClosed = errors.New("notification queue closed")

// NotificationWorker delivers event-driven mail off the request path. It
// implements mail.Mailer so the notification service can hand it messages.
type NotificationWorker struct {
	mailer  mail.Mailer
	logger  *zap.Logger
	queue   chan mail.Message
	workers int

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewNotificationWorker builds a worker pool of size workers with a backlog
// of capacity messages.
func NewNotificationWorker(mailer mail.Mailer, logger *zap.Logger, workers, capacity int) *NotificationWorker {
	if workers < 1 {
		workers = 1
	}
	if capacity < 1 {
		capacity = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationWorker{
		mailer:  mailer,
		logger:  logger,
		queue:   make(chan mail.Message, capacity),
		workers: workers,
	}
}

// Send enqueues msg. It never blocks; a full backlog drops the message.
func (w *NotificationWorker) Send(_ context.Context, msg mail.Message) error {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.closed {
		return ErrQueueClosed
	}
	select {
	case w.queue <- msg:
		return nil
	default:
		w.logger.Warn("notification dropped", zap.String("subject", msg.Subject), zap.Strings("to", msg.To))
		return ErrQueueFull
	}
}

// Start launches the delivery goroutines. Deliveries use ctx, so cancelling
// it aborts in-flight sends.
func (w *NotificationWorker) Start(ctx context.Context) {
	for i := 0; i < w.workers; i++ {
		w.wg.Add(1)
		go w.run(ctx)
	}
}

// Stop refuses new messages and waits until the backlog is drained.
func (w *NotificationWorker) Stop() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	close(w.queue)
	w.mu.Unlock()
	w.wg.Wait()
}

func (w *NotificationWorker) run(ctx context.Context) {
	defer w.wg.Done()
	for msg := range w.queue {
		if err := w.mailer.Send(ctx, msg); err != nil {
			w.logger.Error("notification delivery failed", zap.String("subject", msg.Subject), zap.Strings("to", msg.To), zap.Error(err))
		}
	}
}

// StartNotificationWorker registers notification handlers.
func StartNotificationWorker(notificationService *service.NotificationService) {
	if notificationService == nil {
		return
	}
	notificationService.RegisterHandlers()
}
