package messaging

import (
	"fmt"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

// RetryTrigger turns messages on a NATS subject into sweep requests. Requests that arrive
// while one is already pending are coalesced.
type RetryTrigger struct {
	sub *nats.Subscription
	ch  chan struct{}
	log *zap.Logger
}

func SubscribeRetryTrigger(nc *nats.Conn, subject string, log *zap.Logger) (*RetryTrigger, error) {
	if log == nil {
		log = zap.NewNop()
	}
	t := &RetryTrigger{ch: make(chan struct{}, 1), log: log.Named("retry.trigger")}

	sub, err := nc.Subscribe(subject, t.handle)
	if err != nil {
		return nil, fmt.Errorf("subscribe %s: %w", subject, err)
	}
	t.sub = sub
	t.log.Info("subscribed to retry trigger", zap.String("subject", subject))
	return t, nil
}

func (t *RetryTrigger) handle(msg *nats.Msg) {
	t.notify(msg.Subject)
}

func (t *RetryTrigger) notify(subject string) {
	select {
	case t.ch <- struct{}{}:
		t.log.Info("retry sweep requested", zap.String("subject", subject))
	default:
		t.log.Debug("retry sweep already pending", zap.String("subject", subject))
	}
}

// C delivers one value per coalesced sweep request.
func (t *RetryTrigger) C() <-chan struct{} {
	return t.ch
}

func (t *RetryTrigger) Close() error {
	if t.sub == nil {
		return nil
	}
	return t.sub.Unsubscribe()
}
