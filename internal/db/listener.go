package db

import (
	"context"
	"log/slog"

	"github.com/go-pg/pg/v10"
)

// Listener forwards NOTIFY events from the news table trigger.
type Listener struct {
	db  *pg.DB
	log *slog.Logger
}

func NewListener(db *pg.DB, logger *slog.Logger) *Listener {
	return &Listener{
		db:  db,
		log: logger,
	}
}

// Listen blocks until ctx is done, calling onChange for every notification.
// Reconnects are left to the go-pg listener itself.
func (l *Listener) Listen(ctx context.Context, onChange func(op string)) error {
	ln := l.db.Listen(ctx, NewsChannel)
	defer func() {
		if err := ln.Close(); err != nil {
			l.log.Error("failed to close news listener", "error", err)
		}
	}()

	l.log.Info("listening for news changes", "channel", NewsChannel)

	ch := ln.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case n, ok := <-ch:
			if !ok {
				l.log.Warn("news listener channel closed", "channel", NewsChannel)
				return nil
			}
			l.log.Debug("news notification", "channel", n.Channel, "payload", n.Payload)
			onChange(n.Payload)
		}
	}
}
