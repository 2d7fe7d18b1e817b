package feed

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"cambiazo/pkg/logger"
)

// Subscription is a running live feed over a Firestore query. Stop cancels
// the feed and blocks until the delivery goroutine has exited, so after Stop
// returns no callback will fire again.
type Subscription struct {
	cancel context.CancelFunc
	done   chan struct{}
}

func (s *Subscription) Stop() {
	s.cancel()
	<-s.done
}

// Watch opens a snapshot listener on query and delivers the full decoded
// result set to onSnapshot on every remote change. There is no diffing: each
// delivery replaces the previous one entirely. Errors are reported to
// onError and end the feed, leaving whatever the consumer holds frozen at
// the last good snapshot.
func Watch[T any](
	ctx context.Context,
	query firestore.Query,
	decode func(*firestore.DocumentSnapshot) (T, bool),
	onSnapshot func([]T),
	onError func(error),
) *Subscription {
	ctx, cancel := context.WithCancel(ctx)
	sub := &Subscription{cancel: cancel, done: make(chan struct{})}

	iter := query.Snapshots(ctx)

	go func() {
		defer close(sub.done)
		defer iter.Stop()

		for {
			snap, err := iter.Next()
			if err != nil {
				if status.Code(err) == codes.Canceled || ctx.Err() != nil {
					return
				}
				logger.Error("Snapshot feed failed: %v", err)
				if onError != nil {
					onError(err)
				}
				return
			}

			docs, err := snap.Documents.GetAll()
			if err != nil {
				logger.Error("Failed to read snapshot documents: %v", err)
				if onError != nil {
					onError(err)
				}
				continue
			}

			items := make([]T, 0, len(docs))
			for _, doc := range docs {
				if item, ok := decode(doc); ok {
					items = append(items, item)
				}
			}

			// A snapshot that resolves after Stop must be a no-op.
			if ctx.Err() != nil {
				return
			}
			onSnapshot(items)
		}
	}()

	return sub
}
