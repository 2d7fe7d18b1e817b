package repository

// Subscription is the handle of a live collection feed. Stop detaches the
// feed; once it returns, no further snapshot or error callbacks are
// delivered.
type Subscription interface {
	Stop()
}
