package mocks

import "context"

// Transactor runs fn with the caller's context and counts the calls.
type Transactor struct {
	Calls int
}

func (t *Transactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.Calls++
	return fn(ctx)
}
