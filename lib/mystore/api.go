package mystore

import (
	"context"
	"os"
)

type ctxTransactionKey struct{}

// Store keeps values of one kind by uid. Calls made with the context passed to the
// RunInTransaction callback take part in that transaction.
type Store[T any] interface {
	RunInTransaction(c context.Context, f func(c context.Context) error) error
	Put(c context.Context, uid string, value T) error
	Get(c context.Context, uid string) (T, bool, error)
}

func New[T any](c context.Context) (Store[T], func(), error) {
	if os.Getenv("GOOGLE_CLOUD_PROJECT") != "" {
		return newGcloudStore[T](c)
	}

	return newInMemoryStore[T](c)
}
