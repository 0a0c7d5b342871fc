package port

import "context"

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// TransactionManager runs fn inside a single store transaction. The
// transaction handle travels in the returned context; repositories join it
// transparently. fn returning an error rolls everything back.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
