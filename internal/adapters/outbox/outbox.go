package outbox

import (
	"context"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// Entry is a pending domain event persisted in the same transaction as the
// state change it describes.
type Entry struct {
	ID         int64
	EventName  string
	EntityName string
	EventData  []byte
	CreatedAt  time.Time
}

type Repository interface {
	Insert(ctx context.Context, entry *Entry) error
	FetchPending(ctx context.Context, limit int) ([]*Entry, error)
	Delete(ctx context.Context, id int64) error
}
