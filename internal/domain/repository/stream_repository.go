package repository

import (
	"context"
)

// StreamRepository определяет методы публикации в Redis Streams
type StreamRepository interface {
	// PublishToStream публикует данные (JSON в поле "data") в стрим
	PublishToStream(ctx context.Context, stream string, data interface{}) error
}
