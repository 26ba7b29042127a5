package interfaces

import "context"

// IObjectStorage abstracts the attachment bucket.
type IObjectStorage interface {
	Upload(ctx context.Context, key string, contentType string, body []byte) error
	PublicURL(key string) string
}
