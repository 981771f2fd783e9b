package outbound

import "context"

// AudioStorePort writes one audio artifact per call and returns its public URL.
// Delete exists only for the best-effort cleanup of uploads whose record was
// never persisted.
type AudioStorePort interface {
	Save(ctx context.Context, key string, audio []byte) (string, error)
	Delete(ctx context.Context, key string) error
}
