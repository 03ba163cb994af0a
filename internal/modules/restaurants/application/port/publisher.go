package port

import "context"

// ChangePublisher emits entity change events for downstream consumers
// (realtime gateways, cache warmers). Publishing is best-effort from the
// caller's point of view: failures are logged, never surfaced.
type ChangePublisher interface {
	Publish(ctx context.Context, entity, action, resourceID string, data any) error
}
