package bootstrap

import "context"

// AuditLog is a lifecycle event worth keeping a trail of (startup, shutdown,
// migration). Domain operations log through zap; this is only for the
// process envelope.
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
