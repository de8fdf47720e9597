package health

import (
	"context"
	"database/sql"
	"time"
)

// Service encapsulates readiness checks.
type Service struct {
	DB *sql.DB
}

// NewService constructs a health service. db may be nil when the API runs on
// the in-memory stores.
func NewService(db *sql.DB) *Service {
	return &Service{DB: db}
}

// Status reports liveness plus the persistence backend in use. A failed ping
// flips ok to false so load balancers stop routing to the instance.
func (s *Service) Status(ctx context.Context) map[string]any {
	out := map[string]any{"ok": true, "store": "memory"}
	if s.DB == nil {
		return out
	}
	out["store"] = "postgres"
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := s.DB.PingContext(pingCtx); err != nil {
		out["ok"] = false
	}
	return out
}
