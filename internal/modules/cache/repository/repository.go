package repository

import (
	"github.com/rtcl/newsdesk/internal/modules/cache/domain"
)

// Repository defines the interface for the durable session store mirror.
// The store is best-effort: callers must keep functioning when any of these
// operations fail (quota, disabled storage, corrupt data).
type Repository interface {
	Load() (map[string]domain.Entry, error)
	Store(entries map[string]domain.Entry) error
	Clear() error
}
