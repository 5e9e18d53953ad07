// Package gateway abstracts the document store behind the admin panel.
//
// Every collection is keyed by an opaque string id. Three drivers exist:
// mongo (production), a JSON-document table on gorm for local setups, and an
// in-memory store for tests. All drivers push a change notification after
// each successful mutation so mirrors and open dashboards can re-fetch.
package gateway

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/shopkit/admin/config"
	"github.com/shopkit/admin/pkg/event"
)

// Collection names shared by all drivers.
const (
	Products      = "products"
	Categories    = "categories"
	Orders        = "orders"
	Users         = "users"
	Banners       = "banners"
	Activities    = "activities"
	Notifications = "notifications"
)

// ErrNotFound is returned when a referenced record does not exist.
var ErrNotFound = errors.New("gateway: record not found")

// Error wraps a backend failure with the operation and collection that
// produced it.
type Error struct {
	Op         string
	Collection string
	Err        error
}

func (e *Error) Error() string {
	return fmt.Sprintf("gateway: %s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func wrap(op, collection string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Collection: collection, Err: err}
}

// ChangeFunc receives the name of the collection that changed.
type ChangeFunc func(collection string)

// Store is the narrow CRUD/subscribe interface the admin core consumes.
//
// List decodes the whole collection into out (a pointer to a slice); Get
// decodes a single record into out. Update applies a partial field set.
// All blocking calls honour ctx and are additionally bounded by the
// configured gateway timeout.
type Store interface {
	List(ctx context.Context, collection string, out interface{}) error
	Get(ctx context.Context, collection, id string, out interface{}) error
	Create(ctx context.Context, collection, id string, record interface{}) error
	Update(ctx context.Context, collection, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, collection, id string) error
	Subscribe(collection string, fn ChangeFunc) (unsubscribe func())
	Close(ctx context.Context) error
}

// NewID returns a fresh opaque record identifier (32 hex chars).
func NewID() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// Connect builds the Store selected by GATEWAY_DRIVER.
func Connect(ctx context.Context) (Store, error) {
	switch driver := config.GatewayDriver(); driver {
	case "mongo":
		return connectMongo(ctx)
	case "memory":
		return NewMemory(), nil
	default: // sqlite, postgres, mysql, sqlserver
		return connectSQL(driver)
	}
}

// bound caps ctx with the configured gateway timeout so a dead backend
// surfaces as an error instead of a hung request.
func bound(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, config.GatewayTimeout())
}

// ── Change fan-out ────────────────────────────────────────────────────────────
// Shared by all drivers; single-node in-process push.

type broadcaster struct{}

func (broadcaster) Subscribe(collection string, fn ChangeFunc) (unsubscribe func()) {
	return event.Listen(changeEvent(collection), func(payload interface{}) {
		name, _ := payload.(string)
		fn(name)
	})
}

func (broadcaster) notify(collection string) {
	event.Fire(changeEvent(collection), collection)
}

func changeEvent(collection string) string {
	return "gateway." + collection + ".changed"
}
