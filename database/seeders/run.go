// Package seeders provides a registry of idempotent seed functions.
// Each seeder checks for existing data before writing, so RunAll is
// safe to call on every boot as well as from the seed CLI command.
package seeders

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopkit/admin/app/gateway"
	"github.com/shopkit/admin/pkg/logger"
)

// SeederFunc is the signature for a seed function.
type SeederFunc func(ctx context.Context, store gateway.Store) error

type seederEntry struct {
	name string
	fn   SeederFunc
}

var (
	mu      sync.Mutex
	entries []seederEntry
)

// Register adds a seeder to the global registry. Call from init() in
// seeder files.
func Register(name string, fn SeederFunc) {
	mu.Lock()
	defer mu.Unlock()
	entries = append(entries, seederEntry{name: name, fn: fn})
}

// RunAll executes every registered seeder in registration order and
// stops on the first error.
func RunAll(ctx context.Context, store gateway.Store) error {
	mu.Lock()
	current := make([]seederEntry, len(entries))
	copy(current, entries)
	mu.Unlock()

	for _, e := range current {
		if err := e.fn(ctx, store); err != nil {
			return fmt.Errorf("seeder %q: %w", e.name, err)
		}
		logger.Debug("seeder finished", "seeder", e.name)
	}
	return nil
}
