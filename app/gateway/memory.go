package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"sort"
	"sync"
)

// Memory is a map-backed Store used by tests and as the reference for the
// change fan-out semantics. Records are held as their JSON encoding so the
// driver stays schema-free like the real backends.
type Memory struct {
	broadcaster

	mu   sync.RWMutex
	data map[string]map[string]json.RawMessage // collection → id → record
}

func NewMemory() *Memory {
	return &Memory{data: map[string]map[string]json.RawMessage{}}
}

func (m *Memory) List(ctx context.Context, collection string, out interface{}) error {
	if err := ctx.Err(); err != nil {
		return wrap("list", collection, err)
	}

	m.mu.RLock()
	records := m.data[collection]
	ids := make([]string, 0, len(records))
	for id := range records {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, id := range ids {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(records[id])
	}
	buf.WriteByte(']')
	m.mu.RUnlock()

	return wrap("list", collection, json.Unmarshal(buf.Bytes(), out))
}

func (m *Memory) Get(ctx context.Context, collection, id string, out interface{}) error {
	if err := ctx.Err(); err != nil {
		return wrap("get", collection, err)
	}

	m.mu.RLock()
	raw, ok := m.data[collection][id]
	m.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	return wrap("get", collection, json.Unmarshal(raw, out))
}

func (m *Memory) Create(ctx context.Context, collection, id string, record interface{}) error {
	if err := ctx.Err(); err != nil {
		return wrap("create", collection, err)
	}

	raw, err := json.Marshal(record)
	if err != nil {
		return wrap("create", collection, err)
	}

	m.mu.Lock()
	if m.data[collection] == nil {
		m.data[collection] = map[string]json.RawMessage{}
	}
	m.data[collection][id] = raw
	m.mu.Unlock()

	m.notify(collection)
	return nil
}

func (m *Memory) Update(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	if err := ctx.Err(); err != nil {
		return wrap("update", collection, err)
	}

	m.mu.Lock()
	raw, ok := m.data[collection][id]
	if !ok {
		m.mu.Unlock()
		return ErrNotFound
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		m.mu.Unlock()
		return wrap("update", collection, err)
	}
	for k, v := range fields {
		doc[k] = v
	}
	merged, err := json.Marshal(doc)
	if err != nil {
		m.mu.Unlock()
		return wrap("update", collection, err)
	}
	m.data[collection][id] = merged
	m.mu.Unlock()

	m.notify(collection)
	return nil
}

func (m *Memory) Delete(ctx context.Context, collection, id string) error {
	if err := ctx.Err(); err != nil {
		return wrap("delete", collection, err)
	}

	m.mu.Lock()
	delete(m.data[collection], id)
	m.mu.Unlock()

	m.notify(collection)
	return nil
}

func (m *Memory) Close(context.Context) error { return nil }
