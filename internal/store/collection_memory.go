package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/MKhiriev/resourcekit/internal/utils"
	"github.com/MKhiriev/resourcekit/models"
)

// memoryCollection is the in-process implementation of [Collection]. It
// keeps the encoded payloads so reads never share memory with callers.
type memoryCollection[T any] struct {
	mu    sync.RWMutex
	order []string
	data  map[string][]byte
	newID func() string
}

// NewMemoryCollection returns an empty in-memory collection.
func NewMemoryCollection[T any](newID func() string) Collection[T] {
	return &memoryCollection[T]{
		data:  make(map[string][]byte),
		newID: newID,
	}
}

func (c *memoryCollection[T]) Create(_ context.Context, data T) (models.Record[T], error) {
	if err := validateRecordData(&data); err != nil {
		return models.Record[T]{}, err
	}
	raw, err := encodeRecordData(data)
	if err != nil {
		return models.Record[T]{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.newID()
	if _, exists := c.data[id]; exists {
		return models.Record[T]{}, ErrDuplicateKey
	}
	c.data[id] = raw
	c.order = append(c.order, id)

	return models.Record[T]{ID: id, Data: data}, nil
}

func (c *memoryCollection[T]) FindAll(ctx context.Context) ([]models.Record[T], error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.window(0, len(c.order))
}

func (c *memoryCollection[T]) FindWindow(_ context.Context, skip, limit int) ([]models.Record[T], error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if skip < 0 || limit <= 0 {
		return []models.Record[T]{}, nil
	}
	return c.window(skip, limit)
}

func (c *memoryCollection[T]) Count(_ context.Context) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return int64(len(c.order)), nil
}

func (c *memoryCollection[T]) FindByID(_ context.Context, id string) (models.Record[T], error) {
	if !utils.IsValidUUID(id) {
		return models.Record[T]{}, ErrMalformedID
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	raw, ok := c.data[id]
	if !ok {
		return models.Record[T]{}, ErrRecordNotFound
	}
	return recordFromRaw[T](id, raw)
}

func (c *memoryCollection[T]) Update(_ context.Context, id string, patch json.RawMessage) (models.Record[T], error) {
	if !utils.IsValidUUID(id) {
		return models.Record[T]{}, ErrMalformedID
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	stored, ok := c.data[id]
	if !ok {
		return models.Record[T]{}, ErrRecordNotFound
	}

	data, merged, err := mergePatch[T](stored, patch)
	if err != nil {
		return models.Record[T]{}, err
	}
	c.data[id] = merged

	return models.Record[T]{ID: id, Data: data}, nil
}

func (c *memoryCollection[T]) Delete(_ context.Context, id string) (models.Record[T], error) {
	if !utils.IsValidUUID(id) {
		return models.Record[T]{}, ErrMalformedID
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	raw, ok := c.data[id]
	if !ok {
		return models.Record[T]{}, ErrRecordNotFound
	}

	delete(c.data, id)
	for i, v := range c.order {
		if v == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}

	return recordFromRaw[T](id, raw)
}

// window must be called with the lock held.
func (c *memoryCollection[T]) window(skip, limit int) ([]models.Record[T], error) {
	records := make([]models.Record[T], 0)
	if skip >= len(c.order) {
		return records, nil
	}

	end := len(c.order)
	if limit < end-skip {
		end = skip + limit
	}

	for _, id := range c.order[skip:end] {
		record, err := recordFromRaw[T](id, c.data[id])
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func recordFromRaw[T any](id string, raw []byte) (models.Record[T], error) {
	data, err := decodeRecordData[T](raw)
	if err != nil {
		return models.Record[T]{}, err
	}
	return models.Record[T]{ID: id, Data: data}, nil
}
