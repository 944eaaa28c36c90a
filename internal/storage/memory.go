package storage

import "context"

// MemorySlot keeps values in process memory. It is not safe for concurrent use.
type MemorySlot struct {
	values map[string][]byte
	sets   int
}

func NewMemorySlot() *MemorySlot {
	return &MemorySlot{values: map[string][]byte{}}
}

func (m *MemorySlot) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := m.values[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (m *MemorySlot) Set(_ context.Context, key string, value []byte) error {
	m.values[key] = append([]byte(nil), value...)
	m.sets++
	return nil
}

// SetCount reports how many times Set has been called.
func (m *MemorySlot) SetCount() int {
	return m.sets
}
