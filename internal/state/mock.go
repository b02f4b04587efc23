// internal/state/mock.go
package state

import "database/sql"

// Mock is a test double for Manager.
type Mock struct {
	queueState *QueueState
	saved      []QueueState
	closed     bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) DB() *sql.DB { return nil }

func (m *Mock) SaveQueue(state QueueState) {
	m.saved = append(m.saved, state)
	m.queueState = &state
}

func (m *Mock) GetQueue() (*QueueState, error) {
	if m.queueState == nil {
		return &QueueState{CurrentIndex: -1, Volume: 100}, nil
	}
	return m.queueState, nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetQueue(state QueueState) { m.queueState = &state }

func (m *Mock) SavedQueues() []QueueState { return m.saved }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
