package log_test

import (
	"sync"

	"github.com/erc7824/asynclog/pkg/log"
)

var (
	_ log.Backend    = &MockBackend{}
	_ log.Structured = &MockBackend{}
)

// MockBackend records every entry it is handed.
type MockBackend struct {
	enabled    bool
	structured bool

	mu      sync.Mutex
	records []log.Record
	flushes int
}

func (b *MockBackend) Enabled(log.Metadata) bool { return b.enabled }

func (b *MockBackend) Log(rec log.Record) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.records = append(b.records, rec)
}

func (b *MockBackend) Flush() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.flushes++
}

func (b *MockBackend) Structured() bool { return b.structured }

// Records returns a copy of everything logged so far.
func (b *MockBackend) Records() []log.Record {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]log.Record(nil), b.records...)
}

// Last returns the most recent record.
func (b *MockBackend) Last() log.Record {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.records) == 0 {
		return log.Record{}
	}
	return b.records[len(b.records)-1]
}
