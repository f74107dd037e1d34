package asynclog_test

import (
	"sync"

	"github.com/erc7824/asynclog/pkg/log"
)

var (
	_ log.Backend    = &MockBackend{}
	_ log.Structured = &MockBackend{}
)

// MockBackend records every entry it accepts. minLevel defaults to trace.
type MockBackend struct {
	minLevel   log.Level
	disabled   bool
	structured bool

	mu      sync.Mutex
	records []log.Record
	flushes int
}

func (b *MockBackend) Enabled(meta log.Metadata) bool {
	return !b.disabled && b.minLevel.Enables(meta.Level)
}

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

func (b *MockBackend) Records() []log.Record {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]log.Record(nil), b.records...)
}

func (b *MockBackend) Messages() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	msgs := make([]string, 0, len(b.records))
	for _, r := range b.records {
		msgs = append(msgs, r.Message)
	}
	return msgs
}

func (b *MockBackend) Last() log.Record {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.records) == 0 {
		return log.Record{}
	}
	return b.records[len(b.records)-1]
}

func (b *MockBackend) Flushes() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.flushes
}
