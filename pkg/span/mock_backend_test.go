package span_test

import (
	"sync"

	"github.com/erc7824/asynclog/pkg/log"
)

var _ log.Backend = &MockBackend{}

// MockBackend records messages. A nil filter enables everything.
type MockBackend struct {
	filter func(log.Metadata) bool

	mu      sync.Mutex
	records []log.Record
}

func (b *MockBackend) Enabled(meta log.Metadata) bool {
	return b.filter == nil || b.filter(meta)
}

func (b *MockBackend) Log(rec log.Record) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.records = append(b.records, rec)
}

func (b *MockBackend) Flush() {}

func (b *MockBackend) Messages() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	msgs := make([]string, 0, len(b.records))
	for _, r := range b.records {
		msgs = append(msgs, r.Message)
	}
	return msgs
}

func (b *MockBackend) Records() []log.Record {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]log.Record(nil), b.records...)
}
