package task_test

import (
	"sync"

	"github.com/erc7824/asynclog/pkg/log"
)

// MockBackend keeps every record, structured.
type MockBackend struct {
	mu      sync.Mutex
	records []log.Record
}

func (b *MockBackend) Enabled(log.Metadata) bool { return true }

func (b *MockBackend) Log(rec log.Record) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.records = append(b.records, rec)
}

func (b *MockBackend) Flush() {}

func (b *MockBackend) Structured() bool { return true }

// Find returns the records with the given message.
func (b *MockBackend) Find(msg string) []log.Record {
	b.mu.Lock()
	defer b.mu.Unlock()
	var found []log.Record
	for _, r := range b.records {
		if r.Message == msg {
			found = append(found, r)
		}
	}
	return found
}
