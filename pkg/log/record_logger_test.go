package log_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erc7824/asynclog/pkg/log"
)

func TestRecordLogger(t *testing.T) {
	backend := &MockBackend{enabled: true}
	logger := log.NewRecordLogger(backend).WithName("svc").WithKV("k", "v")

	logger.Warn("careful", "n", 2)

	records := backend.Records()
	require.Len(t, records, 1)
	rec := records[0]
	assert.Equal(t, log.LevelWarn, rec.Level)
	assert.Equal(t, "svc", rec.Target)
	assert.Equal(t, "careful", rec.Message)
	assert.Equal(t, []log.Field{{Key: "k", Value: "v"}, {Key: "n", Value: 2}}, rec.Fields)
	assert.Contains(t, rec.File, "record_logger_test.go")
	assert.Equal(t, 16, rec.Line)
	assert.False(t, rec.Time.IsZero())
}

func TestRecordLogger_Disabled(t *testing.T) {
	backend := &MockBackend{enabled: false}
	log.NewRecordLogger(backend).Info("dropped")
	assert.Empty(t, backend.Records())
}

func TestRecordLogger_NilBackend(t *testing.T) {
	assert.NotPanics(t, func() {
		log.NewRecordLogger(nil).Error("nowhere")
	})
}

func TestRecordLogger_Derivation(t *testing.T) {
	base := log.NewRecordLogger(&MockBackend{enabled: true})

	a := base.WithKV("a", 1)
	b := a.WithKV("b", 2)
	c := a.WithKV("c", 3)

	assert.Empty(t, base.GetAllKV())
	assert.Equal(t, []any{"a", 1}, a.GetAllKV())
	assert.Equal(t, []any{"a", 1, "b", 2}, b.GetAllKV())
	assert.Equal(t, []any{"a", 1, "c", 3}, c.GetAllKV())

	assert.Equal(t, "x.y", base.WithName("x").WithName("y").Name())
}

func TestRecordLogger_CallerSkip(t *testing.T) {
	backend := &MockBackend{enabled: true}
	logger := log.NewRecordLogger(backend)

	helper := func() {
		logger.AddCallerSkip(1).Trace("from helper")
	}
	helper()

	assert.Equal(t, 64, backend.Last().Line)
}
