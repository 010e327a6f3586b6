package audit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingRecorderReturnsInOrderBeforeWrap(t *testing.T) {
	r := NewRingRecorder(3)
	ctx := context.Background()
	r.Record(ctx, Record{Action: "a"})
	r.Record(ctx, Record{Action: "b"})

	recent := r.Recent()
	require.Len(t, recent, 2)
	assert.Equal(t, "a", recent[0].Action)
	assert.Equal(t, "b", recent[1].Action)
}

func TestRingRecorderWrapsAtCapacity(t *testing.T) {
	r := NewRingRecorder(2)
	ctx := context.Background()
	r.Record(ctx, Record{Action: "a"})
	r.Record(ctx, Record{Action: "b"})
	r.Record(ctx, Record{Action: "c"})

	recent := r.Recent()
	require.Len(t, recent, 2)
	assert.Equal(t, "b", recent[0].Action)
	assert.Equal(t, "c", recent[1].Action)
}

func TestNewIDIsUnique(t *testing.T) {
	a := NewID()
	b := NewID()
	assert.NotEqual(t, a, b)
}

func TestRecordCapturesTiming(t *testing.T) {
	r := NewRingRecorder(1)
	start := time.Now()
	r.Record(context.Background(), Record{Action: "x", StartedAt: start, FinishedAt: start.Add(time.Millisecond)})
	recent := r.Recent()
	require.Len(t, recent, 1)
	assert.True(t, recent[0].FinishedAt.After(recent[0].StartedAt))
}
