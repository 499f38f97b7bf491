package events_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelmedia/reel/pkg/events"
	"github.com/reelmedia/reel/pkg/interfaces"
	"github.com/reelmedia/reel/pkg/logger"
)

// countingLogger counts info lines so audit delivery is observable.
type countingLogger struct {
	mu    sync.Mutex
	infos int
}

func (l *countingLogger) Debug(msg string, fields ...interfaces.Field) {}
func (l *countingLogger) Info(msg string, fields ...interfaces.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos++
}
func (l *countingLogger) Warn(msg string, fields ...interfaces.Field)             {}
func (l *countingLogger) Error(msg string, fields ...interfaces.Field)            {}
func (l *countingLogger) Fatal(msg string, fields ...interfaces.Field)            {}
func (l *countingLogger) WithContext(ctx context.Context) interfaces.Logger      { return l }
func (l *countingLogger) WithFields(fields ...interfaces.Field) interfaces.Logger { return l }

func (l *countingLogger) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.infos
}

func TestSubscribeAuditLogsPublishedEvents(t *testing.T) {
	// Arrange
	log := &countingLogger{}
	bus := events.NewLocalEventBus(logger.NewNoopLogger())
	require.NoError(t, events.SubscribeAudit(bus, log))

	// Act
	require.NoError(t, bus.Publish(context.Background(), events.NewAggregateEvent(events.MovieCreated, "movie-1", nil)))
	bus.PublishAsync(context.Background(), events.NewEvent(events.UserRegistered, nil))
	require.NoError(t, bus.Stop())

	// Assert
	assert.Equal(t, 2, log.count())
}

func TestAuditHandlerHandlesItsEventType(t *testing.T) {
	handler := events.NewAuditHandler(events.GenreDeleted, &countingLogger{})

	assert.Equal(t, events.GenreDeleted, handler.EventType())
	assert.NoError(t, handler.Handle(context.Background(), events.NewEvent(events.GenreDeleted, nil)))
}
