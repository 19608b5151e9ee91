package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/FatimaEzzahraLegchayri/workshop/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_Reconciles(t *testing.T) {
	reconciler := mocks.NewMockStatusReconciler(t)
	log := newTestLogger(t)

	s := New(reconciler, 50*time.Millisecond, log)

	reconciler.EXPECT().ReconcileStatuses(mock.Anything).Return([]string{"w1"}, []string{"w2"}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	reconciler.AssertCalled(t, "ReconcileStatuses", mock.Anything)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	reconciler := mocks.NewMockStatusReconciler(t)
	log := newTestLogger(t)

	s := New(reconciler, time.Hour, log)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop after context cancel")
	}

	reconciler.AssertNotCalled(t, "ReconcileStatuses", mock.Anything)
}

func TestScheduler_Tick_ErrorKeepsRunning(t *testing.T) {
	reconciler := mocks.NewMockStatusReconciler(t)
	log := newTestLogger(t)

	s := New(reconciler, 30*time.Millisecond, log)

	reconciler.EXPECT().ReconcileStatuses(mock.Anything).Return(nil, nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	// At least two ticks fit in the window; a failing tick must not stop the loop.
	calls := 0
	for _, call := range reconciler.Calls {
		if call.Method == "ReconcileStatuses" {
			calls++
		}
	}
	assert.GreaterOrEqual(t, calls, 2)
}

func TestScheduler_Tick_NothingToReconcile(t *testing.T) {
	reconciler := mocks.NewMockStatusReconciler(t)
	log := newTestLogger(t)

	s := New(reconciler, 50*time.Millisecond, log)

	reconciler.EXPECT().ReconcileStatuses(mock.Anything).Return(nil, nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	reconciler.AssertCalled(t, "ReconcileStatuses", mock.Anything)
}
