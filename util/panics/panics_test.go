package panics

import (
	"testing"
	"time"

	"github.com/KomodoPlatform/zebra/logger"
)

func TestGoroutineWrapperFuncRunsFunction(t *testing.T) {
	log, err := logger.Get(logger.SubsystemTags.UTIL)
	if err != nil {
		t.Fatalf("logger.Get: %v", err)
	}

	spawn := GoroutineWrapperFunc(log)
	done := make(chan struct{})
	spawn(func() {
		close(done)
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("wrapped goroutine never ran")
	}
}

func TestHandlePanicNoopWithoutPanic(t *testing.T) {
	log, err := logger.Get(logger.SubsystemTags.UTIL)
	if err != nil {
		t.Fatalf("logger.Get: %v", err)
	}

	// HandlePanic must return quietly when there is nothing to recover,
	// since it runs deferred on every wrapped goroutine.
	func() {
		defer HandlePanic(log, nil)
	}()
}
