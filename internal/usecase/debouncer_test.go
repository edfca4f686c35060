package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncer_LatestWins(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)
	var calls int32
	fn := func(ctx context.Context) error {
		atomic.AddInt32(&calls, 1)
		return nil
	}

	first := make(chan bool, 1)
	go func() {
		superseded, _ := d.Do(context.Background(), "session-1", fn)
		first <- superseded
	}()
	time.Sleep(10 * time.Millisecond)

	superseded, err := d.Do(context.Background(), "session-1", fn)
	if err != nil || superseded {
		t.Fatalf("expected latest call to run, superseded=%v err=%v", superseded, err)
	}
	if !<-first {
		t.Fatalf("expected first call to be superseded")
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("expected exactly one run, got %d", got)
	}
}

func TestDebouncer_CancelsInFlight(t *testing.T) {
	d := NewDebouncer(time.Millisecond)
	started := make(chan struct{})
	first := make(chan bool, 1)
	go func() {
		superseded, _ := d.Do(context.Background(), "s", func(ctx context.Context) error {
			close(started)
			<-ctx.Done()
			return ctx.Err()
		})
		first <- superseded
	}()
	<-started

	superseded, err := d.Do(context.Background(), "s", func(ctx context.Context) error { return nil })
	if err != nil || superseded {
		t.Fatalf("unexpected result superseded=%v err=%v", superseded, err)
	}
	select {
	case s := <-first:
		if !s {
			t.Fatalf("expected in-flight call to be superseded")
		}
	case <-time.After(time.Second):
		t.Fatalf("in-flight call was not cancelled")
	}
}

func TestDebouncer_Cancel(t *testing.T) {
	d := NewDebouncer(time.Second)
	done := make(chan bool, 1)
	go func() {
		superseded, _ := d.Do(context.Background(), "s", func(ctx context.Context) error {
			t.Errorf("cancelled call must not run")
			return nil
		})
		done <- superseded
	}()
	time.Sleep(10 * time.Millisecond)
	d.Cancel("s")

	select {
	case s := <-done:
		if !s {
			t.Fatalf("expected cancelled call to report superseded")
		}
	case <-time.After(time.Second):
		t.Fatalf("cancel did not release the waiting call")
	}
}

func TestDebouncer_EmptyKeyRunsImmediately(t *testing.T) {
	d := NewDebouncer(time.Hour)
	boom := errors.New("boom")
	superseded, err := d.Do(context.Background(), "", func(ctx context.Context) error { return boom })
	if superseded || !errors.Is(err, boom) {
		t.Fatalf("unexpected result superseded=%v err=%v", superseded, err)
	}
}

func TestDebouncer_CallerCancel(t *testing.T) {
	d := NewDebouncer(time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	superseded, err := d.Do(ctx, "s", func(ctx context.Context) error { return nil })
	if superseded || !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got superseded=%v err=%v", superseded, err)
	}
}
