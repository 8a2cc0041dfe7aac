package run

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingReporter struct {
	ticks int
	block time.Duration
}

func (c *countingReporter) Report(now time.Time) error {
	c.ticks++
	if c.block > 0 {
		time.Sleep(c.block)
	}
	return nil
}

func TestSessionLoopBudgetExhaustion(t *testing.T) {
	rep := &countingReporter{}

	done := make(chan struct{})
	go func() {
		sessionLoop(context.Background(), time.Millisecond, 5, rep)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("session loop did not terminate on budget exhaustion")
	}

	// 预算为 k 时恰好上报 k 次
	assert.Equal(t, 5, rep.ticks)
}

func TestSessionLoopSingleTick(t *testing.T) {
	rep := &countingReporter{}
	sessionLoop(context.Background(), time.Millisecond, 1, rep)
	assert.Equal(t, 1, rep.ticks)
}

func TestSessionLoopCancelDuringSleep(t *testing.T) {
	rep := &countingReporter{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		// 取消会提前打断睡眠,一次上报都不会发生
		sessionLoop(ctx, time.Hour, 10, rep)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("session loop did not observe cancellation")
	}

	assert.Zero(t, rep.ticks)
}

func TestSessionLoopCancelAfterReport(t *testing.T) {
	rep := &countingReporter{block: 50 * time.Millisecond}

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		sessionLoop(ctx, time.Millisecond, 1000, rep)
		close(done)
	}()

	// 等第一次上报进行中再取消,上报不会被打断,
	// 取消在迭代边界被观察
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("session loop did not terminate after cancellation")
	}

	assert.Equal(t, 1, rep.ticks)
}
