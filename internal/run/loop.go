package run

import (
	"context"
	"time"

	"github.com/cen-ngc5139/runqlen/internal/log"
)

type reporter interface {
	Report(now time.Time) error
}

// sessionLoop 串行执行 睡眠→上报,直到上报次数预算耗尽或 ctx 被取消
//
// 取消只在迭代边界被观察:睡眠可以被提前打断,正在进行的上报绝不会被打断
func sessionLoop(ctx context.Context, interval time.Duration, times int, rep reporter) {
	remaining := times

	timer := time.NewTimer(interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		if err := rep.Report(time.Now()); err != nil {
			log.Errorf("failed to report run queue length: %v", err)
		}

		remaining--
		if remaining <= 0 || ctx.Err() != nil {
			return
		}

		timer.Reset(interval)
	}
}
