package run

import (
	"github.com/cen-ngc5139/runqlen/internal/log"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

type task struct {
	name string
	fn   func() error
}

// TaskManager 统一启动并等待所有后台任务
type TaskManager struct {
	tasks []task
}

func NewTaskManager() *TaskManager {
	return &TaskManager{}
}

func (tm *TaskManager) Add(name string, fn func() error) {
	tm.tasks = append(tm.tasks, task{name: name, fn: fn})
}

func (tm *TaskManager) Run() error {
	var errg errgroup.Group

	for _, t := range tm.tasks {
		t := t
		log.Infof("启动任务: %s", t.name)
		errg.Go(func() error {
			if err := t.fn(); err != nil {
				return errors.Wrapf(err, "任务 %s 失败", t.name)
			}
			return nil
		})
	}

	return errg.Wait()
}
