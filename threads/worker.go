package threads

import (
	"errors"
	"fmt"

	"github.com/untillpro/goutils/logger"
)

// Job 工作协程消费的任务单元。
type Job interface {
	Run() error
}

// Worker 包装一个后台协程，循环执行 取任务->执行 直到队列关闭。
// 由WorkerPool创建，不需要直接构造。
type Worker struct {
	id   int
	done chan struct{}
}

// newWorker 立即启动后台协程。
func newWorker(id int, extractor Extractor[Job]) *Worker {
	w := &Worker{
		id:   id,
		done: make(chan struct{}),
	}
	go w.run(extractor)
	return w
}

func (w *Worker) run(extractor Extractor[Job]) {
	defer close(w.done)
	defer func() {
		if r := recover(); r != nil {
			logger.Error(fmt.Sprintf("Worker %d disconnected due to an error: %v", w.id, r))
		}
	}()

	for {
		job, err := extractor.Pop()
		if err != nil {
			if errors.Is(err, ErrQueueClosed) {
				logger.Info(fmt.Sprintf("Worker %d disconnected: shutting down", w.id))
				return
			}
			logger.Error(fmt.Sprintf("Worker %d disconnected due to an error: %v", w.id, err))
			return
		}

		// 任务失败只终止当前Worker，协程池和其余Worker不受影响
		if err := job.Run(); err != nil {
			logger.Error(fmt.Sprintf("Worker %d disconnected due to an error: %v", w.id, err))
			return
		}
	}
}

// join 等待协程退出。队列已经或即将被关闭时才可以调用，否则会永远阻塞。
func (w *Worker) join() {
	<-w.done
}
