package threads

import "sync"

// WorkerPool 持有N个Worker以及队列唯一的生产者句柄。
// 服务器把请求打包成Job提交进来，由空闲的Worker执行。
type WorkerPool struct {
	inserter Inserter[Job]
	workers  []*Worker
	closing  sync.Once
}

// NewWorkerPool 创建容量为capacity的协程池，Worker的编号为0..capacity-1。
// capacity小于1属于编程错误，直接panic。
func NewWorkerPool(capacity int) *WorkerPool {
	if capacity < 1 {
		panic("threads: pool capacity cannot be zero")
	}

	inserter, extractors := New[Job](capacity)

	workers := make([]*Worker, 0, capacity)
	for id := 0; id < capacity; id++ {
		workers = append(workers, newWorker(id, extractors[id]))
	}

	return &WorkerPool{
		inserter: inserter,
		workers:  workers,
	}
}

// Submit 任务入队。除队列内部的互斥锁之外不会阻塞调用者。
// 协程池关闭后再Submit属于编程错误，会panic。
func (p *WorkerPool) Submit(job Job) {
	p.inserter.Push(job)
}

// Close 关闭队列并按与创建相反的顺序join所有Worker。
// 关闭会唤醒所有阻塞在队列上的Worker，已入队的任务会先被执行完。
// 重复Close没有任何效果。
func (p *WorkerPool) Close() {
	p.closing.Do(func() {
		p.inserter.Close()
		for i := len(p.workers) - 1; i >= 0; i-- {
			p.workers[i].join()
		}
	})
}
