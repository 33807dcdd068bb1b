package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-chat-keeper/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers aggregates the given workers. Run launches them in order.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// refreshWorker starts the periodic feed refresh job when run. The job itself
// owns its goroutine; Run returns immediately.
type refreshWorker struct {
	ctx      context.Context
	job      service.RefreshJob
	interval time.Duration
}

// NewRefreshWorker wraps a RefreshJob as a Worker bound to ctx and interval.
func NewRefreshWorker(ctx context.Context, job service.RefreshJob, interval time.Duration) Worker {
	return &refreshWorker{ctx: ctx, job: job, interval: interval}
}

func (w *refreshWorker) Run() {
	w.job.Start(w.ctx, w.interval)
}
