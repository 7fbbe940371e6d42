package tasks

import (
	"context"

	"github.com/maxenceleguery/portfolio/app/feed"
)

// TaskSchedulerInterface runs tasks on a bounded worker pool.
// Example usage:
//
//	scheduler := NewScheduler(workerCount)
//	scheduler.Start()
//	defer scheduler.Stop()
//	scheduler.EnqueueTask(NewFetchPapersTask(query, client, state))
type TaskSchedulerInterface interface {
	Start()
	Stop()
	EnqueueTask(task TaskInterface) error
}

// PapersFetcher is satisfied by *feed.Client.
type PapersFetcher interface {
	Fetch(ctx context.Context, query string) ([]feed.Paper, error)
}

var _ PapersFetcher = (*feed.Client)(nil)
