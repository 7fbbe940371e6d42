package tasks

import (
	"context"
	"fmt"
	"log/slog"
)

type FetchPapersTask struct {
	Task
	Query  string
	client PapersFetcher
	state  *PapersState
}

func NewFetchPapersTask(query string, client PapersFetcher, state *PapersState) *FetchPapersTask {
	return &FetchPapersTask{
		Task:   NewTask(TaskTypeFetchPapers),
		Query:  query,
		client: client,
		state:  state,
	}
}

func (t *FetchPapersTask) Execute(ctx context.Context) error {
	// The request dies with the view that asked for it
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(t.state.Scope(), cancel)
	defer stop()

	select {
	case <-ctx.Done():
		t.state.Fail()
		return ctx.Err()
	default:
	}

	papers, err := t.client.Fetch(ctx, t.Query)
	if err != nil {
		t.state.Fail()
		return fmt.Errorf("failed to fetch papers: %w", err)
	}

	t.state.Succeed(papers)

	slog.Info("Task completed",
		"type", string(t.Type),
		"query", t.Query,
		"duration", t.GetDuration(),
		"papers", len(papers))

	return nil
}
