package tasks

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/maxenceleguery/portfolio/app/feed"
)

type Status string

const (
	StatusLoading   Status = "loading"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// PapersState holds the papers of one page view. It starts in Loading and
// moves to Succeeded or Failed exactly once. The state is bound to scope:
// once scope is done, a late result is dropped and the state stays Loading.
type PapersState struct {
	scope  context.Context
	mu     sync.RWMutex
	status Status
	papers []feed.Paper
	done   chan struct{}
}

func NewPapersState(scope context.Context) *PapersState {
	return &PapersState{
		scope:  scope,
		status: StatusLoading,
		done:   make(chan struct{}),
	}
}

// Succeed records the fetched papers. It reports whether the transition happened.
func (s *PapersState) Succeed(papers []feed.Paper) bool {
	if papers == nil {
		papers = []feed.Paper{}
	}
	return s.resolve(StatusSucceeded, papers)
}

// Fail records a failed fetch. Failed always carries an empty list.
func (s *PapersState) Fail() bool {
	return s.resolve(StatusFailed, []feed.Paper{})
}

func (s *PapersState) resolve(status Status, papers []feed.Paper) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusLoading {
		return false
	}

	if err := s.scope.Err(); err != nil {
		slog.Debug("Papers view gone before fetch completed, discarding result", "status", string(status), "error", err)
		return false
	}

	s.status = status
	s.papers = papers
	close(s.done)

	return true
}

func (s *PapersState) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Papers returns a copy; the stored list is never modified after resolution.
func (s *PapersState) Papers() []feed.Paper {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.papers)
}

// Done is closed when the state leaves Loading.
func (s *PapersState) Done() <-chan struct{} {
	return s.done
}

func (s *PapersState) Scope() context.Context {
	return s.scope
}

// Wait blocks until the state resolves or its scope ends.
func (s *PapersState) Wait() (Status, []feed.Paper) {
	select {
	case <-s.done:
	case <-s.scope.Done():
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status, slices.Clone(s.papers)
}
