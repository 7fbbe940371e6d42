package tasks

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxenceleguery/portfolio/app/feed"
)

func TestPapersState_StartsLoading(t *testing.T) {
	state := NewPapersState(context.Background())

	assert.Equal(t, StatusLoading, state.Status())
	assert.Empty(t, state.Papers())

	select {
	case <-state.Done():
		t.Fatal("Done should not be closed while loading")
	default:
	}
}

func TestPapersState_Succeed(t *testing.T) {
	state := NewPapersState(context.Background())
	papers := []feed.Paper{{Title: "A"}, {Title: "B"}}

	require.True(t, state.Succeed(papers))

	assert.Equal(t, StatusSucceeded, state.Status())
	assert.Equal(t, papers, state.Papers())
	<-state.Done()
}

func TestPapersState_SucceedWithNothing(t *testing.T) {
	state := NewPapersState(context.Background())

	require.True(t, state.Succeed(nil))

	assert.Equal(t, StatusSucceeded, state.Status())
	assert.NotNil(t, state.Papers())
	assert.Empty(t, state.Papers())
}

func TestPapersState_Fail(t *testing.T) {
	state := NewPapersState(context.Background())

	require.True(t, state.Fail())

	assert.Equal(t, StatusFailed, state.Status())
	assert.NotNil(t, state.Papers())
	assert.Empty(t, state.Papers())
}

func TestPapersState_TransitionsOnlyOnce(t *testing.T) {
	state := NewPapersState(context.Background())

	require.True(t, state.Succeed([]feed.Paper{{Title: "A"}}))
	assert.False(t, state.Fail())
	assert.False(t, state.Succeed([]feed.Paper{{Title: "B"}}))

	assert.Equal(t, StatusSucceeded, state.Status())
	assert.Equal(t, "A", state.Papers()[0].Title)
}

func TestPapersState_ConcurrentResolveWinsOnce(t *testing.T) {
	state := NewPapersState(context.Background())

	var wg sync.WaitGroup
	results := make(chan bool, 20)
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() { defer wg.Done(); results <- state.Fail() }()
		go func() { defer wg.Done(); results <- state.Succeed(nil) }()
	}
	wg.Wait()
	close(results)

	wins := 0
	for ok := range results {
		if ok {
			wins++
		}
	}
	assert.Equal(t, 1, wins)
	assert.NotEqual(t, StatusLoading, state.Status())
}

func TestPapersState_DiscardsResultAfterScopeEnds(t *testing.T) {
	scope, cancel := context.WithCancel(context.Background())
	state := NewPapersState(scope)

	cancel()

	assert.False(t, state.Succeed([]feed.Paper{{Title: "late"}}))
	assert.Equal(t, StatusLoading, state.Status())
	assert.Empty(t, state.Papers())
}

func TestPapersState_PapersReturnsCopy(t *testing.T) {
	state := NewPapersState(context.Background())
	state.Succeed([]feed.Paper{{Title: "original"}})

	papers := state.Papers()
	papers[0].Title = "changed"

	assert.Equal(t, "original", state.Papers()[0].Title)
}

func TestPapersState_Wait(t *testing.T) {
	state := NewPapersState(context.Background())

	go func() {
		time.Sleep(10 * time.Millisecond)
		state.Succeed([]feed.Paper{{Title: "A"}})
	}()

	status, papers := state.Wait()
	assert.Equal(t, StatusSucceeded, status)
	assert.Len(t, papers, 1)
}

func TestPapersState_WaitReturnsWhenScopeEnds(t *testing.T) {
	scope, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	state := NewPapersState(scope)

	status, papers := state.Wait()
	assert.Equal(t, StatusLoading, status)
	assert.Empty(t, papers)
}
