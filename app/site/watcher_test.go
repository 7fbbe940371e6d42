package site

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWatcher(t *testing.T, contentCache *ContentCache) {
	t.Helper()

	watcher, err := NewContentWatcher(contentCache, 20*time.Millisecond)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(func() {
		cancel()
		watcher.Stop()
	})

	require.NoError(t, watcher.Start(ctx))
}

func profileName(contentCache *ContentCache) string {
	content, err := contentCache.GetContent()
	if err != nil {
		return ""
	}
	return content.Profile.Name
}

func TestContentWatcherReloadsOnWrite(t *testing.T) {
	path := writeContent(t, validContent)
	contentCache := NewContentCache(path)
	require.NoError(t, contentCache.Run())
	startWatcher(t, contentCache)

	require.NoError(t, os.WriteFile(path, []byte("profile:\n  name: Someone Else\n"), 0644))

	assert.Eventually(t, func() bool {
		return profileName(contentCache) == "Someone Else"
	}, 2*time.Second, 20*time.Millisecond)
}

func TestContentWatcherKeepsContentOnInvalidWrite(t *testing.T) {
	path := writeContent(t, validContent)
	contentCache := NewContentCache(path)
	require.NoError(t, contentCache.Run())
	startWatcher(t, contentCache)

	require.NoError(t, os.WriteFile(path, []byte("profile:\n  location: nowhere\n"), 0644))
	time.Sleep(200 * time.Millisecond)

	assert.Equal(t, "Maxence Leguéry", profileName(contentCache))
}

func TestContentWatcherMissingDirectory(t *testing.T) {
	watcher, err := NewContentWatcher(NewContentCache("/does/not/exist/content.yml"), 0)
	require.NoError(t, err)
	defer watcher.Stop()

	assert.Error(t, watcher.Start(context.Background()))
}
