package notify

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sabhahq/sabha/internal/api"
	"github.com/sabhahq/sabha/internal/log"
)

type fakeFeed struct {
	mu         sync.Mutex
	items      []api.Notification
	fetchErr   error
	markErr    error
	fetchCount int
	marked     []string
}

func (f *fakeFeed) Notifications(ctx context.Context) ([]api.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetchCount++
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	items := make([]api.Notification, len(f.items))
	copy(items, f.items)
	return items, nil
}

func (f *fakeFeed) MarkNotificationRead(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.markErr != nil {
		return f.markErr
	}
	f.marked = append(f.marked, id)
	return nil
}

func (f *fakeFeed) fetches() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetchCount
}

func (f *fakeFeed) set(items []api.Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = items
}

func TestStartFetchesImmediately(t *testing.T) {
	feed := &fakeFeed{items: []api.Notification{{ID: "n1"}}}
	poller := NewPoller(feed, time.Hour, log.Discard())

	poller.Start(context.Background())
	defer poller.Stop()

	// The first fetch does not wait for the first tick.
	assert.Eventually(t, func() bool {
		return len(poller.Snapshot()) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, feed.fetches())
}

func TestStartTwiceIsNoop(t *testing.T) {
	feed := &fakeFeed{}
	poller := NewPoller(feed, time.Hour, log.Discard())

	poller.Start(context.Background())
	poller.Start(context.Background())
	defer poller.Stop()

	assert.Eventually(t, func() bool {
		return feed.fetches() == 1
	}, time.Second, 5*time.Millisecond)
}

func TestPeriodicRefreshReplacesWholesale(t *testing.T) {
	feed := &fakeFeed{items: []api.Notification{{ID: "n1"}, {ID: "n2"}}}
	poller := NewPoller(feed, 10*time.Millisecond, log.Discard())

	poller.Start(context.Background())
	defer poller.Stop()

	require.Eventually(t, func() bool {
		return len(poller.Snapshot()) == 2
	}, time.Second, 5*time.Millisecond)

	// The server dropped n1; the cache must not keep it.
	feed.set([]api.Notification{{ID: "n2"}})

	assert.Eventually(t, func() bool {
		items := poller.Snapshot()
		return len(items) == 1 && items[0].ID == "n2"
	}, time.Second, 5*time.Millisecond)
}

func TestFailedFetchKeepsCache(t *testing.T) {
	feed := &fakeFeed{items: []api.Notification{{ID: "n1"}}}
	poller := NewPoller(feed, time.Hour, log.Discard())

	poller.RefreshNow(context.Background())
	require.Len(t, poller.Snapshot(), 1)

	feed.mu.Lock()
	feed.fetchErr = assert.AnError
	feed.mu.Unlock()

	poller.RefreshNow(context.Background())
	assert.Len(t, poller.Snapshot(), 1, "failed refresh must not drop the cache")
}

func TestMarkRead(t *testing.T) {
	feed := &fakeFeed{items: []api.Notification{{ID: "n1"}, {ID: "n2"}}}
	poller := NewPoller(feed, time.Hour, log.Discard())
	poller.RefreshNow(context.Background())

	require.NoError(t, poller.MarkRead(context.Background(), "n1"))

	assert.Equal(t, []string{"n1"}, feed.marked)
	items := poller.Snapshot()
	assert.True(t, items[0].IsRead, "marked entry flips locally")
	assert.False(t, items[1].IsRead, "other entries untouched")
	assert.Equal(t, 1, feed.fetches(), "no refetch after marking")
}

func TestMarkReadServerFailureLeavesCache(t *testing.T) {
	feed := &fakeFeed{items: []api.Notification{{ID: "n1"}}, markErr: assert.AnError}
	poller := NewPoller(feed, time.Hour, log.Discard())
	poller.RefreshNow(context.Background())

	err := poller.MarkRead(context.Background(), "n1")
	require.Error(t, err)
	assert.False(t, poller.Snapshot()[0].IsRead, "cache only flips after the server accepts")
}

func TestUnread(t *testing.T) {
	feed := &fakeFeed{items: []api.Notification{
		{ID: "n1"},
		{ID: "n2", IsRead: true},
		{ID: "n3"},
	}}
	poller := NewPoller(feed, time.Hour, log.Discard())

	assert.Equal(t, 0, poller.Unread(), "empty cache before the first fetch")

	poller.RefreshNow(context.Background())
	assert.Equal(t, 2, poller.Unread())
}

func TestStopIsIdempotent(t *testing.T) {
	feed := &fakeFeed{}
	poller := NewPoller(feed, time.Hour, log.Discard())

	poller.Start(context.Background())
	poller.Stop()
	poller.Stop()

	fetched := feed.fetches()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, fetched, feed.fetches(), "no fetches after Stop")
}

func TestStopWithoutStart(t *testing.T) {
	poller := NewPoller(&fakeFeed{}, time.Hour, log.Discard())
	poller.Stop()
}
