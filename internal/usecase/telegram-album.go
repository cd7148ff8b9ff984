package usecase

import (
	"context"
	"sync"
	"time"
)

// albums tracks Telegram media groups while their messages are handled.
// Every message of an album arrives as its own update, so a caption on one
// of them has to wait until the other files are in the draft.
type albums struct {
	mu     sync.Mutex
	settle time.Duration
	groups map[string]*album
}

type album struct {
	// active counts members still downloading, waiting those in settle.
	active    int
	waiting   int
	last      time.Time
	captioned bool
	listed    bool
}

func newAlbums(settle time.Duration) *albums {
	return &albums{
		settle: settle,
		groups: make(map[string]*album),
	}
}

// begin registers a member of groupID before its files are downloaded.
func (a *albums) begin(groupID string, captioned bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	g, ok := a.groups[groupID]
	if !ok {
		g = &album{}
		a.groups[groupID] = g
	}
	g.active++
	g.last = time.Now()
	g.captioned = g.captioned || captioned
}

// wait marks the member as attached and blocks until no member of the group
// is downloading and none was attached for the settle delay. It reports
// whether the caller should list the draft: only one uncaptioned member of an
// album without caption does.
func (a *albums) wait(ctx context.Context, groupID string, captioned bool) (bool, error) {
	a.mu.Lock()
	g := a.groups[groupID]
	g.active--
	g.waiting++
	g.last = time.Now()

	var err error
	for {
		idle := time.Since(g.last)
		if g.active == 0 && idle >= a.settle {
			break
		}
		delay := a.settle - idle
		if g.active > 0 || delay <= 0 {
			delay = max(a.settle, time.Millisecond)
		}
		a.mu.Unlock()
		select {
		case <-ctx.Done():
			err = ctx.Err()
		case <-time.After(delay):
		}
		a.mu.Lock()
		if err != nil {
			break
		}
	}

	g.waiting--
	list := err == nil && !captioned && !g.captioned && !g.listed
	if list {
		g.listed = true
	}
	if g.active == 0 && g.waiting == 0 {
		delete(a.groups, groupID)
	}
	a.mu.Unlock()
	return list, err
}
