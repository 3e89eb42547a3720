package pool

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mmcdole/tunepool/internal/domain"
)

// fakeCatalog serves fixed pages keyed by offset and counts every request.
type fakeCatalog struct {
	mu      sync.Mutex
	pages   map[int][]domain.RawTrack
	err     error
	calls   int
	offsets []int
	limits  []int
	colls   []domain.Collection

	// gate, when set, blocks every FetchPage until closed
	gate chan struct{}

	// started is closed by the first FetchPage
	started   chan struct{}
	startOnce sync.Once
}

func newFakeCatalog(records []domain.RawTrack) *fakeCatalog {
	f := &fakeCatalog{
		pages:   make(map[int][]domain.RawTrack),
		started: make(chan struct{}),
	}
	for offset := 0; offset < len(records); offset += PageSize {
		end := min(offset+PageSize, len(records))
		f.pages[offset] = records[offset:end]
	}
	return f
}

func (f *fakeCatalog) FetchPage(_ context.Context, c domain.Collection, offset, limit int) ([]domain.RawTrack, error) {
	f.mu.Lock()
	f.calls++
	f.offsets = append(f.offsets, offset)
	f.limits = append(f.limits, limit)
	f.colls = append(f.colls, c)
	gate := f.gate
	err := f.err
	page := f.pages[offset]
	f.mu.Unlock()
	f.startOnce.Do(func() { close(f.started) })

	if gate != nil {
		<-gate
	}
	if err != nil {
		return nil, err
	}
	return page, nil
}

func (f *fakeCatalog) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeCatalog) SetErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

// rawTracks returns n distinct previewable records t0..t{n-1}.
func rawTracks(n int) []domain.RawTrack {
	out := make([]domain.RawTrack, n)
	for i := range out {
		out[i] = domain.RawTrack{
			ID:          fmt.Sprintf("t%d", i),
			Title:       fmt.Sprintf("Song %d", i),
			ArtistName:  fmt.Sprintf("Artist %d", i),
			PreviewURL:  fmt.Sprintf("https://cdn/preview/%d.mp3", i),
			DurationSec: 180,
		}
	}
	return out
}

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}
