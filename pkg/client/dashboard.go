package client

import (
	"context"
	"sync"
)

// Dashboard bundles the four fetches the dashboard view needs at load.
type Dashboard struct {
	Stats   *Stats
	Videos  []Video
	Songs   []Song
	Artists []Artist
}

// LoadDashboard issues the four reads concurrently and waits for all of them.
// The first error wins.
func (c *Client) LoadDashboard(ctx context.Context, f Filters, stat StatFilter) (*Dashboard, error) {
	var (
		d        Dashboard
		mu       sync.Mutex
		firstErr error
		wg       sync.WaitGroup
	)

	record := func(err error) {
		if err == nil {
			return
		}
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	wg.Add(4)
	go func() {
		defer wg.Done()
		stats, err := c.GetStats(ctx)
		d.Stats = stats
		record(err)
	}()
	go func() {
		defer wg.Done()
		videos, err := c.Videos(ctx, f, stat)
		d.Videos = videos
		record(err)
	}()
	go func() {
		defer wg.Done()
		songs, err := c.Songs(ctx, 0)
		d.Songs = songs
		record(err)
	}()
	go func() {
		defer wg.Done()
		artists, err := c.Artists(ctx)
		d.Artists = artists
		record(err)
	}()
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return &d, nil
}
