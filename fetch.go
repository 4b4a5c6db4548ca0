package mapsheet

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"net/http"
	"sync"
	"time"

	_ "image/jpeg"
	_ "image/png"
)

const (
	defaultRetries = 3
	defaultWorkers = 16
	defaultTimeout = 30 * time.Second

	userAgent    = "mapsheet/" + Version
	acceptHeader = "image/png,image/*;q=0.9,*/*;q=0.8"
)

// Version of the library, reported to tile servers and embedded in PDFs.
const Version = "1.0.1"

// Fetcher downloads tile images from a Provider. The zero value is not
// usable; obtain one with NewFetcher.
type Fetcher struct {
	Client  *http.Client
	Retries int
	Workers int
	Sleep   time.Duration
}

func NewFetcher() *Fetcher {
	return &Fetcher{
		Client:  &http.Client{Timeout: defaultTimeout},
		Retries: defaultRetries,
		Workers: defaultWorkers,
		Sleep:   time.Second,
	}
}

// Fetch downloads every tile that has no image yet, spreading requests over
// the provider's mirrors and retrying failed tiles up to Retries rounds. It
// returns an error if tiles are still missing after the last round.
func (f *Fetcher) Fetch(p Provider, tiles []*Tile, apiKey string) error {
	for round := 0; ; round++ {
		var pending []*Tile
		for _, t := range tiles {
			if !t.Done() {
				pending = append(pending, t)
			}
		}
		if len(pending) == 0 {
			return nil
		}
		if round >= f.Retries {
			return fmt.Errorf("%d/%d tiles missing after %d attempts", len(pending), len(tiles), f.Retries)
		}
		if round > 0 && f.Sleep > 0 {
			time.Sleep(f.Sleep)
		}

		var wg sync.WaitGroup
		sema := make(chan struct{}, f.Workers)
		for i, t := range pending {
			wg.Add(1)
			sema <- struct{}{}
			go func(seq int, t *Tile) {
				defer wg.Done()
				defer func() { <-sema }()
				img, err := f.fetchOne(p.URL(t, apiKey, seq))
				if err == nil {
					t.Image = img
				}
			}(i, t)
		}
		wg.Wait()
	}
}

func (f *Fetcher) fetchOne(url string) (image.Image, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", acceptHeader)

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("fetch %s: %s", url, resp.Status)
	}

	buf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(buf))
	return img, err
}
