package bmp2coe

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// DefaultWorkers is the number of concurrent conversions used by Scan when
// fewer than one worker is requested.
const DefaultWorkers = 4

var errWalkCancelled = errors.New("walk cancelled")

func isBitmap(file string) bool {
	return strings.EqualFold(filepath.Ext(file), ".bmp")
}

func (c *Converter) findImages(ctx context.Context, base string) (<-chan string, <-chan error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories, otherwise we end up fighting with things like Spotlight, etc.
			if file != base && info.Name()[0] == '.' {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if !info.Mode().IsRegular() || !isBitmap(file) {
				return nil
			}

			select {
			case out <- file:
			case <-ctx.Done():
				return errWalkCancelled
			}

			return nil
		})
	}()
	return out, errc
}

func (c *Converter) imageWorker(ctx context.Context, cancel context.CancelFunc, in <-chan string) <-chan error {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for file := range in {
			if ctx.Err() != nil {
				continue
			}
			if err := c.Convert(file, OutputPath(file)); err != nil {
				errc <- err
				cancel()
				return
			}
		}
	}()
	return errc
}

// waitForPipeline drains every error channel and returns the first error,
// preferring a failed conversion over the cancelled walk it caused.
func waitForPipeline(errs ...<-chan error) error {
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		first error
	)
	wg.Add(len(errs))
	for _, c := range errs {
		go func(c <-chan error) {
			defer wg.Done()
			for err := range c {
				if err == nil {
					continue
				}
				mu.Lock()
				if first == nil || errors.Is(first, errWalkCancelled) {
					first = err
				}
				mu.Unlock()
			}
		}(c)
	}
	wg.Wait()
	return first
}

// Scan walks the directory tree at path and converts every bitmap found to
// a COE file alongside it, using up to workers concurrent conversions. The
// first error stops the walk and is returned.
func (c *Converter) Scan(path string, workers int) error {
	dir, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	if workers < 1 {
		workers = DefaultWorkers
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	files, errc := c.findImages(ctx, dir)
	errcList = append(errcList, errc)

	for i := 0; i < workers; i++ {
		errcList = append(errcList, c.imageWorker(ctx, cancelFunc, files))
	}

	c.logger.Debug("scanning", "dir", dir, "workers", workers)

	return waitForPipeline(errcList...)
}
