// Package media runs validated uploads against the object store.
package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/zone2fun/py-asset/pkg/util"
)

// Size limits enforced before any bytes leave the server.
const (
	MaxImageSize = 10 << 20  // 10 MB
	MaxVideoSize = 100 << 20 // 100 MB
)

var (
	ErrImageTooLarge = errors.New("image exceeds 10 MB limit")
	ErrVideoTooLarge = errors.New("video exceeds 100 MB limit")
	ErrNotAnImage    = errors.New("file is not an image")
	ErrNotAVideo     = errors.New("file is not a video")
)

// Store is the object-store capability the uploader needs: submit bytes,
// receive a public URL.
type Store interface {
	Put(ctx context.Context, key, contentType string, body io.ReadSeeker) (string, error)
}

// File is one pending upload.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.ReadSeeker
}

// Uploader pushes batches of files to the store with bounded concurrency.
type Uploader struct {
	store   Store
	workers int
}

func NewUploader(store Store, workers int) *Uploader {
	if workers <= 0 {
		workers = 4
	}
	return &Uploader{store: store, workers: workers}
}

// Images uploads a batch of images and returns their URLs in input order.
// The batch is all-or-nothing: the first failure cancels the remaining
// uploads and the whole call errors. Blobs that finished before the failure
// stay in the bucket; nothing compensates for them.
func (u *Uploader) Images(ctx context.Context, folder string, files []File) ([]string, error) {
	if len(files) == 0 {
		return nil, nil
	}
	for _, f := range files {
		if !strings.HasPrefix(f.ContentType, "image/") {
			return nil, fmt.Errorf("%w: %s (%s)", ErrNotAnImage, f.Name, f.ContentType)
		}
		if f.Size > MaxImageSize {
			return nil, fmt.Errorf("%w: %s", ErrImageTooLarge, f.Name)
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	urls := make([]string, len(files))
	jobs := make(chan int)
	errCh := make(chan error, 1)
	var wg sync.WaitGroup

	worker := func() {
		defer wg.Done()
		for i := range jobs {
			select {
			case <-ctx.Done():
				return
			default:
			}
			f := files[i]
			url, err := u.store.Put(ctx, util.ObjectKey(folder, f.Name), f.ContentType, f.Body)
			if err != nil {
				select {
				case errCh <- fmt.Errorf("upload %s: %w", f.Name, err):
				default:
				}
				cancel()
				return
			}
			urls[i] = url
		}
	}

	n := u.workers
	if n > len(files) {
		n = len(files)
	}
	for i := 0; i < n; i++ {
		wg.Add(1)
		go worker()
	}
feed:
	for i := range files {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	select {
	case err := <-errCh:
		return nil, err
	default:
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return urls, nil
}

// Video uploads a single video file.
func (u *Uploader) Video(ctx context.Context, folder string, f File) (string, error) {
	if !strings.HasPrefix(f.ContentType, "video/") {
		return "", fmt.Errorf("%w: %s (%s)", ErrNotAVideo, f.Name, f.ContentType)
	}
	if f.Size > MaxVideoSize {
		return "", fmt.Errorf("%w: %s", ErrVideoTooLarge, f.Name)
	}
	url, err := u.store.Put(ctx, util.ObjectKey(folder, f.Name), f.ContentType, f.Body)
	if err != nil {
		return "", fmt.Errorf("upload video %s: %w", f.Name, err)
	}
	return url, nil
}
