package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
)

type mockObjectStore struct {
	mu      sync.Mutex
	puts    []string
	failKey string // substring of the key that should fail
}

func (m *mockObjectStore) Put(_ context.Context, key, _ string, _ io.ReadSeeker) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failKey != "" && strings.Contains(key, m.failKey) {
		return "", errors.New("bucket rejected upload")
	}
	m.puts = append(m.puts, key)
	return "https://cdn.example/" + key, nil
}

func imageFile(name string, size int64) File {
	return File{Name: name, ContentType: "image/jpeg", Size: size, Body: bytes.NewReader([]byte("x"))}
}

func TestImagesPreservesOrder(t *testing.T) {
	store := &mockObjectStore{}
	u := NewUploader(store, 3)

	var files []File
	for i := 0; i < 8; i++ {
		files = append(files, imageFile(fmt.Sprintf("img%d.jpg", i), 100))
	}

	urls, err := u.Images(context.Background(), "submissions", files)
	if err != nil {
		t.Fatalf("Images: %v", err)
	}
	if len(urls) != len(files) {
		t.Fatalf("got %d urls, want %d", len(urls), len(files))
	}
	for i, url := range urls {
		if !strings.Contains(url, fmt.Sprintf("img%d.jpg", i)) {
			t.Errorf("urls[%d] = %q, out of order", i, url)
		}
		if !strings.Contains(url, "submissions/") {
			t.Errorf("urls[%d] = %q, missing folder prefix", i, url)
		}
	}
}

func TestImagesAllOrNothing(t *testing.T) {
	store := &mockObjectStore{failKey: "bad.jpg"}
	u := NewUploader(store, 2)

	files := []File{
		imageFile("good1.jpg", 100),
		imageFile("bad.jpg", 100),
		imageFile("good2.jpg", 100),
	}
	urls, err := u.Images(context.Background(), "submissions", files)
	if err == nil {
		t.Fatal("expected batch failure")
	}
	if urls != nil {
		t.Fatalf("failed batch returned urls: %v", urls)
	}
}

func TestImagesValidation(t *testing.T) {
	u := NewUploader(&mockObjectStore{}, 2)

	_, err := u.Images(context.Background(), "x", []File{
		{Name: "doc.pdf", ContentType: "application/pdf", Size: 10, Body: bytes.NewReader(nil)},
	})
	if !errors.Is(err, ErrNotAnImage) {
		t.Errorf("pdf accepted as image: %v", err)
	}

	_, err = u.Images(context.Background(), "x", []File{imageFile("huge.jpg", MaxImageSize+1)})
	if !errors.Is(err, ErrImageTooLarge) {
		t.Errorf("oversize image accepted: %v", err)
	}
}

func TestImagesValidationHappensBeforeAnyUpload(t *testing.T) {
	store := &mockObjectStore{}
	u := NewUploader(store, 2)

	_, err := u.Images(context.Background(), "x", []File{
		imageFile("ok.jpg", 100),
		imageFile("huge.jpg", MaxImageSize+1),
	})
	if !errors.Is(err, ErrImageTooLarge) {
		t.Fatalf("err = %v", err)
	}
	if len(store.puts) != 0 {
		t.Fatalf("validation failure still uploaded %d files", len(store.puts))
	}
}

func TestVideoLimits(t *testing.T) {
	store := &mockObjectStore{}
	u := NewUploader(store, 1)

	_, err := u.Video(context.Background(), "videos", File{
		Name: "tour.mp4", ContentType: "video/mp4", Size: MaxVideoSize + 1, Body: bytes.NewReader(nil),
	})
	if !errors.Is(err, ErrVideoTooLarge) {
		t.Errorf("oversize video accepted: %v", err)
	}

	_, err = u.Video(context.Background(), "videos", File{
		Name: "pic.jpg", ContentType: "image/jpeg", Size: 10, Body: bytes.NewReader(nil),
	})
	if !errors.Is(err, ErrNotAVideo) {
		t.Errorf("image accepted as video: %v", err)
	}

	url, err := u.Video(context.Background(), "videos", File{
		Name: "tour.mp4", ContentType: "video/mp4", Size: 1024, Body: bytes.NewReader([]byte("v")),
	})
	if err != nil {
		t.Fatalf("Video: %v", err)
	}
	if !strings.Contains(url, "videos/") {
		t.Errorf("video url = %q", url)
	}
}

func TestImagesEmptyBatch(t *testing.T) {
	u := NewUploader(&mockObjectStore{}, 2)
	urls, err := u.Images(context.Background(), "x", nil)
	if err != nil || urls != nil {
		t.Fatalf("empty batch: urls=%v err=%v", urls, err)
	}
}
