package util

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ObjectKey builds a unique storage key for an uploaded file, keeping the
// original extension so the CDN serves the right content type. Keys are
// namespaced by folder, e.g. "submissions/1693526400_5f3a9c_photo.jpg".
func ObjectKey(folder, filename string) string {
	base := path.Base(filename)
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		}
		return '_'
	}, base)
	short := uuid.NewString()[:8]
	return fmt.Sprintf("%s/%d_%s_%s", folder, time.Now().Unix(), short, base)
}
