package http

import (
	"fmt"
	"mime/multipart"

	"github.com/zone2fun/py-asset/internal/business/media"
)

// openFiles converts multipart headers into media files, opening each part.
// The returned closer must be called once the upload completes.
func openFiles(headers []*multipart.FileHeader) ([]media.File, func(), error) {
	files := make([]media.File, 0, len(headers))
	var opened []multipart.File
	closeAll := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("open upload %s: %w", fh.Filename, err)
		}
		opened = append(opened, f)
		files = append(files, media.File{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Body:        f,
		})
	}
	return files, closeAll, nil
}
