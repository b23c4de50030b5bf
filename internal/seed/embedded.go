package seed

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
)

//go:embed data/books.txt
var embeddedBooks []byte

// OpenBooks opens the books seed file at path, or the embedded books file when
// path is empty. The caller must close the returned reader.
func OpenBooks(path string) (io.ReadCloser, error) {
	if path == "" {
		return io.NopCloser(bytes.NewReader(embeddedBooks)), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open books file: %w", err)
	}
	return file, nil
}
