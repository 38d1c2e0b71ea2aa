package storage

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

type diskStore struct {
	dir       string
	publicURL string
}

// NewDiskStore keeps uploads on the local filesystem under dir and maps
// them to publicURL for serving.
func NewDiskStore(dir, publicURL string) (Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating uploads dir: %w", err)
	}

	return &diskStore{dir: dir, publicURL: strings.TrimSuffix(publicURL, "/")}, nil
}

const nameAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// objectName builds names like 1712345678901-x4k2q.jpg; the timestamp
// plus random suffix keeps concurrent uploads from colliding.
func objectName(original string) string {
	ext := strings.ToLower(filepath.Ext(original))

	suffix := make([]byte, 5)
	for i := range suffix {
		suffix[i] = nameAlphabet[rand.IntN(len(nameAlphabet))]
	}

	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), suffix, ext)
}

func (s *diskStore) Save(_ context.Context, filename string, _ string, r io.Reader) (string, error) {
	name := objectName(filename)

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("creating upload file: %w", err)
	}

	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("writing upload: %w", err)
	}

	return s.publicURL + "/" + name, nil
}

func (s *diskStore) Remove(_ context.Context, publicURL string) error {
	name := path.Base(publicURL)
	if name == "." || name == "/" || name == "" {
		return fmt.Errorf("invalid image url %q", publicURL)
	}

	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing upload: %w", err)
	}

	return nil
}
