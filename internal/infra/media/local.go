package media

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"staybook/internal/pkg/config"
	"staybook/internal/pkg/errs"
)

// LocalStore deletes media files from the local upload directory. URLs that
// do not carry the configured prefix belong to an external host and are left
// alone.
type LocalStore struct {
	root      string
	urlPrefix string
}

func NewLocalStore(cfg config.MediaConfig) *LocalStore {
	return &LocalStore{
		root:      cfg.Root,
		urlPrefix: strings.TrimSuffix(cfg.URLPrefix, "/"),
	}
}

func (s *LocalStore) Remove(_ context.Context, url string) error {
	rel, ok := strings.CutPrefix(url, s.urlPrefix+"/")
	if !ok {
		return nil
	}

	// Reject anything that escapes the upload root.
	rel = filepath.Clean(rel)
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || filepath.IsAbs(rel) {
		return errs.New("media path escapes upload root")
	}

	if err := os.Remove(filepath.Join(s.root, rel)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return errs.Wrap(err, "failed to remove media file")
	}
	return nil
}
