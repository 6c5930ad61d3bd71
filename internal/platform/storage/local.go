package storage

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrInvalidPath = errors.New("invalid storage path")

// Local keeps uploaded files below a root directory.
type Local struct {
	Root string
	now  func() time.Time
}

type Stored struct {
	Path        string
	Name        string
	ContentType string
	Size        int64
}

func NewLocal(root string) (*Local, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, errors.Wrap(err, "create upload dir")
	}
	return &Local{Root: root, now: time.Now}, nil
}

// Save copies r under a fresh name and sniffs its content type. The returned
// path is relative to Root.
func (l *Local) Save(name string, r io.Reader) (Stored, error) {
	dir := l.now().UTC().Format("2006/01")
	if err := os.MkdirAll(filepath.Join(l.Root, dir), 0o755); err != nil {
		return Stored{}, errors.Wrap(err, "create upload dir")
	}
	tmp, err := os.CreateTemp(filepath.Join(l.Root, dir), ".upload-*")
	if err != nil {
		return Stored{}, errors.Wrap(err, "create upload")
	}
	defer os.Remove(tmp.Name())

	size, err := io.Copy(tmp, r)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return Stored{}, errors.Wrap(err, "write upload")
	}

	mt, err := mimetype.DetectFile(tmp.Name())
	if err != nil {
		return Stored{}, errors.Wrap(err, "detect content type")
	}
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		ext = mt.Extension()
	}
	rel := filepath.ToSlash(filepath.Join(dir, uuid.NewString()+ext))
	if err := os.Rename(tmp.Name(), filepath.Join(l.Root, rel)); err != nil {
		return Stored{}, errors.Wrap(err, "store upload")
	}
	return Stored{Path: rel, Name: filepath.Base(name), ContentType: mt.String(), Size: size}, nil
}

func (l *Local) Open(rel string) (*os.File, error) {
	full, err := l.resolve(rel)
	if err != nil {
		return nil, err
	}
	return os.Open(full)
}

func (l *Local) Remove(rel string) error {
	full, err := l.resolve(rel)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "remove upload")
	}
	return nil
}

func (l *Local) resolve(rel string) (string, error) {
	rel = filepath.FromSlash(rel)
	if rel == "" || !filepath.IsLocal(rel) {
		return "", ErrInvalidPath
	}
	return filepath.Join(l.Root, rel), nil
}
