package backup

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FilesystemTarget keeps backups as files under a root directory.
type FilesystemTarget struct {
	root string
}

// NewFilesystemTarget creates root if needed.
func NewFilesystemTarget(root string) (*FilesystemTarget, error) {
	if root == "" {
		return nil, fmt.Errorf("backup directory required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &FilesystemTarget{root: root}, nil
}

func (t *FilesystemTarget) Name() string { return "filesystem" }

func sanitizeKey(key string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", fmt.Errorf("empty key")
	}
	if strings.Contains(key, "..") || strings.HasPrefix(key, "/") {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Clean(key), nil
}

func (t *FilesystemTarget) Put(ctx context.Context, key string, r io.Reader, size int64) (Info, error) {
	k, err := sanitizeKey(key)
	if err != nil {
		return Info{}, err
	}
	path := filepath.Join(t.root, k)
	if _, err := os.Stat(path); err == nil {
		return Info{}, fmt.Errorf("backup %s already exists", key)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return Info{}, err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return Info{}, err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	n, err := io.Copy(tmp, r)
	if err != nil {
		_ = tmp.Close()
		return Info{}, err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return Info{}, err
	}
	if err := tmp.Close(); err != nil {
		return Info{}, err
	}
	if size >= 0 && n != size {
		return Info{}, fmt.Errorf("short write for %s: %d of %d bytes", key, n, size)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return Info{}, err
	}

	st, err := os.Stat(path)
	if err != nil {
		return Info{}, err
	}
	return Info{Key: key, Size: st.Size(), CreatedAt: st.ModTime().UTC()}, nil
}

func (t *FilesystemTarget) List(ctx context.Context, prefix string) ([]Info, error) {
	var infos []Info
	err := filepath.WalkDir(t.root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || strings.HasPrefix(d.Name(), ".tmp-") {
			return nil
		}
		rel, err := filepath.Rel(t.root, path)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		if !strings.HasPrefix(key, prefix) {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			return err
		}
		infos = append(infos, Info{Key: key, Size: fi.Size(), CreatedAt: fi.ModTime().UTC()})
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Key < infos[j].Key })
	return infos, nil
}
