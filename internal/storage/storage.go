// Package storage holds uploaded image assets. Clients submit images
// inline as data-URLs; the ingestor decodes them, writes the bytes under a
// fresh unique name and hands back the public URL the SPA embeds.
package storage

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
)

// ContentStore is keyed blob storage with URL issuance. Disk is the only
// implementation today; the interface keeps the services testable and
// leaves room for an object-store backend.
type ContentStore interface {
	Put(name string, data []byte) error
	Delete(name string) error
	URL(name string) string
}

// DiskStore writes blobs under root/<namespace>/ and issues URLs under
// publicBase/<namespace>/.
type DiskStore struct {
	root       string
	publicBase string
	namespace  string
}

func NewDiskStore(root, publicBase, namespace string) (*DiskStore, error) {
	dir := filepath.Join(root, namespace)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: creating %s: %w", dir, err)
	}
	return &DiskStore{root: root, publicBase: publicBase, namespace: namespace}, nil
}

func (s *DiskStore) Put(name string, data []byte) error {
	p := filepath.Join(s.root, s.namespace, filepath.Base(name))
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return fmt.Errorf("storage: writing %s: %w", name, err)
	}
	return nil
}

func (s *DiskStore) Delete(name string) error {
	p := filepath.Join(s.root, s.namespace, filepath.Base(name))
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: deleting %s: %w", name, err)
	}
	return nil
}

func (s *DiskStore) URL(name string) string {
	return path.Join(s.publicBase, s.namespace, path.Base(name))
}
