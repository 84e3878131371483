package adapter

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ---------------------------------------------------------------------------
// Document storage and extraction adapters
// ---------------------------------------------------------------------------

// FileDocumentStore implements port.DocumentStore over a local directory.
// Storage keys are relative paths inside the root; traversal outside the
// root is rejected.
type FileDocumentStore struct {
	root string
}

func NewFileDocumentStore(root string) *FileDocumentStore {
	return &FileDocumentStore{root: root}
}

func (s *FileDocumentStore) Fetch(_ context.Context, storageKey string) ([]byte, error) {
	if storageKey == "" {
		return nil, fmt.Errorf("storage key is required")
	}
	path := filepath.Join(s.root, filepath.Clean("/"+storageKey))
	if !strings.HasPrefix(path, filepath.Clean(s.root)+string(os.PathSeparator)) {
		return nil, fmt.Errorf("invalid storage key: %q", storageKey)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fetch document %q: %w", storageKey, err)
	}
	return data, nil
}

// SimulatedExtractor implements port.DocumentExtractor with deterministic
// output derived from the document bytes. It stands in for a real OCR
// provider during development.
type SimulatedExtractor struct{}

func NewSimulatedExtractor() *SimulatedExtractor {
	return &SimulatedExtractor{}
}

func (e *SimulatedExtractor) Extract(ctx context.Context, kind string, data []byte) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty document")
	}

	h := sha256.Sum256(data)
	fields := map[string]string{
		"document_kind": kind,
		"checksum":      fmt.Sprintf("%x", h[:8]),
	}
	switch strings.ToUpper(kind) {
	case "INE", "PASSPORT":
		fields["curp"] = fmt.Sprintf("XEXX%06d00HXXXXA%d", h[0], h[1]%10)
		fields["full_name"] = fmt.Sprintf("PERSONA EXTRAIDA %02d", h[2]%100)
	case "CONSTANCIA_FISCAL":
		fields["rfc"] = fmt.Sprintf("XAXX%06d000", h[0])
		fields["razon_social"] = fmt.Sprintf("EMPRESA EXTRAIDA %02d", h[2]%100)
	}
	return fields, nil
}
