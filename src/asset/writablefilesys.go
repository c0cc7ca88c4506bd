package asset

import (
	"os"
	"path/filepath"
)

type WriteableFileSystem interface {
	WriteFile(path Path, data []byte) error
}

type writableFS struct {
	base Path
}

// WriteFile creates any missing parent directories under the base path.
func (f *writableFS) WriteFile(path Path, data []byte) error {
	full := filepath.Join(string(f.base), string(path))
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return err
	}
	return os.WriteFile(full, data, 0644)
}

func NewWritableFS(basepath Path) WriteableFileSystem {
	return &writableFS{
		base: basepath,
	}
}
