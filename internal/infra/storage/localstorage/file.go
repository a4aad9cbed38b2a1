package localstorage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// FileRepository хранит все ключи одним JSON-объектом в файле.
// Запись атомарная: временный файл + rename.
type FileRepository struct {
	path string
	mu   sync.Mutex
}

// NewFileRepository создает репозиторий поверх файла path.
// Директория создается при первой записи.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

func (r *FileRepository) Get(_ context.Context, key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.readAll()
	if err != nil {
		return "", err
	}

	value, ok := items[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

func (r *FileRepository) Set(_ context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, _, err := r.readRecoverable()
	if err != nil {
		return err
	}
	items[key] = value

	return r.writeAll(items)
}

func (r *FileRepository) Remove(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, reset, err := r.readRecoverable()
	if err != nil {
		return err
	}
	if _, ok := items[key]; !ok && !reset {
		return nil
	}
	delete(items, key)

	return r.writeAll(items)
}

// readAll отсутствующий файл - пустое хранилище
func (r *FileRepository) readAll() (map[string]string, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrRead, r.path, err)
	}

	items := make(map[string]string)
	if len(data) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: %w: decode %s: %v", ErrRead, ErrCorrupt, r.path, err)
	}
	return items, nil
}

// readRecoverable для записи: битый файл перезаписывается с нуля,
// иначе ни логин, ни очистка сессии не смогли бы его исправить
// (reset=true - файл был битым)
func (r *FileRepository) readRecoverable() (map[string]string, bool, error) {
	items, err := r.readAll()
	if errors.Is(err, ErrCorrupt) {
		return make(map[string]string), true, nil
	}
	return items, false, err
}

func (r *FileRepository) writeAll(items map[string]string) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrWrite, err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("%w: create dir %s: %v", ErrWrite, dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".localstorage-*")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %v", ErrWrite, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write temp file: %v", ErrWrite, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: sync temp file: %v", ErrWrite, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: close temp file: %v", ErrWrite, err)
	}

	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: rename to %s: %v", ErrWrite, r.path, err)
	}
	return nil
}
