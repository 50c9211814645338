package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"vacancy-finder-go/internal/models"
)

// JSONFileStore persists vacancies as a single JSON array in one file, the
// sole source of truth. Every operation reads the whole file and mutations
// rewrite it in full, so between operations the file always holds a complete
// snapshot. The rewrite goes through a temp file and rename; writers in
// separate processes still race, there is no cross-process lock.
type JSONFileStore struct {
	path string
}

// NewJSONFileStore opens the store at path, creating the file with an empty
// array if it does not exist. A pre-existing file is never overwritten.
func NewJSONFileStore(path string) (*JSONFileStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, &StorageError{Op: "init", Path: path, Err: err}
		}
	}
	s := &JSONFileStore{path: path}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := s.write([]models.Vacancy{}); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, &StorageError{Op: "init", Path: path, Err: err}
	}
	return s, nil
}

func (s *JSONFileStore) Add(vacancy models.Vacancy) error {
	vacancies, err := s.load()
	if err != nil {
		return err
	}
	return s.write(append(vacancies, vacancy))
}

func (s *JSONFileStore) Get(criteria Criteria) ([]models.Vacancy, error) {
	vacancies, err := s.load()
	if err != nil {
		return nil, err
	}
	var matched []models.Vacancy
	for _, v := range vacancies {
		if criteria.Matches(v) {
			matched = append(matched, v)
		}
	}
	return matched, nil
}

func (s *JSONFileStore) Delete(id string) error {
	vacancies, err := s.load()
	if err != nil {
		return err
	}
	kept := make([]models.Vacancy, 0, len(vacancies))
	for _, v := range vacancies {
		if v.ID != id {
			kept = append(kept, v)
		}
	}
	return s.write(kept)
}

func (s *JSONFileStore) load() ([]models.Vacancy, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, &StorageError{Op: "read", Path: s.path, Err: err}
	}
	var vacancies []models.Vacancy
	if err := json.Unmarshal(data, &vacancies); err != nil {
		return nil, &StorageError{Op: "decode", Path: s.path, Err: err}
	}
	return vacancies, nil
}

func (s *JSONFileStore) write(vacancies []models.Vacancy) error {
	data, err := json.Marshal(vacancies)
	if err != nil {
		return &StorageError{Op: "encode", Path: s.path, Err: err}
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return &StorageError{Op: "write", Path: s.path, Err: err}
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return &StorageError{Op: "write", Path: s.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return &StorageError{Op: "write", Path: s.path, Err: err}
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return &StorageError{Op: "write", Path: s.path, Err: err}
	}
	return nil
}
