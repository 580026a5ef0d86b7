package storage

import "context"

type InMemStore struct {
	values map[string]string
}

func NewInMemStore() *InMemStore {
	s := make(map[string]string)
	return &InMemStore{s}
}

func (s *InMemStore) Get(_ context.Context, key string) (string, error) {
	value, ok := s.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (s *InMemStore) Set(_ context.Context, key, value string) error {
	s.values[key] = value
	return nil
}
