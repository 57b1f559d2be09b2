package session

import "context"

// disabledRepository stands in for a backend that failed to open.
type disabledRepository struct{}

func (disabledRepository) Get(context.Context, string) ([]byte, error) { return nil, nil }

func (disabledRepository) Set(context.Context, string, []byte) error {
	return ErrStorageUnavailable
}

func (disabledRepository) SetMany(context.Context, map[string][]byte) error {
	return ErrStorageUnavailable
}

func (disabledRepository) Delete(context.Context, ...string) error {
	return ErrStorageUnavailable
}

func (disabledRepository) List(context.Context) (map[string][]byte, error) {
	return map[string][]byte{}, nil
}

func (disabledRepository) Clear(context.Context) error {
	return ErrStorageUnavailable
}
