package client

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// envelope is the status part common to most API responses.
type envelope struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
}

// decodeCollection accepts a bare JSON array or an object carrying the
// array under field. An object without the field yields an empty slice.
func decodeCollection[T any](raw json.RawMessage, field string) ([]T, error) {
	raw = bytes.TrimSpace(raw)
	out := make([]T, 0)

	if len(raw) > 0 && raw[0] == '[' {
		if err := json.Unmarshal(raw, &out); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
		}
		return out, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	inner, ok := obj[field]
	if !ok || bytes.Equal(bytes.TrimSpace(inner), []byte("null")) {
		return out, nil
	}
	if err := json.Unmarshal(inner, &out); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidResponse, field, err)
	}
	return out, nil
}

// decodeObject accepts an object wrapped under field or the object itself.
func decodeObject[T any](raw json.RawMessage, field string) (*T, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}

	src := raw
	if inner, ok := obj[field]; ok && !bytes.Equal(bytes.TrimSpace(inner), []byte("null")) {
		src = inner
	}

	out := new(T)
	if err := json.Unmarshal(src, out); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	return out, nil
}

// checkEnvelope fails when the body explicitly reports success=false on a
// 2xx response.
func checkEnvelope(raw json.RawMessage, fallback string) error {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		// Bare arrays carry no envelope.
		return nil
	}
	if env.Success != nil && !*env.Success {
		msg := env.Message
		if msg == "" {
			msg = fallback
		}
		return &APIError{Status: 200, Message: msg, Body: raw}
	}
	return nil
}
