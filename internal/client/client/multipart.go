package client

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
)

// Multipart is a multipart/form-data request body. Fields are written in
// insertion order, followed by the file parts.
type Multipart struct {
	fields []formField
	files  []formFile
}

type formField struct {
	name, value string
}

type formFile struct {
	field, filename string
	data            []byte
}

// AddField appends a text field.
func (m *Multipart) AddField(name, value string) {
	m.fields = append(m.fields, formField{name: name, value: value})
}

// AddFile appends a file part under field.
func (m *Multipart) AddFile(field, filename string, data []byte) {
	m.files = append(m.files, formFile{field: field, filename: filename, data: data})
}

func (m *Multipart) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range m.fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", f.name, err)
		}
	}
	for _, f := range m.files {
		part, err := w.CreateFormFile(f.field, f.filename)
		if err != nil {
			return nil, "", fmt.Errorf("create file part %s: %w", f.filename, err)
		}
		if _, err := part.Write(f.data); err != nil {
			return nil, "", fmt.Errorf("write file part %s: %w", f.filename, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
