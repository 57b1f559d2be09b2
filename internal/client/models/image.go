package models

import (
	"bytes"
	"encoding/json"
)

// ImageRef points at a stored listing image. The API returns either a bare
// URL or an object with the URL and the storage public ID; both decode here.
type ImageRef struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id,omitempty"`
}

func (i *ImageRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*i = ImageRef{URL: s}
		return nil
	}
	type alias ImageRef
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*i = ImageRef(a)
	return nil
}

// DeleteKey is the identifier sent in imagesToDelete. Images uploaded
// through the API have a public ID; legacy URL-only images use the URL.
func (i ImageRef) DeleteKey() string {
	if i.PublicID != "" {
		return i.PublicID
	}
	return i.URL
}
