package storage

import (
	"encoding/base64"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
)

// ImageIngestor decodes data-URL image payloads into a ContentStore.
type ImageIngestor struct {
	store ContentStore
}

func NewImageIngestor(store ContentStore) *ImageIngestor {
	return &ImageIngestor{store: store}
}

// Ingest decodes a data-URL ("data:<mime>;base64,<payload>") and stores the
// bytes under a freshly generated uuid filename, returning the public URL.
// Names are never reused, so concurrent uploads cannot clobber each other.
func (ing *ImageIngestor) Ingest(dataURL string) (string, error) {
	ext, err := extensionFromDataURL(dataURL)
	if err != nil {
		return "", err
	}

	comma := strings.Index(dataURL, ",")
	if comma < 0 {
		return "", fmt.Errorf("storage: data-url has no payload separator")
	}
	payload := dataURL[comma+1:]
	// Transport layers that treat the body as form data decode '+' into a
	// space; undo that before base64 decoding.
	payload = strings.ReplaceAll(payload, " ", "+")

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("storage: decoding image payload: %w", err)
	}

	name := uuid.New().String() + "." + ext
	if err := ing.store.Put(name, data); err != nil {
		return "", err
	}

	return ing.store.URL(name), nil
}

// Replace ingests a new image after deleting the previously stored one.
// The delete is best-effort: a missing or stubborn old file never blocks
// the new write.
func (ing *ImageIngestor) Replace(oldURL, dataURL string) (string, error) {
	if oldURL != "" {
		_ = ing.store.Delete(path.Base(oldURL))
	}
	return ing.Ingest(dataURL)
}

// Remove deletes the stored object behind a previously issued URL.
func (ing *ImageIngestor) Remove(url string) error {
	if url == "" {
		return nil
	}
	return ing.store.Delete(path.Base(url))
}

// extensionFromDataURL pulls the file extension out of the mime segment:
// the text between the first ':' and the first ';', split on '/', second
// part; a '+'-suffixed subtype keeps only the leading part, so
// "image/svg+xml" stores as ".svg".
func extensionFromDataURL(dataURL string) (string, error) {
	colon := strings.Index(dataURL, ":")
	semi := strings.Index(dataURL, ";")
	if colon < 0 || semi < 0 || semi <= colon+1 {
		return "", fmt.Errorf("storage: malformed data-url header")
	}

	mime := dataURL[colon+1 : semi]
	parts := strings.Split(mime, "/")
	if len(parts) != 2 || parts[1] == "" {
		return "", fmt.Errorf("storage: malformed mime type %q", mime)
	}

	ext := parts[1]
	if plus := strings.Index(ext, "+"); plus >= 0 {
		ext = ext[:plus]
	}
	return ext, nil
}
