// Package images loads and caches images referenced from documents.
// Loading is best-effort and off the critical path: a missing or broken
// image must never block or fail a render.
package images

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"
)

// Loader resolves image sources: data URIs, local file paths, and — when
// network loading is enabled — http(s) URLs. Decoded images are cached by
// source string.
type Loader struct {
	mu     sync.RWMutex
	cache  map[string]image.Image
	client *http.Client
}

func NewLoader() *Loader {
	return &Loader{cache: make(map[string]image.Image)}
}

// EnableNetwork allows http(s) sources, fetched with the given timeout.
func (l *Loader) EnableNetwork(timeout time.Duration) {
	l.client = &http.Client{Timeout: timeout}
}

func (l *Loader) Load(src string) (image.Image, error) {
	l.mu.RLock()
	img, ok := l.cache[src]
	l.mu.RUnlock()
	if ok {
		return img, nil
	}

	img, err := l.load(src)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.cache[src] = img
	l.mu.Unlock()
	return img, nil
}

func (l *Loader) load(src string) (image.Image, error) {
	switch {
	case strings.HasPrefix(src, "data:"):
		return decodeDataURI(src)
	case strings.HasPrefix(src, "http://"), strings.HasPrefix(src, "https://"):
		return l.fetch(src)
	default:
		return loadFile(src)
	}
}

func loadFile(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

func (l *Loader) fetch(url string) (image.Image, error) {
	if l.client == nil {
		return nil, fmt.Errorf("network image loading disabled: %s", url)
	}
	resp, err := l.client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: status %d", url, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", url, err)
	}
	return img, nil
}

// decodeDataURI decodes data:image/<type>;base64,<payload> URIs.
func decodeDataURI(uri string) (image.Image, error) {
	comma := strings.IndexByte(uri, ',')
	if comma < 0 {
		return nil, fmt.Errorf("malformed data URI")
	}
	meta, payload := uri[5:comma], uri[comma+1:]

	var raw []byte
	if strings.HasSuffix(meta, ";base64") {
		decoded, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("decoding data URI: %w", err)
		}
		raw = decoded
	} else {
		raw = []byte(payload)
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decoding data URI image: %w", err)
	}
	return img, nil
}
