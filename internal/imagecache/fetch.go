package imagecache

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"net/http"
	"time"

	// Registered so sniffImage recognizes the common web image formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// maxPayloadBytes caps a single fetched image. Anything larger is rejected
// rather than buffered into memory.
const maxPayloadBytes = 16 << 20

var httpClient = &http.Client{Timeout: 30 * time.Second}

// httpFetch is the default FetchFunc: a plain GET of the locator.
func httpFetch(ctx context.Context, locator string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, locator, nil)
	if err != nil {
		return nil, err
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes+1))
	if err != nil {
		return nil, err
	}
	if len(b) > maxPayloadBytes {
		return nil, fmt.Errorf("payload exceeds %d bytes", maxPayloadBytes)
	}

	return b, nil
}

// sniffImage verifies the payload decodes as a known image format without
// decoding the full pixel data.
func sniffImage(b []byte) error {
	_, _, err := image.DecodeConfig(bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("decode image header: %w", err)
	}
	return nil
}
