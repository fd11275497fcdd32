//go:build ocr

// Package ocr wraps the Tesseract engine via gosseract for recognizing text
// in images extracted from PDFs. It requires Tesseract to be installed and
// the "ocr" build tag; without the tag a stub that reports
// ErrOCRNotEnabled is compiled instead.
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Client wraps a Tesseract session. Close it when done.
type Client struct {
	client *gosseract.Client
}

func New() (*Client, error) {
	return &Client{client: gosseract.NewClient()}, nil
}

func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// Recognize runs OCR on encoded image data (PNG, JPEG, TIFF) and returns the
// recognized text, trimmed. An empty string means nothing was recognized.
func (c *Client) Recognize(imageData []byte) (string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}
	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("ocr: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// SetLanguage selects the recognition language(s), "+" separated, e.g.
// "eng+fra". Default is "eng".
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}
