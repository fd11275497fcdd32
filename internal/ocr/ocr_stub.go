//go:build !ocr

// Package ocr wraps the Tesseract engine via gosseract for recognizing text
// in images extracted from PDFs.
//
// This is the stub used when the "ocr" build tag is not set; all operations
// return ErrOCRNotEnabled. Rebuild with -tags ocr (Tesseract installed) to
// enable recognition.
package ocr

import "errors"

// ErrOCRNotEnabled is returned when OCR support was not compiled in.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Client is a stub OCR client that returns errors for all operations.
type Client struct{}

func New() (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op; safe on a nil client.
func (c *Client) Close() error {
	return nil
}

// Recognize returns ErrOCRNotEnabled.
func (c *Client) Recognize(imageData []byte) (string, error) {
	return "", ErrOCRNotEnabled
}

// SetLanguage returns ErrOCRNotEnabled.
func (c *Client) SetLanguage(lang string) error {
	return ErrOCRNotEnabled
}
