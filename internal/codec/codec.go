// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package codec turns arbitrary JSON-serializable values into compact
// gzip-compressed blobs and back. Blobs are what the local record store
// keeps and what travels to the remote authority; they are opaque to both.
package codec

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
)

// ErrCorruptedPayload is returned when a blob is not something [Compress]
// produced: bad gzip framing, a failed checksum, or non-JSON content.
var ErrCorruptedPayload = errors.New("corrupted payload")

// ErrUnsupportedValue is returned when a value cannot be encoded as JSON.
var ErrUnsupportedValue = errors.New("value is not JSON-serializable")

var gzipWriterPool = sync.Pool{
	New: func() any {
		return gzip.NewWriter(nil)
	},
}

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// Compress JSON-encodes value and gzip-compresses the result.
func Compress(value any) ([]byte, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedValue, err)
	}

	return CompressRaw(raw)
}

// CompressRaw compresses an already encoded JSON document.
func CompressRaw(raw json.RawMessage) ([]byte, error) {
	if !json.Valid(raw) {
		return nil, ErrUnsupportedValue
	}

	var buf bytes.Buffer
	gzipWriter := gzipWriterPool.Get().(*gzip.Writer)
	defer gzipWriterPool.Put(gzipWriter)
	gzipWriter.Reset(&buf)

	if _, err := gzipWriter.Write(raw); err != nil {
		return nil, fmt.Errorf("error compressing payload: %w", err)
	}
	if err := gzipWriter.Close(); err != nil {
		return nil, fmt.Errorf("error flushing compressed payload: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress reverses [Compress] and returns the JSON document.
func Decompress(blob []byte) (json.RawMessage, error) {
	if len(blob) == 0 {
		return nil, fmt.Errorf("%w: empty blob", ErrCorruptedPayload)
	}

	gzipReader := gzipReaderPool.Get().(*gzip.Reader)
	defer gzipReaderPool.Put(gzipReader)

	if err := gzipReader.Reset(bytes.NewReader(blob)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptedPayload, err)
	}
	defer gzipReader.Close()

	raw, err := io.ReadAll(gzipReader)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptedPayload, err)
	}

	if !json.Valid(raw) {
		return nil, fmt.Errorf("%w: not a JSON document", ErrCorruptedPayload)
	}

	return raw, nil
}

// DecompressInto decodes blob into out, which must be a pointer.
func DecompressInto(blob []byte, out any) error {
	raw, err := Decompress(blob)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("error decoding payload: %w", err)
	}

	return nil
}
