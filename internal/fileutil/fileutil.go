// Package fileutil provides whole-file dataset I/O: reads with
// transparent xz decompression, and JSON encoding that keeps Arabic
// script literal in the output.
package fileutil

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/mushaftools/quranfix/core/errors"
)

// ReadFile reads the entire file at path. Paths ending in .xz are
// decompressed transparently; the returned bytes are always the
// uncompressed document.
func ReadFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".xz") {
		xzr, err := xz.NewReader(f)
		if err != nil {
			return nil, errors.NewIO("decompress", path, err)
		}
		r = xzr
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.NewIO("read", path, err)
	}
	return data, nil
}

// WriteFile writes data to path, overwriting any existing file in
// place. Paths ending in .xz are recompressed on the way out. No
// backup of the previous content is kept.
func WriteFile(path string, data []byte) error {
	if strings.HasSuffix(path, ".xz") {
		var buf bytes.Buffer
		xw, err := xz.NewWriter(&buf)
		if err != nil {
			return errors.NewIO("compress", path, err)
		}
		if _, err := xw.Write(data); err != nil {
			return errors.NewIO("compress", path, err)
		}
		if err := xw.Close(); err != nil {
			return errors.NewIO("compress", path, err)
		}
		data = buf.Bytes()
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.NewIO("write", path, err)
	}
	return nil
}

// DecodeJSON unmarshals data into v. The path is carried into the
// error for context only.
func DecodeJSON(data []byte, path string, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return errors.NewParse("JSON", path, err.Error())
	}
	return nil
}

// EncodeJSON marshals v with two-space indentation and HTML escaping
// disabled, so non-ASCII text (Arabic script) is written literally.
// The output ends with a trailing newline.
func EncodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, errors.Wrap(err, "encode JSON")
	}
	return buf.Bytes(), nil
}
