package fixer

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// validateUTF8 rejects content that is not valid UTF-8, the only encoding
// files are read and written in
func validateUTF8(data []byte) error {
	_, _, err := transform.Bytes(encoding.UTF8Validator, data)
	return err
}
