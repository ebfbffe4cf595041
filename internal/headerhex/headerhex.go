// Package headerhex parses the 32-byte hex header accepted by the CLI
// front-ends, mirroring the reference implementation's cli.py
// parse_header helper.
package headerhex

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// ErrWrongLength indicates the decoded header was not exactly 32 bytes.
var ErrWrongLength = errors.New("headerhex: header must decode to exactly 32 bytes")

// Parse decodes a hex string (optionally "0x"-prefixed) into a 32-byte
// header array.
func Parse(s string) ([32]byte, error) {
	var out [32]byte
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.TrimPrefix(s, "0x")

	raw, err := hex.DecodeString(s)
	if err != nil {
		return out, fmt.Errorf("headerhex: %w", err)
	}
	if len(raw) != 32 {
		return out, fmt.Errorf("headerhex: got %d bytes: %w", len(raw), ErrWrongLength)
	}
	copy(out[:], raw)
	return out, nil
}
