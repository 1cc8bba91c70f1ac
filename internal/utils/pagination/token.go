package pagination

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrStaleToken is returned when a page token was issued for an older snapshot.
var ErrStaleToken = errors.New("page token refers to an older snapshot")

// Cursor points into one version of a store snapshot.
type Cursor struct {
	Version uint64
	Offset  int
}

// EncodeMultiFieldToken creates a token with any number of string fields.
func EncodeMultiFieldToken(fields ...string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(strings.Join(fields, "|")))
}

// DecodeMultiFieldToken decodes a token into its component fields.
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid page token format (base64 decode): %w", err)
	}
	return strings.Split(string(decodedBytes), "|"), nil
}

// EncodeCursor creates the token handed to clients for the next page.
func EncodeCursor(c Cursor) string {
	return EncodeMultiFieldToken(strconv.FormatUint(c.Version, 10), strconv.Itoa(c.Offset))
}

// DecodeCursor parses a token produced by EncodeCursor.
func DecodeCursor(token string) (Cursor, error) {
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return Cursor{}, err
	}
	if len(parts) != 2 {
		return Cursor{}, errors.New("invalid page token format (split)")
	}
	version, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid page token format (version parse): %w", err)
	}
	offset, err := strconv.Atoi(parts[1])
	if err != nil || offset < 0 {
		return Cursor{}, errors.New("invalid page token format (offset parse)")
	}
	return Cursor{Version: version, Offset: offset}, nil
}

// Page cuts items at the cursor. token may be empty for the first page. The
// returned token is empty on the last page.
func Page[T any](items []T, version uint64, token string, limit int) ([]T, string, error) {
	start := 0
	if token != "" {
		c, err := DecodeCursor(token)
		if err != nil {
			return nil, "", err
		}
		if c.Version != version {
			return nil, "", ErrStaleToken
		}
		start = min(c.Offset, len(items))
	}
	end := len(items)
	if limit > 0 {
		end = min(start+limit, len(items))
	}

	next := ""
	if end < len(items) {
		next = EncodeCursor(Cursor{Version: version, Offset: end})
	}
	return items[start:end], next, nil
}
