package htlc

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/iov-one/htlc/errors"
)

// Height represents a block height of the ledger the contract settles on.
// This type uses a primitive int64 instead of an unsigned type so that a
// negative value is representable and can be rejected during validation
// instead of silently wrapping around.
type Height int64

// IsZero returns true if this height represents a zero value.
func (h Height) IsZero() bool {
	return h == 0
}

// Add modifies this height by given amount of blocks. The result saturates
// instead of wrapping around on overflow.
func (h Height) Add(blocks int64) Height {
	sum := int64(h) + blocks
	switch {
	case blocks > 0 && sum < int64(h):
		return Height(math.MaxInt64)
	case blocks < 0 && sum > int64(h):
		return 0
	}
	return Height(sum)
}

// Reached returns true if the current height is at or past this height.
// The boundary is inclusive, a block at exactly this height reaches it.
func (h Height) Reached(current Height) bool {
	return current >= h
}

// Validate returns an error if this height value is invalid.
func (h Height) Validate() error {
	if h < 0 {
		return errors.Wrap(errors.ErrState, "negative value")
	}
	return nil
}

// String returns the decimal representation of this height.
func (h Height) String() string {
	return strconv.FormatInt(int64(h), 10)
}

// UnmarshalJSON supports unmarshaling from a JSON number. It is convenient
// to configure heights directly in fixture and genesis files.
func (h *Height) UnmarshalJSON(raw []byte) error {
	var n int64
	if err := json.Unmarshal(raw, &n); err != nil {
		return errors.Wrap(errors.ErrInput, "invalid height format")
	}
	if n < 0 {
		return errors.Wrap(errors.ErrInput, "height before genesis")
	}
	*h = Height(n)
	return nil
}

// MarshalJSON encodes this height as a JSON number.
func (h Height) MarshalJSON() ([]byte, error) {
	return json.Marshal(int64(h))
}
