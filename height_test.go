package htlc_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/iov-one/htlc"
	"github.com/iov-one/htlc/errors"
	"github.com/iov-one/htlc/htlctest/assert"
)

func TestHeightValidate(t *testing.T) {
	cases := map[string]struct {
		height  htlc.Height
		wantErr *errors.Error
	}{
		"zero is a valid height": {
			height: 0,
		},
		"positive height": {
			height: 21,
		},
		"negative height is invalid": {
			height:  -1,
			wantErr: errors.ErrState,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.height.Validate()
			if tc.wantErr == nil {
				assert.Nil(t, err)
			} else {
				assert.IsErr(t, tc.wantErr, err)
			}
		})
	}
}

func TestHeightReachedBoundaryIsInclusive(t *testing.T) {
	timeout := htlc.Height(21)

	assert.Equal(t, false, timeout.Reached(20))
	assert.Equal(t, true, timeout.Reached(21))
	assert.Equal(t, true, timeout.Reached(22))
	assert.Equal(t, true, timeout.Reached(htlc.Height(math.MaxInt64)))
}

func TestHeightAddSaturates(t *testing.T) {
	top := htlc.Height(math.MaxInt64)

	assert.Equal(t, top, top.Add(1))
	assert.Equal(t, htlc.Height(0), htlc.Height(math.MinInt64).Add(-1))
	assert.Equal(t, htlc.Height(23), htlc.Height(21).Add(2))
}

func TestHeightJSON(t *testing.T) {
	raw, err := json.Marshal(htlc.Height(21))
	assert.Nil(t, err)
	assert.Equal(t, "21", string(raw))

	var h htlc.Height
	assert.Nil(t, json.Unmarshal([]byte("42"), &h))
	assert.Equal(t, htlc.Height(42), h)

	assert.IsErr(t, errors.ErrInput, json.Unmarshal([]byte("-3"), &h))
	assert.IsErr(t, errors.ErrInput, json.Unmarshal([]byte(`"tall"`), &h))
}
