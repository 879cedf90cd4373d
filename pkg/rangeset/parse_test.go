package rangeset

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tj/assert"
)

func TestParseInt(t *testing.T) {
	cases := map[string]struct {
		in          string
		want        Range[int64]
		expectedErr bool
		invalid     bool
	}{
		"Range":          {in: "100-199", want: Range[int64]{100, 199}},
		"Spaces":         {in: " 1 - 3 ", want: Range[int64]{1, 3}},
		"Single":         {in: "5", want: Range[int64]{5, 5}},
		"NegativeSingle": {in: "-5", want: Range[int64]{-5, -5}},
		"Negative":       {in: "-5--1", want: Range[int64]{-5, -1}},
		"Empty":          {in: "", expectedErr: true},
		"BadFrom":        {in: "a-3", expectedErr: true},
		"BadTo":          {in: "1-b", expectedErr: true},
		"Reversed":       {in: "9-1", expectedErr: true, invalid: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := ParseInt(tc.in)
			if tc.expectedErr {
				assert.Error(t, err)
				assert.Equal(t, tc.invalid, errors.Is(err, ErrInvalidRange))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, r)
		})
	}
}

func TestParseUintFloat(t *testing.T) {
	u, err := ParseUint("65000-65100")
	assert.NoError(t, err)
	assert.Equal(t, Range[uint64]{65000, 65100}, u)

	_, err = ParseUint("-1-5")
	assert.Error(t, err)

	f, err := ParseFloat("0.5-2.25")
	assert.NoError(t, err)
	assert.Equal(t, Range[float64]{0.5, 2.25}, f)

	_, err = ParseFloat("NaN")
	assert.True(t, errors.Is(err, ErrInvalidRange))
}

func TestParseList(t *testing.T) {
	cases := map[string]struct {
		in          string
		want        []Range[int64]
		expectedErr bool
	}{
		"Normal": {
			in:   "1-3, 5, 8-9",
			want: []Range[int64]{{1, 3}, {5, 5}, {8, 9}},
		},
		"SkipsEmpty": {
			in:   "1-3,,",
			want: []Range[int64]{{1, 3}},
		},
		"Empty": {
			in: "",
		},
		"Error": {
			in:          "1-3,x",
			expectedErr: true,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			rr, err := ParseList(tc.in, ParseInt)
			if tc.expectedErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if diff := cmp.Diff(tc.want, rr); diff != "" {
				t.Errorf("%s: -want, +got:\n%s", name, diff)
			}
		})
	}
}
