package nicenumber_test

import (
	"testing"

	"github.com/UBC-MDS/nicenumber"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHuman(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		n    any
		opts []nicenumber.Option
		want string
	}{
		"zero": {n: 0, want: "0"},
		"fraction": {
			n:    0.12,
			opts: []nicenumber.Option{nicenumber.WithPrec(2)},
			want: "0.12",
		},
		"thousands": {
			n:    4500,
			opts: []nicenumber.Option{nicenumber.WithPrec(1)},
			want: "4.5K",
		},
		"thousands two decimals": {
			n:    4510,
			opts: []nicenumber.Option{nicenumber.WithPrec(2)},
			want: "4.51K",
		},
		"float input rounds": {
			n:    4510.1234,
			opts: []nicenumber.Option{nicenumber.WithPrec(2)},
			want: "4.51K",
		},
		"millions": {
			n:    4510000,
			opts: []nicenumber.Option{nicenumber.WithPrec(2)},
			want: "4.51M",
		},
		"billions": {
			n:    69420090000,
			opts: []nicenumber.Option{nicenumber.WithPrec(3)},
			want: "69.420B",
		},
		"filesize": {
			n:    4510000,
			opts: []nicenumber.Option{nicenumber.WithPrec(2), nicenumber.WithFamily(nicenumber.FileSize)},
			want: "4.51MB",
		},
		"custom suffixes": {
			n:    4500,
			opts: []nicenumber.Option{nicenumber.WithPrec(1), nicenumber.WithSuffixes([]string{"apple", "banana"})},
			want: "4.5apple",
		},
		"currency": {
			n:    4510,
			opts: []nicenumber.Option{nicenumber.WithPrec(2), nicenumber.WithCurrency()},
			want: "$4.51K",
		},
		"currency custom symbol": {
			n:    4510,
			opts: []nicenumber.Option{nicenumber.WithPrec(2), nicenumber.WithCurrency(), nicenumber.WithCurrencySymbol("€")},
			want: "€4.51K",
		},
		"currency forced off for filesize": {
			n: 4510,
			opts: []nicenumber.Option{
				nicenumber.WithPrec(2),
				nicenumber.WithCurrency(),
				nicenumber.WithFamily(nicenumber.FileSize),
			},
			want: "4.51KB",
		},
		"negative": {
			n:    -4500,
			opts: []nicenumber.Option{nicenumber.WithPrec(1)},
			want: "-4.5K",
		},
		"uint64 input": {
			n:    uint64(4500),
			opts: []nicenumber.Option{nicenumber.WithPrec(1)},
			want: "4.5K",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := nicenumber.ToHuman(tt.n, tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToHumanErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		n       any
		opts    []nicenumber.Option
		wantErr error
	}{
		"string input": {
			n:       "69420",
			wantErr: nicenumber.ErrNotNumeric,
		},
		"nil input": {
			n:       nil,
			wantErr: nicenumber.ErrNotNumeric,
		},
		"unknown family": {
			n:       69420,
			opts:    []nicenumber.Option{nicenumber.WithFamily(nicenumber.Family("wrong family"))},
			wantErr: nicenumber.ErrInvalidFamily,
		},
		"unknown family with custom suffixes": {
			n: 69420,
			opts: []nicenumber.Option{
				nicenumber.WithFamily(nicenumber.Family("wrong family")),
				nicenumber.WithSuffixes([]string{"apple", "banana"}),
			},
			wantErr: nicenumber.ErrInvalidFamily,
		},
		"too large": {
			n:       1e30,
			wantErr: nicenumber.ErrTooLarge,
		},
		"too large for custom suffixes": {
			n:       1e12,
			opts:    []nicenumber.Option{nicenumber.WithSuffixes([]string{"apple", "banana"})},
			wantErr: nicenumber.ErrTooLarge,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := nicenumber.ToHuman(tt.n, tt.opts...)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// Failure messages must name the offending value and the valid options.
func TestToHumanErrorMessages(t *testing.T) {
	t.Parallel()

	_, err := nicenumber.ToHuman(1, nicenumber.WithFamily(nicenumber.Family("wrong")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"wrong"`)
	assert.Contains(t, err.Error(), "number")
	assert.Contains(t, err.Error(), "filesize")

	_, err = nicenumber.ToHuman(1e30)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1e+30")
	assert.Contains(t, err.Error(), `"Q"`)
}

func TestToHumanCoerce(t *testing.T) {
	t.Parallel()

	got := nicenumber.OrNA(nicenumber.ToHuman("not a number"))
	assert.True(t, nicenumber.IsNA(got))

	got = nicenumber.OrNA(nicenumber.ToHuman(1e30))
	assert.True(t, nicenumber.IsNA(got))

	got = nicenumber.OrNA(nicenumber.ToHuman(4500, nicenumber.WithPrec(1)))
	assert.Equal(t, "4.5K", got)
}
