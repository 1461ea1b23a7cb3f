package utils

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestCheckPow2(t *testing.T) {
	testCases := map[string]struct {
		Value uint64
		Valid bool
	}{
		"Zero":          {Value: 0},
		"One":           {Value: 1, Valid: true},
		"Atom":          {Value: 64, Valid: true},
		"Large":         {Value: 1 << 40, Valid: true},
		"Three":         {Value: 3},
		"Forty eight":   {Value: 48},
		"All bits high": {Value: ^uint64(0)},
	}

	for name, testCase := range testCases {
		t.Run(name, func(t *testing.T) {
			err := CheckPow2(testCase.Value, "value")
			if testCase.Valid {
				require.NoError(t, err)
				return
			}
			require.True(t, errors.Is(err, ErrNotPowerOfTwo))
		})
	}
}

func TestAlign(t *testing.T) {
	testCases := map[string]struct {
		Value     uint64
		Alignment uint64
		Up        uint64
		Down      uint64
	}{
		"Aligned":     {Value: 128, Alignment: 64, Up: 128, Down: 128},
		"Unaligned":   {Value: 70, Alignment: 64, Up: 128, Down: 64},
		"Zero":        {Value: 0, Alignment: 256, Up: 0, Down: 0},
		"Below align": {Value: 1, Alignment: 256, Up: 256, Down: 0},
		"Unit":        {Value: 77, Alignment: 1, Up: 77, Down: 77},
	}

	for name, testCase := range testCases {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, testCase.Up, AlignUp(testCase.Value, testCase.Alignment))
			require.Equal(t, testCase.Down, AlignDown(testCase.Value, testCase.Alignment))
		})
	}
}
