package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"valuation/internal/types"
)

func TestNormalizeFileNo(t *testing.T) {
	cases := map[string]string{
		"06GGB1025 10":      "06GGB1025 10",
		"  06ggb1025   10 ": "06GGB1025 10",
		"06ggb1025\t10":     "06GGB1025 10",
		"\n06GGB1025  10":   "06GGB1025 10",
		"":                  "",
	}
	for in, want := range cases {
		assert.Equal(t, want, types.NormalizeFileNo(in), "%q", in)
	}
}
