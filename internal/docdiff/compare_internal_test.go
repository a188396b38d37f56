package docdiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"  Hello   World  ", "hello world"},
		{"Tabs\tand\nnewlines", "tabs and newlines"},
		{"MiXeD CaSe", "mixed case"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, normalize(tc.in))
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"", "  a  b  ", "ALREADY normal", "x\n\ny\t z", "hello world"}
	for _, s := range inputs {
		once := normalize(s)
		assert.Equal(t, once, normalize(once))
	}
}

func TestNaturalLess(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"1.2", "1.10", true},
		{"1.10", "1.2", false},
		{"2", "10", true},
		{"10", "2", false},
		{"1.1", "1.1", false},
		{"1", "1.1", true},
		{"A.1", "A.2", true},
		{"A.2", "B.1", true},
		{"Preamble", "1", false}, // digit ids order before word ids
		{"01", "1", false},
		{"1", "01", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, naturalLess(tc.a, tc.b), "%q < %q", tc.a, tc.b)
	}
}
