package otp

import (
	"regexp"
	"strconv"
	"testing"
)

func TestNumericGenerate(t *testing.T) {
	gen := NewNumeric()
	re := regexp.MustCompile(`^[0-9]{6}$`)

	for range 200 {
		code, err := gen.Generate()
		if err != nil {
			t.Fatalf("Generate() error: %v", err)
		}
		if !re.MatchString(code) {
			t.Fatalf("code %q is not six digits", code)
		}

		n, err := strconv.Atoi(code)
		if err != nil {
			t.Fatalf("code %q is not numeric: %v", code, err)
		}
		if n < 100000 || n > 999999 {
			t.Fatalf("code %d outside [100000, 999999]", n)
		}
	}
}
