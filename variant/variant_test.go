package variant

import (
	"testing"

	"github.com/kbukum/creational/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    ID
		wantErr bool
	}{
		{"1", One, false},
		{" 2 ", Two, false},
		{"variant-1", One, false},
		{"V2", Two, false},
		{"3", "", true},
		{"", "", true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if tc.wantErr {
				if !errors.HasCode(err, errors.ErrCodeUnknownVariant) {
					t.Fatalf("expected UNKNOWN_VARIANT, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestName(t *testing.T) {
	if One.Name() != "variant-1" || Two.Name() != "variant-2" {
		t.Errorf("unexpected names %q %q", One.Name(), Two.Name())
	}
}
