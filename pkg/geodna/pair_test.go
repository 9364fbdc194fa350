package geodna

import (
	"errors"
	"testing"
)

func TestPair(t *testing.T) {
	tests := []struct {
		name string
		code string
		swap bool
		want string
	}{
		{"Keep hemisphere", "egatc", false, "ectag"},
		{"Swap hemisphere", "egatc", true, "wctag"},
		{"West", "wcc", true, "egg"},
		{"Hemisphere only", "w", false, "w"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Pair(tt.code, tt.swap)
			if err != nil {
				t.Fatalf("Pair() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Pair() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPairIsInvolution(t *testing.T) {
	for _, swap := range []bool{false, true} {
		once, err := Pair(wellington, swap)
		if err != nil {
			t.Fatal(err)
		}
		if err := Validate(once); err != nil {
			t.Errorf("Pair() produced an invalid code: %v", err)
		}
		twice, _ := Pair(once, swap)
		if twice != wellington {
			t.Errorf("Pair(Pair(code)) = %v, want %v", twice, wellington)
		}
	}
}

func TestPairInvalid(t *testing.T) {
	if _, err := Pair("gatc", false); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Pair() error = %v, want ErrInvalidInput", err)
	}
}
