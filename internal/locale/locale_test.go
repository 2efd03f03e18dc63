package locale

import (
	"errors"
	"testing"
)

func TestSupported(t *testing.T) {
	tests := []struct {
		name string
		code string
		want bool
	}{
		{"english US", "en_US", true},
		{"scottish english", "en_SCOTT", true},
		{"norwegian", "nb_NO", true},
		{"hindi", "hi_IN", true},
		{"unknown locale", "xx_XX", false},
		{"wrong separator", "en-US", false},
		{"lowercase region", "en_us", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Supported(tt.code); got != tt.want {
				t.Errorf("Supported(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	if err := Validate("fr_FR"); err != nil {
		t.Errorf("Validate(fr_FR) error = %v", err)
	}

	err := Validate("xx_XX")
	if err == nil {
		t.Fatal("Validate(xx_XX) should return error")
	}

	var invalid *InvalidLocaleError
	if !errors.As(err, &invalid) {
		t.Fatalf("error type = %T, want *InvalidLocaleError", err)
	}
	if invalid.Locale != "xx_XX" {
		t.Errorf("Locale = %q, want xx_XX", invalid.Locale)
	}
}

func TestAll(t *testing.T) {
	all := All()
	if len(all) != 27 {
		t.Fatalf("len(All()) = %d, want 27", len(all))
	}
	if all[0] != "en_US" {
		t.Errorf("All()[0] = %q, want en_US", all[0])
	}

	// Mutating the returned slice must not affect the registry.
	all[0] = "zz_ZZ"
	if !Supported("en_US") || All()[0] != "en_US" {
		t.Error("All() should return a copy of the registry")
	}
}
