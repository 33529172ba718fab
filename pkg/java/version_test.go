// SPDX-License-Identifier: MPL-2.0

package java

import (
	"errors"
	"testing"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		raw    string
		major  int
		minor  int
		patch  int
		update int
		suffix string
	}{
		{"17.0.2", 17, 0, 2, 0, ""},
		{"1.8.0_345", 1, 8, 0, 345, ""},
		{"21+35", 21, 0, 0, 35, ""},
		{"17", 17, 0, 0, 0, ""},
		{"11.0.9.1", 11, 0, 9, 1, ""},
		{"17.0.2+8-LTS", 17, 0, 2, 8, "LTS"},
		{"17.0.2-ea", 17, 0, 2, 0, "ea"},
		{"jdk-17.0.2", 17, 0, 2, 0, ""},
		{"openjdk 11.0.12", 11, 0, 12, 0, ""},
		{"zulu21.30.15", 21, 30, 15, 0, ""},
		{"9-ea", 9, 0, 0, 0, "ea"},
		{"1.8", 1, 8, 0, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			v, err := ParseVersion(tt.raw)
			if err != nil {
				t.Fatalf("ParseVersion(%q) error = %v", tt.raw, err)
			}
			if v.Major != tt.major || v.Minor != tt.minor || v.Patch != tt.patch || v.Update != tt.update {
				t.Errorf("ParseVersion(%q) = %d.%d.%d+%d, want %d.%d.%d+%d",
					tt.raw, v.Major, v.Minor, v.Patch, v.Update, tt.major, tt.minor, tt.patch, tt.update)
			}
			if v.Suffix != tt.suffix {
				t.Errorf("ParseVersion(%q).Suffix = %q, want %q", tt.raw, v.Suffix, tt.suffix)
			}
			if v.Raw != tt.raw {
				t.Errorf("ParseVersion(%q).Raw = %q, want input preserved", tt.raw, v.Raw)
			}
		})
	}
}

func TestParseVersion_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		kind ParseErrorKind
	}{
		{"empty", "", ParseErrEmpty},
		{"whitespace", "   ", ParseErrEmpty},
		{"no digits", "openjdk", ParseErrNoNumericComponent},
		{"punctuation only", "-._", ParseErrNoNumericComponent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseVersion(tt.raw)
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("ParseVersion(%q) error = %v, want *ParseError", tt.raw, err)
			}
			if pe.Kind != tt.kind {
				t.Errorf("ParseVersion(%q) kind = %d, want %d", tt.raw, pe.Kind, tt.kind)
			}
		})
	}
}

func TestVersion_Compare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"17.0.2", "11.0.9", 1},
		{"11.0.9", "17.0.2", -1},
		{"17.0.2", "17.0.2", 0},
		{"17", "17.0.0", 0},
		{"1.8.0_345", "1.8.0_302", 1},
		{"21+35", "21+34", 1},
		{"17.0.2", "17.0.2-ea", -1},
		{"11.0.9.1", "11.0.9", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+" vs "+tt.b, func(t *testing.T) {
			a := MustParseVersion(tt.a)
			b := MustParseVersion(tt.b)
			if got := a.Compare(b); got != tt.want {
				t.Errorf("Compare(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestVersion_MajorFeature(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"1.8.0_345", 8},
		{"11.0.12", 11},
		{"17.0.2", 17},
		{"1.8", 8},
		{"21+35", 21},
	}

	for _, tt := range tests {
		if got := MustParseVersion(tt.raw).MajorFeature(); got != tt.want {
			t.Errorf("MajorFeature(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestVersion_AtLeast(t *testing.T) {
	v := MustParseVersion("11.0.12")
	if !v.AtLeast(8) {
		t.Error("11.0.12 should be at least 8")
	}
	if !v.AtLeast(11) {
		t.Error("11.0.12 should be at least 11")
	}
	if v.AtLeast(17) {
		t.Error("11.0.12 should not be at least 17")
	}
}

func TestVersion_String_PreservesRaw(t *testing.T) {
	// Partial inputs render verbatim, never zero-padded.
	v := MustParseVersion("17")
	if got := v.String(); got != "17" {
		t.Errorf("String() = %q, want %q", got, "17")
	}

	synthetic := Version{Major: 17, Minor: 0, Patch: 2}
	if got := synthetic.String(); got != "17.0.2" {
		t.Errorf("String() = %q, want %q", got, "17.0.2")
	}
}
