package commons

import "testing"

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   string
		wantOK bool
	}{
		{"plain", "Starbucks", "Starbucks", true},
		{"surrounding spaces", "  Starbucks  ", "Starbucks", true},
		{"inner spaces kept", " Juan Valdez Café ", "Juan Valdez Café", true},
		{"empty", "", "", false},
		{"only spaces", "   ", "", false},
		{"tabs and newlines", "\t\n ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeName(tt.raw)
			if got != tt.want {
				t.Errorf("NormalizeName(%q) = %q, want %q", tt.raw, got, tt.want)
			}
			if ok != tt.wantOK {
				t.Errorf("NormalizeName(%q) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
		})
	}
}
