package validators

import "testing"

func TestMailDomain(t *testing.T) {
	tests := []struct {
		in     string
		domain string
		ok     bool
	}{
		{"sami@example.com", "example.com", true},
		{"weird@but@legal.org", "legal.org", true},
		{"no-at-sign", "", false},
		{"trailing@", "", false},
		{"@nolocal.com", "", false},
		{"", "", false},
	}

	for _, tc := range tests {
		domain, ok := mailDomain(tc.in)
		if domain != tc.domain || ok != tc.ok {
			t.Errorf("mailDomain(%q) = (%q, %v), want (%q, %v)",
				tc.in, domain, ok, tc.domain, tc.ok)
		}
	}
}
