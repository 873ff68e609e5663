package utils

import "testing"

func TestGenerateShortToken(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		token := GenerateShortToken(16)
		if len(token) != 32 {
			t.Fatalf("expected 32 hex characters, got %d (%q)", len(token), token)
		}
		for _, r := range token {
			if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f') {
				t.Fatalf("unexpected character %q in token %q", r, token)
			}
		}
		if seen[token] {
			t.Fatalf("duplicate token generated: %q", token)
		}
		seen[token] = true
	}
}
