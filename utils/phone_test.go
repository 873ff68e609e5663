package utils

import "testing"

func TestFormatPhoneNumber(t *testing.T) {
	cases := map[string]string{
		"070-123 45 67":   "46701234567",
		"+46 70 123 4567": "46701234567",
		"0046701234567":   "46701234567",
		"":                "",
	}
	for input, want := range cases {
		if got := FormatPhoneNumber(input); got != want {
			t.Errorf("FormatPhoneNumber(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestValidatePhoneNumber(t *testing.T) {
	valid := []string{"070-123 45 67", "+46 70 123 4567", "123456"}
	for _, number := range valid {
		if !ValidatePhoneNumber(number) {
			t.Errorf("expected %q to be valid", number)
		}
	}

	invalid := []string{"12345", "", "1234567890123456"}
	for _, number := range invalid {
		if ValidatePhoneNumber(number) {
			t.Errorf("expected %q to be invalid", number)
		}
	}
}
