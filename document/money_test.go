package document

import "testing"

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{75, "75"},
		{1500, "1,500"},
		{98425, "98,425"},
		{-8425, "-8,425"},
		{1250000, "1,250,000"},
	}
	for _, c := range cases {
		if got := formatAmount(c.in); got != c.want {
			t.Errorf("formatAmount(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestAmountInWords(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{500, "500"},
		{85000, "85 thousand "},
		{85500, "85 thousand 500"},
		{999999, "999 thousand 999"},
		{1000000, "1,000,000"},
	}
	for _, c := range cases {
		if got := amountInWords(c.in); got != c.want {
			t.Errorf("amountInWords(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseAmount(t *testing.T) {
	if _, ok := parseAmount(""); ok {
		t.Error("expected empty input to be rejected")
	}
	if _, ok := parseAmount("12a"); ok {
		t.Error("expected malformed input to be rejected")
	}
	n, ok := parseAmount("100000")
	if !ok || n != 100000 {
		t.Errorf("parseAmount(100000) = %d, %v", n, ok)
	}
}
