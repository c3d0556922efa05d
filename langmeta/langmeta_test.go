package langmeta

import "testing"

func TestCanonical(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "hi_in", want: "hi-IN"},
		{in: " TE-in ", want: "te-IN"},
		{in: "pt_br", want: "pt-BR"},
		{in: "en-us", want: "en-US"},
		{in: "ru", want: "ru"},
		{in: "zz_zz", want: "zz-ZZ"},
		{in: "", want: ""},
	}

	for _, tc := range cases {
		got := Canonical(tc.in)
		if got != tc.want {
			t.Fatalf("Canonical(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestResolve(t *testing.T) {
	t.Run("exact match", func(t *testing.T) {
		got := Resolve("en-GB")
		if got.Name != "English (UK)" || got.Flag == "" {
			t.Fatalf("unexpected result: %#v", got)
		}
	})

	t.Run("normalized match", func(t *testing.T) {
		got := Resolve("pt_br")
		if got.Name != "Portuguese (Brazil)" || got.Native != "Português (Brasil)" || got.Flag == "" {
			t.Fatalf("unexpected result: %#v", got)
		}
	})

	t.Run("base fallback", func(t *testing.T) {
		got := Resolve("hi-IN")
		if got.Name != "Hindi" || got.Native != "हिन्दी" || got.Flag != "🇮🇳" {
			t.Fatalf("unexpected fallback result: %#v", got)
		}
	})

	t.Run("unknown passthrough", func(t *testing.T) {
		got := Resolve("zz-ZZ")
		if got.Name != "zz-ZZ" || got.Native != "" || got.Flag != "" {
			t.Fatalf("unexpected unknown result: %#v", got)
		}
	})
}

func TestLabel(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "hi-IN", want: "🇮🇳 हिन्दी (hi-IN)"},
		{in: "te_in", want: "🇮🇳 తెలుగు (te-IN)"},
		{in: "en-IN", want: "🇮🇳 English (India) (en-IN)"},
		{in: "zz-ZZ", want: "zz-ZZ"},
		{in: "", want: ""},
	}

	for _, tc := range cases {
		got := Label(tc.in)
		if got != tc.want {
			t.Fatalf("Label(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
