package pdf

import "testing"

func TestEncode_PortugueseLettersSurvive(t *testing.T) {
	t.Parallel()

	got := Encode("Visita à comunidade: ações de saúde")
	want := "Visita \xe0 comunidade: a\xe7\xf5es de sa\xfade"
	if got != want {
		t.Fatalf("unexpected encoding: %q", got)
	}
}

func TestEncode_TypographicPunctuationSubstituted(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"a–b":      "a-b",
		"a—b":      "a-b",
		"‘x’": "'x'",
		"“x”": `"x"`,
		"• item":   "- item",
		"fim…":     "fim...",
	}
	for raw, want := range cases {
		if got := Encode(raw); got != want {
			t.Fatalf("Encode(%q): want %q, got %q", raw, want, got)
		}
	}
}

func TestEncode_UnrepresentableBecomesPlaceholder(t *testing.T) {
	t.Parallel()

	if got := Encode("ok 你好"); got != "ok ??" {
		t.Fatalf("expected placeholder substitution, got %q", got)
	}
	if got := Encode("emoji \U0001F600 fim"); got != "emoji ? fim" {
		t.Fatalf("expected placeholder substitution, got %q", got)
	}
}

func TestSubstitute_StaysUTF8WithLatin1Runes(t *testing.T) {
	t.Parallel()

	got := Substitute("ações de saúde… 你好")
	if got != "ações de saúde... ??" {
		t.Fatalf("unexpected substitution: %q", got)
	}
	for _, r := range got {
		if r >= 0x100 {
			t.Fatalf("rune %q (%U) not representable in Latin-1", r, r)
		}
	}
}

func TestEncode_PlainASCIIUnchanged(t *testing.T) {
	t.Parallel()

	text := "PLANTAO 14:00 - sala 3"
	if got := Encode(text); got != text {
		t.Fatalf("plain ASCII changed: %q", got)
	}
}
