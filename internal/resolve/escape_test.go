package resolve

import "testing"

func TestEscapeContentPango(t *testing.T) {
	got := EscapeContent(ModePango, `<a & "b">'c'\%`)
	want := `&lt\;a &amp\; &quot\;b&quot\;&gt\;&apos\;c&apos\;&#x5c\;&#x25\;`
	if got != want {
		t.Fatalf("pango escape mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestEscapeContentXelatex(t *testing.T) {
	got := EscapeContent(ModeXelatex, `#&%$_{}~^`)
	want := `\#\&\%\$\_\{\}\textasciitilde{}\textasciicircum{}`
	if got != want {
		t.Fatalf("xelatex escape mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestEscapeContentXelatexBackslashAndQuote(t *testing.T) {
	got := EscapeContent(ModeXelatex, `\ "`)
	want := `\textbackslash{} \char"22`
	if got != want {
		t.Fatalf("xelatex escape mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestExpandTemplateSinglePass(t *testing.T) {
	// Content containing a slot marker must not be expanded again.
	got := expandTemplate("p:{0}/{1}", "{1}", "F")
	if got != "p:{1}/F" {
		t.Fatalf("substitution must be single-pass, got %q", got)
	}
}

func TestTemplateNeedsFont(t *testing.T) {
	if !templateNeedsFont("x:{0}/{1}") || !templateNeedsFont("x:{text} {font}") {
		t.Fatal("font slots not detected")
	}
	if templateNeedsFont("x:{0}") {
		t.Fatal("font slot falsely detected")
	}
}
