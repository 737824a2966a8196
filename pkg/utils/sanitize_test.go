package utils

import (
	"testing"
	"unicode/utf8"
)

func TestSanitizeText_Escape(t *testing.T) {
	got := SanitizeText(`<script>alert("hi")</script>`, 0)
	want := "&lt;script&gt;alert(&quot;hi&quot;)&lt;/script&gt;"
	if got != want {
		t.Errorf("SanitizeText = %q, want %q", got, want)
	}
}

func TestSanitizeText_TrimAndTruncate(t *testing.T) {
	if got := SanitizeText("  hello  ", 0); got != "hello" {
		t.Errorf("trim: got %q", got)
	}
	if got := SanitizeText("abcdefgh", 5); got != "abcde" {
		t.Errorf("truncate: got %q", got)
	}
	if got := SanitizeText("", 0); got != "" {
		t.Errorf("empty: got %q", got)
	}
}

// 截断落在多字节字符中间时退避到字符边界，不产生非法 UTF-8
func TestSanitizeText_TruncateKeepsRuneBoundary(t *testing.T) {
	// "中" 占 3 字节，上限 4 落在第二个字符中间
	if got := SanitizeText("中中中", 4); got != "中" {
		t.Errorf("rune boundary: got %q", got)
	}
	if got := SanitizeText("ab📿cd", 5); got != "ab" {
		t.Errorf("emoji boundary: got %q", got)
	}
	for max := 1; max <= 12; max++ {
		if got := SanitizeText("名字名字", max); !utf8.ValidString(got) {
			t.Errorf("max=%d produced invalid UTF-8: %q", max, got)
		}
	}
}

// 二次清洗结果应与一次清洗一致（& 不参与转义）
func TestSanitizeText_Idempotent(t *testing.T) {
	inputs := []string{
		"plain text",
		`it's a <b>"test"</b>`,
		"  spaced  ",
		"emoji 📿 ok",
	}
	for _, in := range inputs {
		once := SanitizeText(in, 0)
		twice := SanitizeText(once, 0)
		if once != twice {
			t.Errorf("not idempotent for %q: once=%q twice=%q", in, once, twice)
		}
	}
}

func TestSanitizeURL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"https://example.com/a.jpg", "https://example.com/a.jpg"},
		{"http://example.com", "http://example.com"},
		{"javascript:alert(1)", ""},
		{"data:text/html,<h1>x</h1>", ""},
		{"ftp://example.com/file", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := SanitizeURL(c.in); got != c.want {
			t.Errorf("SanitizeURL(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatPhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"5125551234", "(512) 555-1234"},
		{"512-555-1234", "(512) 555-1234"},
		{"15125551234", "+1 (512) 555-1234"},
		{"+1 512 555 1234", "+1 (512) 555-1234"},
		{"12345", "12345"},
	}
	for _, c := range cases {
		if got := FormatPhone(c.in); got != c.want {
			t.Errorf("FormatPhone(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
