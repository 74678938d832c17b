package tui

import "testing"

func TestMarkdownStyle_RespectsTUITheme(t *testing.T) {
	t.Setenv("REELIST_TUI_MD_STYLE", "")
	t.Setenv("COLORFGBG", "")
	t.Setenv("REELIST_TUI_DARKBG", "")

	t.Setenv("REELIST_TUI_THEME", "light")
	if got := markdownStyle(); got != "light" {
		t.Fatalf("expected light; got %q", got)
	}

	t.Setenv("REELIST_TUI_THEME", "dark")
	if got := markdownStyle(); got != "dark" {
		t.Fatalf("expected dark; got %q", got)
	}
}

func TestMarkdownStyle_MDStyleOverridesTheme(t *testing.T) {
	t.Setenv("COLORFGBG", "")
	t.Setenv("REELIST_TUI_DARKBG", "")
	t.Setenv("REELIST_TUI_THEME", "light")

	t.Setenv("REELIST_TUI_MD_STYLE", "dark")
	if got := markdownStyle(); got != "dark" {
		t.Fatalf("expected dark; got %q", got)
	}
}

func TestMarkdownStyle_DarkBGBeatsColorFGBG(t *testing.T) {
	t.Setenv("REELIST_TUI_MD_STYLE", "")
	t.Setenv("REELIST_TUI_THEME", "")
	t.Setenv("COLORFGBG", "0;15")

	t.Setenv("REELIST_TUI_DARKBG", "true")
	if got := markdownStyle(); got != "dark" {
		t.Fatalf("expected dark; got %q", got)
	}

	t.Setenv("REELIST_TUI_DARKBG", "false")
	if got := markdownStyle(); got != "light" {
		t.Fatalf("expected light; got %q", got)
	}
}

func TestMarkdownStyle_ColorFGBGHeuristic(t *testing.T) {
	t.Setenv("REELIST_TUI_MD_STYLE", "")
	t.Setenv("REELIST_TUI_THEME", "")
	t.Setenv("REELIST_TUI_DARKBG", "")

	t.Setenv("COLORFGBG", "15;0")
	if got := markdownStyle(); got != "dark" {
		t.Fatalf("expected a black background to read as dark; got %q", got)
	}

	t.Setenv("COLORFGBG", "0;15")
	if got := markdownStyle(); got != "light" {
		t.Fatalf("expected a white background to read as light; got %q", got)
	}
}

func TestTrimVisuallyEmptyTail(t *testing.T) {
	t.Parallel()

	// Styled-but-blank tail lines are dropped; interior blanks survive.
	in := "first\n\nsecond\n\x1b[38;5;252m  \x1b[0m\n   \n"
	if got := trimVisuallyEmptyTail(in); got != "first\n\nsecond" {
		t.Fatalf("trimVisuallyEmptyTail = %q", got)
	}

	if got := trimVisuallyEmptyTail("plain"); got != "plain" {
		t.Fatalf("trimVisuallyEmptyTail = %q", got)
	}
}

func TestRenderMarkdown_EmptyInput(t *testing.T) {
	if got := renderMarkdown("   \n", 60); got != "" {
		t.Fatalf("expected empty output for blank input; got %q", got)
	}
}
