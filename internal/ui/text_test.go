package ui

import (
	"strings"
	"testing"
)

func TestReflowParagraphs(t *testing.T) {
	input := "This is a fairly long sentence that should wrap at a narrow width.\n\nSecond   paragraph\twith messy   spacing."
	got := ReflowParagraphs(input, 30)

	paragraphs := strings.Split(got, "\n\n")
	if len(paragraphs) != 2 {
		t.Fatalf("got %d paragraphs, want 2:\n%s", len(paragraphs), got)
	}
	for _, line := range strings.Split(got, "\n") {
		if len(line) > 30 {
			t.Errorf("line exceeds width: %q", line)
		}
	}
	if !strings.Contains(paragraphs[1], "Second paragraph with messy spacing.") {
		t.Errorf("whitespace not normalized: %q", paragraphs[1])
	}
}

func TestReflowParagraphsEmpty(t *testing.T) {
	if got := ReflowParagraphs("   \n\n  ", 40); got != "" {
		t.Errorf("ReflowParagraphs(blank) = %q, want empty", got)
	}
}
