package lyricspanel

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func stripANSI(s string) string {
	re := regexp.MustCompile(`\x1b\[[0-9;]*m`)
	return re.ReplaceAllString(s, "")
}

func TestView_Loading(t *testing.T) {
	m := New()
	m.SetSize(60, 20)
	m.SetLoading("t1", "Digital Love", "Daft Punk")

	stripped := stripANSI(m.View())
	if !strings.Contains(stripped, "Loading lyrics") {
		t.Errorf("expected loading state, got: %s", stripped)
	}
	if !strings.Contains(stripped, "Digital Love — Daft Punk") {
		t.Errorf("expected track header, got: %s", stripped)
	}
}

func TestView_Loaded(t *testing.T) {
	m := New()
	m.SetSize(60, 20)
	m.SetLoading("t1", "Digital Love", "Daft Punk")
	m.SetLyrics("Last night I had a dream about you\nIn this dream I'm dancing right beside you")

	stripped := stripANSI(m.View())
	if !strings.Contains(stripped, "Last night I had a dream") {
		t.Errorf("expected lyrics text, got: %s", stripped)
	}
}

func TestView_NotFound(t *testing.T) {
	m := New()
	m.SetSize(60, 20)
	m.SetLoading("t1", "T", "A")
	m.SetNotFound()

	stripped := stripANSI(m.View())
	if !strings.Contains(stripped, "No lyrics found") {
		t.Errorf("expected not-found message, got: %s", stripped)
	}
}

func TestView_Error(t *testing.T) {
	m := New()
	m.SetSize(60, 20)
	m.SetLoading("t1", "T", "A")
	m.SetError(errors.New("service unavailable"))

	stripped := stripANSI(m.View())
	if !strings.Contains(stripped, "Could not fetch lyrics") {
		t.Errorf("expected error message, got: %s", stripped)
	}
}

func TestUpdate_EscCloses(t *testing.T) {
	m := New()
	m.SetSize(60, 20)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc should emit a command")
	}
	if _, ok := cmd().(CloseMsg); !ok {
		t.Fatalf("expected CloseMsg, got %T", cmd())
	}
}

func TestUpdate_Scroll(t *testing.T) {
	m := New()
	m.SetSize(40, 8)
	m.SetLoading("t1", "T", "A")
	m.SetLyrics(strings.Repeat("line\n", 50))

	if m.maxScroll() == 0 {
		t.Fatal("expected scrollable content")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	if m.scrollOffset != 1 {
		t.Errorf("scrollOffset after j = %d, want 1", m.scrollOffset)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	if m.scrollOffset != m.maxScroll() {
		t.Errorf("scrollOffset after G = %d, want %d", m.scrollOffset, m.maxScroll())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	if m.scrollOffset != 0 {
		t.Errorf("scrollOffset after g = %d, want 0", m.scrollOffset)
	}
}

func TestWrapLine(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  []string
	}{
		{name: "fits", in: "short line", width: 20, want: []string{"short line"}},
		{name: "wraps at word boundary", in: "one two three four", width: 9, want: []string{"one two", "three", "four"}},
		{name: "empty", in: "", width: 10, want: []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapLine(tt.in, tt.width)
			if len(got) != len(tt.want) {
				t.Fatalf("wrapLine() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
