package extensions

import (
	"errors"
	"testing"
)

func Test_AllowList_DefaultMatches(t *testing.T) {
	list := MustNew(Default...)

	tests := []struct {
		name    string
		allowed bool
	}{
		{"main.py", true},
		{"index.html", true},
		{"style.css", true},
		{"app.js", true},
		{"README.md", true},
		{"package.json", true},
		{"notes.txt", true},
		{"app.min.js", true},
		{"main.go", false},
		{"b.bin", false},
		{"README.MD", false},
		{"Makefile", false},
		{"py", false},
	}

	for _, tt := range tests {
		if got := list.Matches(tt.name); got != tt.allowed {
			t.Errorf("Matches(%s) = %v, want %v", tt.name, got, tt.allowed)
		}
	}
}

func Test_AllowList_SuffixWithoutDot(t *testing.T) {
	list := MustNew("file")

	if !list.Matches("Dockerfile") {
		t.Error("expected bare suffix to match Dockerfile")
	}
	if list.Matches("file.txt") {
		t.Error("expected file.txt not to match suffix 'file'")
	}
}

func Test_AllowList_Empty(t *testing.T) {
	_, err := New()
	if !errors.Is(err, ErrEmptyAllowList) {
		t.Errorf("expected ErrEmptyAllowList, got %v", err)
	}
}

func Test_AllowList_EmptyEntry(t *testing.T) {
	if _, err := New(".py", ""); err == nil {
		t.Error("expected an empty entry to be rejected")
	}
}

func Test_AllowList_Duplicates(t *testing.T) {
	list := MustNew(".py", ".md", ".py")
	if got := list.String(); got != ".py,.md" {
		t.Errorf("String() = %q, want %q", got, ".py,.md")
	}
	if len(list.Suffixes()) != 2 {
		t.Errorf("expected 2 suffixes, got %d", len(list.Suffixes()))
	}
}

func Test_AllowList_ZeroValueMatchesNothing(t *testing.T) {
	var list AllowList
	if list.Matches("main.py") {
		t.Error("expected zero AllowList to match nothing")
	}
}
