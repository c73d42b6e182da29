// Package menu renders numbered choice lists with an optional centered title.
package menu

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"unicode/utf8"
)

const (
	evenSeparatorWidth = 40
	oddSeparatorWidth  = 39
)

// Menu is an ordered list of choices with an optional title.
type Menu struct {
	Title   string
	Choices []string
}

// New creates an untitled menu.
func New(choices ...string) *Menu {
	m := &Menu{Choices: []string{}}
	m.Add(choices...)
	return m
}

// NewWithTitle creates a titled menu.
func NewWithTitle(title string, choices ...string) *Menu {
	m := New(choices...)
	m.Title = title
	return m
}

// Add appends choices.
func (m *Menu) Add(choices ...string) {
	m.Choices = append(m.Choices, choices...)
}

// AddAt inserts each choice at index in turn, so later choices end up in
// front of earlier ones. index is clamped to the list bounds.
func (m *Menu) AddAt(index int, choices ...string) {
	index = max(0, min(index, len(m.Choices)))
	for _, c := range choices {
		m.Choices = slices.Insert(m.Choices, index, c)
	}
}

// Separator returns the rule printed under the title. Its width keeps
// the centered title symmetric: 40 for titles with an even number of
// characters, 39 for odd.
func (m *Menu) Separator() string {
	if utf8.RuneCountInString(m.Title)%2 == 0 {
		return strings.Repeat("=", evenSeparatorWidth)
	}
	return strings.Repeat("=", oddSeparatorWidth)
}

// Show lazily yields the display lines: the centered title and separator
// when a title is set, then "<n>. <choice>" per choice. n is the 1-based
// position of the first choice with that text.
func (m *Menu) Show() iter.Seq[string] {
	return func(yield func(string) bool) {
		if m.Title != "" {
			sep := m.Separator()
			width := utf8.RuneCountInString(m.Title)
			align := (len(sep)-width)/2 + width
			if !yield(fmt.Sprintf("%*s", align, m.Title)) {
				return
			}
			if !yield(sep) {
				return
			}
		}

		for _, choice := range m.Choices {
			n := slices.Index(m.Choices, choice) + 1
			if !yield(fmt.Sprintf("%d. %s", n, choice)) {
				return
			}
		}
	}
}

// Lines collects Show into a slice.
func (m *Menu) Lines() []string {
	return slices.Collect(m.Show())
}
