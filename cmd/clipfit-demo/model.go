package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/clipfit/clipfit/internal/grapheme"
	"github.com/clipfit/clipfit/limiter"
)

type keyMap struct {
	Paste     key.Binding
	Backspace key.Binding
	Clear     key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Paste:     key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Clear:     key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("ctrl+c", "quit")),
	}
}

type model struct {
	lim  limiter.Limiter
	cb   limiter.Clipboard
	keys keyMap
	st   styles

	text  string
	width int
	note  string
}

func newModel(lim limiter.Limiter, cb limiter.Clipboard) model {
	return model{
		lim:  lim,
		cb:   cb,
		keys: defaultKeyMap(),
		st:   defaultStyles(),
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m.handleKey(msg), nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) model {
	// Bracketed paste arrives as literal runes and must never trigger
	// shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		return m.insert(string(msg.Runes), "pasted")
	}

	switch {
	case key.Matches(msg, m.keys.Paste):
		text, cut, err := limiter.PasteText(m.lim, m.length(), m.cb)
		if err != nil {
			m.note = "clipboard unavailable"
			return m
		}
		return m.append(text, cut, "pasted")
	case key.Matches(msg, m.keys.Backspace):
		m.text = grapheme.Prefix(m.text, m.length()-1)
		m.note = ""
		return m
	case key.Matches(msg, m.keys.Clear):
		m.text = ""
		m.note = ""
		return m
	}

	switch msg.Type {
	case tea.KeySpace:
		return m.insert(" ", "typed")
	case tea.KeyRunes:
		return m.insert(string(msg.Runes), "typed")
	}
	return m
}

func (m model) insert(text, verb string) model {
	fitted, cut := m.lim.FitText(m.length(), text)
	return m.append(fitted, cut, verb)
}

func (m model) append(fitted string, cut bool, verb string) model {
	m.text += fitted
	if cut {
		m.note = verb + " input truncated to fit"
	} else {
		m.note = ""
	}
	return m
}

func (m model) length() int { return grapheme.Count(m.text) }

func (m model) View() string {
	var sb strings.Builder
	sb.WriteString(m.st.Field.Render(m.text))
	sb.WriteByte('\n')
	sb.WriteString(m.statusBar())
	sb.WriteByte('\n')
	sb.WriteString(m.st.Help.Render("type or paste · ctrl+v clipboard · ctrl+u clear · ctrl+c quit"))
	return sb.String()
}

// statusBar renders the note on the left and the used/max counter flush
// right, padded by display width so wide characters align.
func (m model) statusBar() string {
	counter := fmt.Sprintf("%d", m.length())
	if !m.lim.Unlimited() {
		counter = fmt.Sprintf("%d/%d", m.length(), m.lim.MaxLength())
	}
	style := m.st.Counter
	if !m.lim.Unlimited() && m.lim.Remaining(m.length()) == 0 {
		style = m.st.Full
	}

	pad := m.width - runewidth.StringWidth(m.note) - runewidth.StringWidth(counter)
	if pad < 1 {
		pad = 1
	}
	return m.st.Help.Render(m.note) + strings.Repeat(" ", pad) + style.Render(counter)
}
