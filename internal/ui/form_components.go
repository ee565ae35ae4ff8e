package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TextInput represents a single-line text input field
type TextInput struct {
	Label       string
	Value       string
	Placeholder string
	Focused     bool
	Width       int
}

// NewTextInput creates a new text input
func NewTextInput(label, placeholder string) TextInput {
	return TextInput{
		Label:       label,
		Placeholder: placeholder,
		Width:       48,
	}
}

// Update handles key input for text input
func (t *TextInput) Update(msg tea.KeyMsg) {
	if !t.Focused {
		return
	}

	switch msg.String() {
	case "backspace":
		if len(t.Value) > 0 {
			t.Value = t.Value[:len(t.Value)-1]
		}
	case " ", "space":
		t.Value += " "
	default:
		if msg.Type == tea.KeyRunes {
			t.Value += string(msg.Runes)
		}
	}
}

// View renders the text input
func (t TextInput) View() string {
	label := formLabelStyle.Render(t.Label + ":")

	displayValue := t.Value
	if displayValue == "" {
		displayValue = lipgloss.NewStyle().Foreground(colorMuted).Render(t.Placeholder)
	}

	var inputStyle lipgloss.Style
	if t.Focused {
		inputStyle = formInputFocusedStyle.Width(t.Width)
	} else {
		inputStyle = formInputStyle.Width(t.Width)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, label, " ", inputStyle.Render(displayValue))
}

// TextArea represents a multi-line text input field. Enter inserts a
// newline while focused; tab moves focus away.
type TextArea struct {
	Label       string
	Value       string
	Placeholder string
	Focused     bool
	Width       int
	Height      int
}

// NewTextArea creates a new text area
func NewTextArea(label, placeholder string) TextArea {
	return TextArea{
		Label:       label,
		Placeholder: placeholder,
		Width:       48,
		Height:      4,
	}
}

// Update handles key input for the text area
func (t *TextArea) Update(msg tea.KeyMsg) {
	if !t.Focused {
		return
	}

	switch msg.String() {
	case "backspace":
		if len(t.Value) > 0 {
			t.Value = t.Value[:len(t.Value)-1]
		}
	case "enter":
		t.Value += "\n"
	case " ", "space":
		t.Value += " "
	case "tab":
		// Tab pastes from spreadsheets arrive as cell separators.
		t.Value += "\t"
	default:
		if msg.Type == tea.KeyRunes {
			t.Value += string(msg.Runes)
		}
	}
}

// View renders the text area
func (t TextArea) View() string {
	label := formLabelStyle.Render(t.Label + ":")

	displayValue := t.Value
	if displayValue == "" {
		displayValue = lipgloss.NewStyle().Foreground(colorMuted).Render(t.Placeholder)
	}

	var areaStyle lipgloss.Style
	if t.Focused {
		areaStyle = formInputFocusedStyle.Width(t.Width).Height(t.Height)
	} else {
		areaStyle = formInputStyle.Width(t.Width).Height(t.Height)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, label, " ", areaStyle.Render(displayValue))
}

// Checkbox represents a single checkbox
type Checkbox struct {
	Label   string
	Checked bool
	Focused bool
}

// NewCheckbox creates a new checkbox
func NewCheckbox(label string, checked bool) Checkbox {
	return Checkbox{
		Label:   label,
		Checked: checked,
	}
}

// Toggle toggles the checkbox state
func (c *Checkbox) Toggle() {
	c.Checked = !c.Checked
}

// View renders the checkbox
func (c Checkbox) View() string {
	box := "[ ]"
	if c.Checked {
		box = "[x]"
	}

	boxStyle := lipgloss.NewStyle().Foreground(colorMuted)
	labelStyle := lipgloss.NewStyle().Foreground(colorText)
	if c.Focused {
		boxStyle = optionCursorStyle
		labelStyle = optionSelectedStyle
	}

	return boxStyle.Render(box) + " " + labelStyle.Render(c.Label)
}

// RadioGroup represents a horizontal single-choice selector
type RadioGroup struct {
	Label    string
	Options  []string
	Selected int
	Focused  bool
}

// NewRadioGroup creates a new radio group
func NewRadioGroup(label string, options []string, selected int) RadioGroup {
	return RadioGroup{
		Label:    label,
		Options:  options,
		Selected: selected,
	}
}

// Next advances the selection
func (r *RadioGroup) Next() {
	r.Selected = (r.Selected + 1) % len(r.Options)
}

// Previous moves the selection back
func (r *RadioGroup) Previous() {
	r.Selected = (r.Selected - 1 + len(r.Options)) % len(r.Options)
}

// GetSelected returns the selected option text
func (r RadioGroup) GetSelected() string {
	return r.Options[r.Selected]
}

// View renders the radio group
func (r RadioGroup) View() string {
	label := formLabelStyle.Render(r.Label + ":")

	var options []string
	for i, option := range r.Options {
		marker := "( )"
		style := optionNormalStyle
		if i == r.Selected {
			marker = "(o)"
			style = optionSelectedStyle
		}
		if r.Focused && i == r.Selected {
			style = optionCursorStyle
		}
		options = append(options, style.Render(marker+" "+option))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, label, " ", strings.Join(options, "  "))
}

// Button represents a submit button
type Button struct {
	Label   string
	Focused bool
}

// NewButton creates a new button
func NewButton(label string) Button {
	return Button{Label: label}
}

// View renders the button
func (b Button) View() string {
	if b.Focused {
		return formButtonStyle.Render(b.Label)
	}
	return formButtonInactiveStyle.Render(b.Label)
}
