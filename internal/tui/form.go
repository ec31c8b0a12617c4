package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/homeward/internal/lead"
)

const thankYouMessage = "Thank you! We will contact you within 24 hours with your cash offer."

var (
	formBoxStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	formActiveBoxStyle = formBoxStyle.BorderForeground(lipgloss.Color("#C89A3A"))
	formTitleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	formLabelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	formFocusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	formOKStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	formErrStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

var fieldLabels = map[lead.Field]string{
	lead.FieldName:    "Full Name",
	lead.FieldPhone:   "Phone Number",
	lead.FieldEmail:   "Email Address",
	lead.FieldAddress: "Property Address",
	lead.FieldMessage: "Tell us about your situation",
}

var fieldPlaceholders = map[lead.Field]string{
	lead.FieldName:    "Your full name",
	lead.FieldPhone:   "(555) 123-4567",
	lead.FieldEmail:   "your.email@example.com",
	lead.FieldAddress: "123 Main St, City, State, ZIP",
	lead.FieldMessage: "Any additional details about your property or situation...",
}

// contactForm is the lead capture form on the contact page.
type contactForm struct {
	inputs     []textinput.Model
	focus      int
	active     bool
	submitting bool
	spinner    spinner.Model
	status     string
	statusErr  bool
}

func newContactForm() *contactForm {
	f := &contactForm{
		inputs:  make([]textinput.Model, len(lead.Fields)),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	for i, field := range lead.Fields {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = fieldPlaceholders[field]
		in.CharLimit = 256
		in.Cursor.SetMode(cursor.CursorStatic)
		f.inputs[i] = in
	}
	return f
}

func (f *contactForm) lead() lead.Lead {
	var l lead.Lead
	for i, field := range lead.Fields {
		l.Set(field, strings.TrimSpace(f.inputs[i].Value()))
	}
	return l
}

// activate gives the form keyboard focus.
func (f *contactForm) activate() tea.Cmd {
	f.active = true
	return f.setFocus(f.focus)
}

// deactivate releases keyboard focus.
func (f *contactForm) deactivate() {
	f.active = false
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
}

func (f *contactForm) setFocus(idx int) tea.Cmd {
	n := len(f.inputs)
	f.focus = ((idx % n) + n) % n
	var cmd tea.Cmd
	for i := range f.inputs {
		if i == f.focus {
			cmd = f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
	return cmd
}

// clear empties every field after a successful submission.
func (f *contactForm) clear() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
	}
	f.setFocus(0)
}

// formAction is what a key press asks of the surrounding model.
type formAction int

const (
	formNone formAction = iota
	formSubmit
	formLeave
)

func (f *contactForm) update(msg tea.KeyMsg) (formAction, tea.Cmd) {
	if f.submitting {
		return formNone, nil
	}
	switch msg.String() {
	case "esc":
		f.deactivate()
		return formLeave, nil
	case "tab", "down":
		return formNone, f.setFocus(f.focus + 1)
	case "shift+tab", "up":
		return formNone, f.setFocus(f.focus - 1)
	case "ctrl+s":
		return formSubmit, nil
	case "enter":
		if f.focus == len(f.inputs)-1 {
			return formSubmit, nil
		}
		return formNone, f.setFocus(f.focus + 1)
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return formNone, cmd
}

// beginSubmit validates the form. On success it switches to the submitting
// state and returns the spinner command.
func (f *contactForm) beginSubmit() (lead.Lead, bool, tea.Cmd) {
	l := f.lead()
	if missing := l.Missing(); len(missing) > 0 {
		names := make([]string, len(missing))
		for i, field := range missing {
			names[i] = fieldLabels[field]
		}
		f.status = "Please fill in: " + strings.Join(names, ", ")
		f.statusErr = true
		for i, field := range lead.Fields {
			if field == missing[0] {
				f.setFocus(i)
				break
			}
		}
		return l, false, nil
	}
	f.submitting = true
	f.status = ""
	f.statusErr = false
	return l, true, f.spinner.Tick
}

func (f *contactForm) finishSubmit(err error) {
	f.submitting = false
	if err != nil {
		f.status = "Could not send your request: " + err.Error()
		f.statusErr = true
		return
	}
	f.clear()
	f.status = thankYouMessage
	f.statusErr = false
}

func (f *contactForm) updateSpinner(msg spinner.TickMsg) tea.Cmd {
	if !f.submitting {
		return nil
	}
	var cmd tea.Cmd
	f.spinner, cmd = f.spinner.Update(msg)
	return cmd
}

func (f *contactForm) view(width int) string {
	inner := maxInt(10, minInt(width, 72)-4)
	lines := []string{formTitleStyle.Render("Tell Us About Your Property"), ""}
	for i, field := range lead.Fields {
		label := fieldLabels[field]
		if field.Required() {
			label += " *"
		} else {
			label += " (optional)"
		}
		labelStyle := formLabelStyle
		if f.active && i == f.focus {
			labelStyle = formFocusStyle
		}
		f.inputs[i].Width = maxInt(1, inner-1)
		lines = append(lines, labelStyle.Render(label), f.inputs[i].View())
	}
	lines = append(lines, "")
	switch {
	case f.submitting:
		lines = append(lines, f.spinner.View()+" Submitting...")
	case f.active:
		lines = append(lines, formLabelStyle.Render("tab: next field  enter: next/submit  ctrl+s: submit  esc: leave form"))
	default:
		lines = append(lines, formLabelStyle.Render("enter: fill out the form"))
	}
	if f.status != "" {
		style := formOKStyle
		if f.statusErr {
			style = formErrStyle
		}
		lines = append(lines, style.Render(wrapText(f.status, inner)))
	}
	box := formBoxStyle
	if f.active {
		box = formActiveBoxStyle
	}
	return box.Width(inner + 2).Render(strings.Join(lines, "\n"))
}
