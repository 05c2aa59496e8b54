// Package form implements the interactive question flow that collects a README request.
package form

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/readmegen/pkg/config"
)

// ErrCancelled is returned when the user aborts the form.
var ErrCancelled = errors.New("operation cancelled")

// OtherLanguage is offered alongside the known languages and maps to an unset language.
const OtherLanguage = "Other"

const minDescriptionLength = 10

// Answers is the result of a completed form.
type Answers struct {
	Provider    string
	ProjectName string
	Description string
	Language    string // empty when OtherLanguage was chosen
	License     string
	Scan        bool
}

type questionKind int

const (
	kindChoice questionKind = iota
	kindText
	kindConfirm
)

type question struct {
	id       string
	prompt   string
	kind     questionKind
	choices  []string
	validate func(string) error
}

// Questions in the order they are asked.
const (
	qProvider    = "provider"
	qProjectName = "project_name"
	qDescription = "description"
	qLanguage    = "language"
	qLicense     = "license"
	qScan        = "scan"
)

// ValidateProjectName requires a non-empty name.
func ValidateProjectName(s string) error {
	if len(strings.TrimSpace(s)) == 0 {
		return errors.New("project name cannot be empty")
	}
	return nil
}

// ValidateDescription requires more than ten characters.
func ValidateDescription(s string) error {
	if len(strings.TrimSpace(s)) <= minDescriptionLength {
		return fmt.Errorf("description must be longer than %d characters", minDescriptionLength)
	}
	return nil
}

// languageChoices offers the common languages plus any pre-filled language outside them,
// so accepting the default never replaces an explicit value.
func languageChoices(preset string) []string {
	choices := append([]string{}, config.Languages[:7]...)
	if preset != "" && preset != OtherLanguage && !contains(choices, preset) {
		choices = append(choices, preset)
	}
	return append(choices, OtherLanguage)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func defaultQuestions(language string) []question {
	return []question{
		{id: qProvider, prompt: "Which AI provider do you want to use?", kind: kindChoice,
			choices: []string{string(config.ProviderOllama), string(config.ProviderOpenAI)}},
		{id: qProjectName, prompt: "What is your project name?", kind: kindText, validate: ValidateProjectName},
		{id: qDescription, prompt: "Describe your project in one sentence", kind: kindText, validate: ValidateDescription},
		{id: qLanguage, prompt: "What is the primary programming language?", kind: kindChoice,
			choices: languageChoices(language)},
		{id: qLicense, prompt: "What license do you want to use?", kind: kindChoice,
			choices: append([]string{}, config.Licenses...)},
		{id: qScan, prompt: "Scan current directory for project files?", kind: kindConfirm,
			choices: []string{"Yes", "No"}},
	}
}

// Model is the bubbletea model driving the form.
type Model struct {
	questions []question
	step      int
	cursor    int
	input     textinput.Model
	answers   map[string]string
	err       error
	done      bool
	cancelled bool
	keys      KeyMap
	styles    Styles
}

// New creates a form. defaults pre-fill answers (e.g. from flags or readmegen.yml).
func New(defaults Answers) Model {
	ti := textinput.New()
	ti.CharLimit = 512
	ti.Width = 60

	m := Model{
		questions: defaultQuestions(defaults.Language),
		input:     ti,
		answers:   make(map[string]string),
		keys:      DefaultKeyMap(),
		styles:    DefaultStyles(),
	}

	if defaults.Provider != "" {
		m.answers[qProvider] = defaults.Provider
	}
	if defaults.ProjectName != "" {
		m.answers[qProjectName] = defaults.ProjectName
	}
	if defaults.Description != "" {
		m.answers[qDescription] = defaults.Description
	}
	if defaults.Language != "" {
		m.answers[qLanguage] = defaults.Language
	}
	license := defaults.License
	if license == "" {
		license = config.DefaultLicense
	}
	m.answers[qLicense] = license
	if defaults.Scan {
		m.answers[qScan] = "Yes"
	} else {
		m.answers[qScan] = "No"
	}

	m.enterStep()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Done reports whether every question was answered.
func (m Model) Done() bool { return m.done }

// Cancelled reports whether the user aborted the form.
func (m Model) Cancelled() bool { return m.cancelled }

// Answers returns the collected answers. Only meaningful once Done is true.
func (m Model) Answers() Answers {
	lang := m.answers[qLanguage]
	if lang == OtherLanguage {
		lang = ""
	}
	return Answers{
		Provider:    m.answers[qProvider],
		ProjectName: strings.TrimSpace(m.answers[qProjectName]),
		Description: strings.TrimSpace(m.answers[qDescription]),
		Language:    lang,
		License:     m.answers[qLicense],
		Scan:        m.answers[qScan] == "Yes",
	}
}

func (m *Model) current() question {
	return m.questions[m.step]
}

// enterStep prepares the widgets for the current question using any existing answer.
func (m *Model) enterStep() tea.Cmd {
	m.err = nil
	q := m.current()
	prev := m.answers[q.id]

	if q.kind == kindText {
		m.input.SetValue(prev)
		m.input.Placeholder = ""
		return m.input.Focus()
	}

	m.input.Blur()
	m.cursor = 0
	for i, c := range q.choices {
		if c == prev {
			m.cursor = i
			break
		}
	}
	return nil
}

func (m *Model) submit(value string) tea.Cmd {
	q := m.current()
	if q.validate != nil {
		if err := q.validate(value); err != nil {
			m.err = err
			return nil
		}
	}
	m.answers[q.id] = value

	if m.step == len(m.questions)-1 {
		m.done = true
		return tea.Quit
	}
	m.step++
	return m.enterStep()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.current().kind == kindText {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Cancel):
		m.cancelled = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Back):
		if m.step > 0 {
			m.step--
			return m, m.enterStep()
		}
		return m, nil
	}

	q := m.current()
	switch q.kind {
	case kindText:
		if key.Matches(keyMsg, m.keys.Enter) {
			return m, m.submit(m.input.Value())
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case kindConfirm:
		switch {
		case key.Matches(keyMsg, m.keys.Yes):
			return m, m.submit("Yes")
		case key.Matches(keyMsg, m.keys.No):
			return m, m.submit("No")
		}
		fallthrough

	default:
		switch {
		case key.Matches(keyMsg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(keyMsg, m.keys.Down):
			if m.cursor < len(q.choices)-1 {
				m.cursor++
			}
		case key.Matches(keyMsg, m.keys.Enter):
			return m, m.submit(q.choices[m.cursor])
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.done || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Banner.Render("✨ readmegen - AI-Powered README Generator"))
	b.WriteString("\n\n")

	for i := 0; i < m.step; i++ {
		q := m.questions[i]
		fmt.Fprintf(&b, "%s %s\n", m.styles.Answered.Render("? "+q.prompt), m.answers[q.id])
	}

	q := m.current()
	b.WriteString(m.styles.Question.Render("? " + q.prompt))
	b.WriteString("\n")

	switch q.kind {
	case kindText:
		b.WriteString(m.input.View())
		b.WriteString("\n")
	default:
		for i, c := range q.choices {
			if i == m.cursor {
				b.WriteString(m.styles.ListItemSelected.Render("> " + c))
			} else {
				b.WriteString(m.styles.ListItem.Render(c))
			}
			b.WriteString("\n")
		}
	}

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("enter confirm • esc back • ctrl+c cancel"))
	b.WriteString("\n")
	return b.String()
}

// Run shows the form on the given terminal streams and returns the answers.
func Run(in io.Reader, out io.Writer, defaults Answers) (Answers, error) {
	p := tea.NewProgram(New(defaults), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return Answers{}, fmt.Errorf("interactive form failed: %w", err)
	}

	m, ok := final.(Model)
	if !ok || m.Cancelled() || !m.Done() {
		return Answers{}, ErrCancelled
	}
	return m.Answers(), nil
}
