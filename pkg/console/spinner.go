package console

import (
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gh-dispatch/gh-dispatch/pkg/constants"
	"github.com/gh-dispatch/gh-dispatch/pkg/tty"
)

// Spinner shows an animated progress line on stderr while work is running.
// It is a no-op when stderr is not a terminal, in accessible mode, or when
// GH_DISPATCH_NO_SPINNER is set.
type Spinner struct {
	message string
	enabled bool

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

type stopSpinnerMsg struct{}

type spinnerModel struct {
	spinner  spinner.Model
	message  string
	quitting bool
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stopSpinnerMsg:
		m.quitting = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.quitting {
		return ""
	}
	return fmt.Sprintf("%s %s", m.spinner.View(), m.message)
}

// NewSpinner creates a stopped spinner with the given message.
func NewSpinner(message string) *Spinner {
	enabled := tty.IsStderrTerminal() &&
		!IsAccessibleMode() &&
		os.Getenv(constants.NoSpinnerEnvVar) == ""
	return &Spinner{message: message, enabled: enabled}
}

// Start begins rendering the spinner.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.enabled || s.program != nil {
		return
	}

	model := spinnerModel{
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(infoStyle)),
		message: s.message,
	}
	s.program = tea.NewProgram(model, tea.WithOutput(os.Stderr), tea.WithInput(nil))
	s.done = make(chan struct{})

	go func(p *tea.Program, done chan struct{}) {
		defer close(done)
		_, _ = p.Run()
	}(s.program, s.done)
}

// Stop clears the spinner line and waits for rendering to finish.
func (s *Spinner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.program == nil {
		return
	}
	s.program.Send(stopSpinnerMsg{})
	<-s.done
	s.program = nil
}
