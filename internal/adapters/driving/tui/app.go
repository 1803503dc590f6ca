package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/wayfarer-cli/internal/core/domain"
)

// threadID is the conversation thread the TUI writes to.
const threadID = "tui"

// replyMsg carries the assistant's reply back into the update loop.
type replyMsg struct {
	reply *domain.AgentReply
	err   error
}

// App is the chat TUI following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *Styles

	viewport viewport.Model
	input    textinput.Model

	// transcript holds the rendered conversation so far.
	transcript []string

	waiting bool
	err     error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	input := textinput.New()
	input.Placeholder = "Ask about visas, roadmaps, costs..."
	input.Focus()
	input.CharLimit = 500

	return &App{
		ports:  ports,
		ctx:    context.Background(),
		styles: DefaultStyles(),
		input:  input,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("wayfarer - Visa Assistant"),
		textinput.Blink,
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		vpHeight := msg.Height - 6
		if vpHeight < 3 {
			vpHeight = 3
		}
		if !a.ready {
			a.viewport = viewport.New(msg.Width, vpHeight)
			a.ready = true
		} else {
			a.viewport.Width = msg.Width
			a.viewport.Height = vpHeight
		}
		a.input.Width = msg.Width - 6
		a.refreshViewport()
		return a, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return a, tea.Quit
		case tea.KeyEnter:
			return a, a.submit()
		}

	case replyMsg:
		a.waiting = false
		if msg.err != nil {
			a.err = msg.err
			a.refreshViewport()
			return a, nil
		}
		a.appendReply(msg.reply)
		a.refreshViewport()
		return a, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd

	a.input, cmd = a.input.Update(msg)
	cmds = append(cmds, cmd)

	if a.ready {
		a.viewport, cmd = a.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

// submit sends the typed message to the assistant.
func (a *App) submit() tea.Cmd {
	text := strings.TrimSpace(a.input.Value())
	if text == "" || a.waiting {
		return nil
	}

	a.input.Reset()
	a.err = nil
	a.waiting = true
	a.transcript = append(a.transcript, a.styles.User.Render("you: ")+text)
	a.refreshViewport()

	return func() tea.Msg {
		reply, err := a.ports.Assistant.Converse(a.ctx, threadID, text)
		return replyMsg{reply: reply, err: err}
	}
}

// appendReply renders an assistant reply into the transcript.
func (a *App) appendReply(reply *domain.AgentReply) {
	if reply == nil {
		return
	}

	text := reply.ReplyText
	if reply.Gated() {
		text = reply.Prompt
	}
	a.transcript = append(a.transcript,
		a.styles.Assistant.Render("wayfarer: ")+text)

	for _, c := range reply.Citations {
		a.transcript = append(a.transcript, a.styles.Muted.Render("  source: "+c))
	}
	for _, w := range reply.Warnings {
		a.transcript = append(a.transcript, a.styles.Warning.Render("  note: "+w))
	}
	a.transcript = append(a.transcript, "")
}

// refreshViewport re-renders the transcript and scrolls to the bottom.
func (a *App) refreshViewport() {
	if !a.ready {
		return
	}

	content := strings.Join(a.transcript, "\n")
	if a.err != nil {
		content += "\n" + a.styles.Error.Render("error: "+a.err.Error())
	}
	a.viewport.SetContent(content)
	a.viewport.GotoBottom()
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Starting..."
	}

	status := "Enter to send, Esc to quit"
	if a.waiting {
		status = "Thinking..."
	}

	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Wayfarer"))
	b.WriteString("\n")
	b.WriteString(a.viewport.View())
	b.WriteString("\n")
	b.WriteString(a.styles.InputField.Render(a.input.View()))
	b.WriteString("\n")
	b.WriteString(a.styles.StatusBar.Render(status))
	return b.String()
}
