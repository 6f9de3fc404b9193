package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/neuropulse/neuropulse/internal/arvin"
)

var (
	userStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	arvinStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	crisisStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	faintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	sessionTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
)

type replyMsg struct {
	reply arvin.Reply
	err   error
}

type sessionModel struct {
	client   *arvin.Client
	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model
	lines    []string
	waiting  bool
	width    int
	ready    bool
}

func newSessionModel(client *arvin.Client) sessionModel {
	ta := textarea.New()
	ta.Placeholder = "Talk to Arvin... (Enter to send, Esc to quit)"
	ta.Focus()
	ta.SetHeight(2)
	ta.ShowLineNumbers = false
	ta.KeyMap.InsertNewline.SetEnabled(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return sessionModel{
		client:   client,
		textarea: ta,
		spinner:  sp,
		lines: []string{
			arvinStyle.Render("Arvin") + ": Hi, I'm here whenever you want to talk.",
			faintStyle.Render("Everything you say is sent to your configured Arvin backend."),
		},
	}
}

func (m sessionModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m sessionModel) sendCmd(message string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		reply, err := m.client.Chat(ctx, message)
		return replyMsg{reply: reply, err: err}
	}
}

func (m sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		taCmd tea.Cmd
		vpCmd tea.Cmd
		spCmd tea.Cmd
	)

	m.textarea, taCmd = m.textarea.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-6)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 6
		}
		m.textarea.SetWidth(msg.Width)
		m.refresh()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			text := strings.TrimSpace(m.textarea.Value())
			if text == "" || m.waiting {
				break
			}
			m.lines = append(m.lines, userStyle.Render("You")+": "+text)
			m.textarea.Reset()
			m.waiting = true
			m.refresh()
			return m, tea.Batch(m.sendCmd(text), m.spinner.Tick)
		}

	case replyMsg:
		m.waiting = false
		if msg.err != nil {
			m.lines = append(m.lines, faintStyle.Render("Could not reach Arvin: "+msg.err.Error()))
		} else {
			m.lines = append(m.lines, m.renderReply(msg.reply)...)
		}
		m.refresh()

	case spinner.TickMsg:
		if m.waiting {
			m.spinner, spCmd = m.spinner.Update(msg)
			return m, tea.Batch(taCmd, vpCmd, spCmd)
		}
	}

	return m, tea.Batch(taCmd, vpCmd)
}

func (m *sessionModel) renderReply(reply arvin.Reply) []string {
	if reply.IsCrisis {
		lines := []string{
			crisisStyle.Render("Arvin (crisis support)") + ":",
			reply.Message,
		}
		for _, h := range reply.Hotlines {
			lines = append(lines, crisisStyle.Render(fmt.Sprintf("  %s (%s): %s", h.Name, h.Country, h.Number)))
		}
		return lines
	}

	lines := []string{arvinStyle.Render("Arvin") + ": " + reply.Message}
	if reply.Sentiment != nil {
		lines = append(lines, faintStyle.Render(fmt.Sprintf("  mood: %s (%.2f)", reply.Sentiment.Mood, reply.Sentiment.Score)))
	}
	return lines
}

func (m *sessionModel) refresh() {
	if !m.ready {
		return
	}
	wrap := lipgloss.NewStyle().Width(m.viewport.Width)
	m.viewport.SetContent(wrap.Render(strings.Join(m.lines, "\n")))
	m.viewport.GotoBottom()
}

func (m sessionModel) View() string {
	if !m.ready {
		return "Starting chat..."
	}
	status := ""
	if m.waiting {
		status = m.spinner.View() + faintStyle.Render(" Arvin is thinking...")
	}
	return fmt.Sprintf("%s\n%s\n%s\n%s",
		sessionTitle.Render("Arvin"),
		m.viewport.View(),
		status,
		m.textarea.View(),
	)
}

// runSession runs the interactive chat UI until the user quits.
func runSession(client *arvin.Client) error {
	p := tea.NewProgram(newSessionModel(client), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
