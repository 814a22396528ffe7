package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type pagerModel struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

// NewPagerModel returns a Bubble Tea model that pages styled source.
func NewPagerModel(title, content string) tea.Model {
	return &pagerModel{title: title, content: content}
}

func (m *pagerModel) Init() tea.Cmd {
	return nil
}

func (m *pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		headerHeight := lipgloss.Height(m.headerView())
		footerHeight := lipgloss.Height(m.footerView())
		bodyHeight := msg.Height - headerHeight - footerHeight
		if !m.ready {
			// Первый WindowSizeMsg: создаём viewport только теперь,
			// до него размеры терминала неизвестны.
			m.viewport = viewport.New(msg.Width, bodyHeight)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = bodyHeight
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *pagerModel) View() string {
	if !m.ready {
		return "loading..."
	}
	return m.headerView() + "\n" + m.viewport.View() + "\n" + m.footerView()
}

func (m *pagerModel) headerView() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	width := m.viewport.Width
	if width <= 0 {
		width = 80
	}
	return titleStyle.Render(truncate(m.title, width))
}

func (m *pagerModel) footerView() string {
	infoStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	return infoStyle.Render(fmt.Sprintf("%3.f%% · q to quit", m.viewport.ScrollPercent()*100))
}

// RunPager shows content in a full-screen scrollable pager.
func RunPager(title, content string) error {
	// Без завершающего \n последняя строка теряется при скролле
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	p := tea.NewProgram(NewPagerModel(title, content), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
