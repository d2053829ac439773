// Package view shows rendered hierarchies in a scrollable terminal pager.
package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Padding(0, 1)
)

// Pager is a bubbletea model around a viewport holding fixed content.
type Pager struct {
	title   string
	content string
	vp      viewport.Model
	ready   bool
}

func NewPager(title, content string) *Pager {
	return &Pager{title: title, content: content}
}

func (p *Pager) Init() tea.Cmd { return nil }

func (p *Pager) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		chrome := lipgloss.Height(p.header()) + lipgloss.Height(p.footer())
		height := max(1, msg.Height-chrome)
		if !p.ready {
			p.vp = viewport.New(msg.Width, height)
			p.vp.SetContent(p.content)
			p.ready = true
		} else {
			p.vp.Width = msg.Width
			p.vp.Height = height
		}
		return p, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return p, tea.Quit
		}
	}
	if !p.ready {
		return p, nil
	}
	var cmd tea.Cmd
	p.vp, cmd = p.vp.Update(msg)
	return p, cmd
}

func (p *Pager) View() string {
	if !p.ready {
		return "loading..."
	}
	return lipgloss.JoinVertical(lipgloss.Left, p.header(), p.vp.View(), p.footer())
}

func (p *Pager) header() string { return titleStyle.Render(p.title) }

func (p *Pager) footer() string {
	pct := 100.0
	if p.ready {
		pct = p.vp.ScrollPercent() * 100
	}
	return footerStyle.Render(fmt.Sprintf("%3.f%%  ↑/↓ scroll  q quit", pct))
}

// Run shows content full screen until the user quits.
func Run(title, content string) error {
	_, err := tea.NewProgram(NewPager(title, content), tea.WithAltScreen()).Run()
	return err
}
