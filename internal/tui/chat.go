// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-chat-keeper/internal/service"
	"github.com/MKhiriev/go-chat-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const defaultChatWidth = 72

// chatModel is the Bubble Tea model for the chat screen: the message feed in
// a scrollable viewport on top, a one-line compose field below, and a status
// line between them. It renders exclusively from engine snapshots.
type chatModel struct {
	engine service.MessageSyncEngine
	user   models.User

	viewport viewport.Model
	compose  textinput.Model
	ready    bool
	width    int

	snapshot      service.FeedSnapshot
	lastRevision  uint64
	lastSentCount uint64
	status        string

	logout     bool
	quitByUser bool
}

func newChatModel(engine service.MessageSyncEngine, user models.User) chatModel {
	compose := textinput.New()
	compose.Placeholder = "сообщение"
	compose.CharLimit = 500
	compose.Width = defaultChatWidth - 4
	compose.Focus()

	return chatModel{
		engine:   engine,
		user:     user,
		compose:  compose,
		width:    defaultChatWidth,
		snapshot: engine.Snapshot(),
	}
}

// Init implements [tea.Model]. Arms the engine-update subscription alongside
// the cursor blink.
func (m chatModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, cmdWaitForUpdate(m.engine))
}

// Update implements [tea.Model].
func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		feedHeight := msg.Height - 8
		if feedHeight < 3 {
			feedHeight = 3
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, feedHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = feedHeight
		}
		m.compose.Width = msg.Width - 8
		m.viewport.SetContent(m.renderFeed())
		m.viewport.GotoBottom()
		return m, nil

	case engineUpdateMsg:
		m.snapshot = m.engine.Snapshot()

		// A delivered message clears the compose field exactly once.
		if m.snapshot.SentCount > m.lastSentCount {
			m.lastSentCount = m.snapshot.SentCount
			m.compose.Reset()
			m.status = ""
		}

		if m.ready {
			m.viewport.SetContent(m.renderFeed())
			if m.snapshot.Revision != m.lastRevision {
				m.viewport.GotoBottom()
			}
		}
		m.lastRevision = m.snapshot.Revision

		return m, cmdWaitForUpdate(m.engine)

	case copiedMsg:
		m.status = "Скопировано"
		return m, cmdClearStatus()

	case copyFailedMsg:
		m.status = fmt.Sprintf("Ошибка копирования: %v", msg.err)
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			m.quitByUser = true
			return m, tea.Quit

		case key.Matches(msg, keys.logout):
			m.logout = true
			return m, tea.Quit

		case key.Matches(msg, keys.refresh):
			m.engine.Refresh()
			return m, nil

		case key.Matches(msg, keys.copy):
			if len(m.snapshot.Messages) == 0 {
				m.status = "Нечего копировать"
				return m, cmdClearStatus()
			}
			last := m.snapshot.Messages[len(m.snapshot.Messages)-1]
			return m, cmdCopyToClipboard(last.Content)

		case key.Matches(msg, keys.up), key.Matches(msg, keys.down):
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd

		case key.Matches(msg, keys.enter):
			return m.submitCompose()
		}
	}

	var cmd tea.Cmd
	m.compose, cmd = m.compose.Update(msg)
	return m, cmd
}

func (m chatModel) submitCompose() (tea.Model, tea.Cmd) {
	err := m.engine.Send(m.compose.Value())
	switch {
	case err == nil:
		m.status = "Отправка..."
	case errors.Is(err, service.ErrEmptyMessage):
		m.status = "Пустое сообщение не отправляется"
		return m, cmdClearStatus()
	case errors.Is(err, service.ErrSendInFlight):
		m.status = "Предыдущее сообщение ещё отправляется"
		return m, cmdClearStatus()
	default:
		m.status = err.Error()
		return m, cmdClearStatus()
	}
	return m, nil
}

// View implements [tea.Model].
func (m chatModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("ЧАТ — %s", m.user.Name)))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if m.ready {
		b.WriteString(m.viewport.View())
	} else {
		b.WriteString(m.renderFeed())
	}
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	b.WriteString(m.statusLine())
	b.WriteString("\n")

	b.WriteString("> ")
	b.WriteString(m.compose.View())
	b.WriteString("\n")

	b.WriteString(helpStyle.Render("enter: отправить │ ctrl+r: обновить │ ctrl+y: копировать │ ctrl+l: выйти из аккаунта │ ctrl+c: выход"))

	return appStyle.Render(b.String())
}

// statusLine folds the engine state and transient UI status into one line.
func (m chatModel) statusLine() string {
	switch {
	case m.snapshot.LastError != "":
		return errorStyle.Render("Ошибка: " + m.snapshot.LastError)
	case m.status != "":
		return statusStyle.Render(m.status)
	case m.snapshot.SendState == service.OpInFlight:
		return statusStyle.Render("Отправка сообщения...")
	case m.snapshot.RefreshState == service.OpInFlight:
		return statusStyle.Render("Обновление ленты...")
	default:
		return statusStyle.Render(fmt.Sprintf("Сообщений: %d", len(m.snapshot.Messages)))
	}
}

// renderFeed renders the whole feed, own messages aligned right.
func (m chatModel) renderFeed() string {
	if len(m.snapshot.Messages) == 0 {
		return helpStyle.Render("Сообщений пока нет")
	}

	width := m.width - 4
	if width < 20 {
		width = defaultChatWidth - 4
	}

	var b strings.Builder
	for i, msg := range m.snapshot.Messages {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(renderMessage(msg, msg.OwnedBy(m.user.ID), width))
	}
	return b.String()
}

func renderMessage(msg models.Message, own bool, width int) string {
	author := otherAuthorStyle.Render(msg.AuthorName)
	if own {
		author = ownAuthorStyle.Render("вы")
	}

	header := author + " " + timestampStyle.Render(formatTimestamp(msg.CreatedAt))
	body := fitText(msg.Content, width)

	block := header + "\n" + body
	if own {
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Right).Render(block)
	}
	return block
}

// formatTimestamp shortens the server's RFC 3339 timestamp to a local
// wall-clock time; an unparseable value is shown as-is.
func formatTimestamp(raw string) string {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	return t.Local().Format("02.01 15:04")
}

// cmdWaitForUpdate blocks until the engine reports a snapshot change.
// Re-armed after every received update.
func cmdWaitForUpdate(engine service.MessageSyncEngine) tea.Cmd {
	return func() tea.Msg {
		<-engine.Updates()
		return engineUpdateMsg{}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copyFailedMsg{err: err}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
