package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case listLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m, m.setNotice("Failed to fetch items", true)
		}
		m.items = msg.items
		m.clampCursor()
		return m, nil

	case createdMsg:
		if msg.err != nil {
			return m, m.setNotice("Failed to create item", true)
		}
		m.items = prependItem(m.items, msg.item)
		m.cursor = 0
		m.titleInput.SetValue("")
		m.descInput.SetValue("")
		m.blurForm()
		m.mode = modeList
		return m, m.setNotice("Item created", false)

	case updatedMsg:
		if msg.err != nil {
			// stay in the edit form so the draft isn't lost
			return m, m.setNotice("Failed to update item", true)
		}
		m.items = replaceItem(m.items, msg.item)
		m.editingID = ""
		m.blurForm()
		m.mode = modeList
		return m, m.setNotice("Item updated", false)

	case deletedMsg:
		if msg.err != nil {
			return m, m.setNotice("Failed to delete item", true)
		}
		m.items = removeItem(m.items, msg.id)
		m.clampCursor()
		text := msg.message
		if text == "" {
			text = "Item deleted"
		}
		return m, m.setNotice(text, false)

	case clearNoticeMsg:
		if msg.seq == m.noticeSeq && !m.notice.isErr {
			m.notice = notice{}
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeCreate, modeEdit:
			return m.updateForm(msg)
		case modeConfirmDelete:
			return m.updateConfirm(msg)
		default:
			return m.updateList(msg)
		}
	}

	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "r":
		// manual refresh updates in place, no loading indicator
		return m, loadItems(m.client)
	case "a":
		m.mode = modeCreate
		m.titleInput.SetValue("")
		m.descInput.SetValue("")
		m.focusTitle()
		return m, nil
	case "e":
		if m.cursor < len(m.items) {
			// capture the row's current values into the edit draft; switching
			// rows mid-edit simply re-captures, nothing is sent until save
			row := m.items[m.cursor]
			m.mode = modeEdit
			m.editingID = row.ID
			m.titleInput.SetValue(row.Title)
			m.descInput.SetValue(row.Description)
			m.focusTitle()
		}
		return m, nil
	case "d":
		if m.cursor < len(m.items) {
			m.mode = modeConfirmDelete
		}
		return m, nil
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// cancel discards the draft, no network call
		m.blurForm()
		m.editingID = ""
		m.mode = modeList
		return m, nil
	case "tab", "shift+tab":
		m.focusDesc = !m.focusDesc
		if m.focusDesc {
			m.titleInput.Blur()
			m.descInput.Focus()
		} else {
			m.descInput.Blur()
			m.titleInput.Focus()
		}
		return m, nil
	case "enter":
		title := strings.TrimSpace(m.titleInput.Value())
		description := strings.TrimSpace(m.descInput.Value())
		if title == "" || description == "" {
			return m, m.setNotice("Title and description are required", true)
		}
		if m.mode == modeEdit {
			return m, updateItem(m.client, m.editingID, title, description)
		}
		return m, createItem(m.client, title, description)
	}

	var cmd tea.Cmd
	if m.focusDesc {
		m.descInput, cmd = m.descInput.Update(msg)
	} else {
		m.titleInput, cmd = m.titleInput.Update(msg)
	}
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.mode = modeList
		if m.cursor < len(m.items) {
			return m, deleteItem(m.client, m.items[m.cursor].ID)
		}
		return m, nil
	case "n", "N", "esc":
		m.mode = modeList
		return m, nil
	}
	return m, nil
}

func (m *Model) focusTitle() {
	m.focusDesc = false
	m.descInput.Blur()
	m.titleInput.Focus()
}

func (m *Model) blurForm() {
	m.titleInput.Blur()
	m.descInput.Blur()
	m.focusDesc = false
}
