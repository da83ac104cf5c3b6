package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"item-management/pkg/apiclient"
)

type mode int

const (
	modeList mode = iota
	modeCreate
	modeEdit
	modeConfirmDelete
)

type notice struct {
	text  string
	isErr bool
}

// Model is the single interactive view: the item list plus a "new item"
// draft and at most one tracked "item being edited" draft.
type Model struct {
	client *apiclient.Client

	items   []apiclient.Item
	cursor  int
	loading bool
	spin    spinner.Model

	mode mode

	// shared two-field form used for both create and edit
	titleInput textinput.Model
	descInput  textinput.Model
	focusDesc  bool

	// single edit slot: the id of the row being edited, "" when none
	editingID string

	notice    notice
	noticeSeq int

	width  int
	height int
}

// New builds the initial model; the list fetch starts in Init.
func New(client *apiclient.Client) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = accentStyle

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Title..."
	ti.CharLimit = 200

	di := textinput.New()
	di.Prompt = "> "
	di.Placeholder = "Description..."
	di.CharLimit = 1000

	return Model{
		client:     client,
		loading:    true,
		spin:       sp,
		titleInput: ti,
		descInput:  di,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, loadItems(m.client))
}

// setNotice replaces the banner and, for successes only, schedules auto-clear.
func (m *Model) setNotice(text string, isErr bool) tea.Cmd {
	m.noticeSeq++
	m.notice = notice{text: text, isErr: isErr}
	if isErr {
		return nil
	}
	return clearNoticeAfter(m.noticeSeq)
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// prependItem puts the freshly created item at the head of the list,
// matching the newest-first server ordering.
func prependItem(items []apiclient.Item, it apiclient.Item) []apiclient.Item {
	return append([]apiclient.Item{it}, items...)
}

// replaceItem swaps the item with the same id for the server's returned copy.
func replaceItem(items []apiclient.Item, it apiclient.Item) []apiclient.Item {
	for i := range items {
		if items[i].ID == it.ID {
			items[i] = it
		}
	}
	return items
}

// removeItem drops the item with the given id, preserving order.
func removeItem(items []apiclient.Item, id string) []apiclient.Item {
	out := items[:0]
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}
