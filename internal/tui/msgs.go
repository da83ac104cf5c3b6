package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"item-management/pkg/apiclient"
)

// successNoticeTTL is how long a success banner stays before it auto-clears.
// Error banners never auto-clear; they persist until the next action.
const successNoticeTTL = 3 * time.Second

type listLoadedMsg struct {
	items []apiclient.Item
	err   error
}

type createdMsg struct {
	item apiclient.Item
	err  error
}

type updatedMsg struct {
	item apiclient.Item
	err  error
}

type deletedMsg struct {
	id      string
	message string
	err     error
}

// clearNoticeMsg carries the sequence number of the notice it may clear, so a
// stale timer never wipes a newer banner.
type clearNoticeMsg struct {
	seq int
}

func loadItems(client *apiclient.Client) tea.Cmd {
	return func() tea.Msg {
		items, err := client.List(context.Background())
		return listLoadedMsg{items: items, err: err}
	}
}

func createItem(client *apiclient.Client, title, description string) tea.Cmd {
	return func() tea.Msg {
		it, err := client.Create(context.Background(), title, description)
		return createdMsg{item: it, err: err}
	}
}

func updateItem(client *apiclient.Client, id, title, description string) tea.Cmd {
	return func() tea.Msg {
		it, err := client.Update(context.Background(), id, title, description)
		return updatedMsg{item: it, err: err}
	}
}

func deleteItem(client *apiclient.Client, id string) tea.Cmd {
	return func() tea.Msg {
		msg, err := client.Delete(context.Background(), id)
		return deletedMsg{id: id, message: msg, err: err}
	}
}

func clearNoticeAfter(seq int) tea.Cmd {
	return tea.Tick(successNoticeTTL, func(time.Time) tea.Msg {
		return clearNoticeMsg{seq: seq}
	})
}
