package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"item-management/pkg/apiclient"
)

func fixedItem(id, title string) apiclient.Item {
	return apiclient.Item{ID: id, Title: title, Description: "d", CreatedAt: time.Now()}
}

func asModel(t *testing.T, m tea.Model) Model {
	t.Helper()
	out, ok := m.(Model)
	if !ok {
		t.Fatalf("unexpected model type %T", m)
	}
	return out
}

func TestListHelpers(t *testing.T) {
	items := []apiclient.Item{fixedItem("b", "B"), fixedItem("a", "A")}

	t.Run("prepend puts new item first", func(t *testing.T) {
		out := prependItem(items, fixedItem("c", "C"))
		if out[0].ID != "c" || len(out) != 3 {
			t.Errorf("unexpected result: %+v", out)
		}
	})

	t.Run("replace swaps matching id only", func(t *testing.T) {
		updated := fixedItem("a", "A2")
		out := replaceItem([]apiclient.Item{fixedItem("b", "B"), fixedItem("a", "A")}, updated)
		if out[1].Title != "A2" || out[0].Title != "B" {
			t.Errorf("unexpected result: %+v", out)
		}
	})

	t.Run("remove drops matching id, keeps order", func(t *testing.T) {
		out := removeItem([]apiclient.Item{fixedItem("b", "B"), fixedItem("a", "A")}, "b")
		if len(out) != 1 || out[0].ID != "a" {
			t.Errorf("unexpected result: %+v", out)
		}
	})
}

func TestLoadingTransitions(t *testing.T) {
	t.Run("list load success enters ready", func(t *testing.T) {
		m := New(nil)
		next := asModel(t, must(m.Update(listLoadedMsg{items: []apiclient.Item{fixedItem("a", "A")}})))

		if next.loading {
			t.Error("expected loading to end")
		}
		if len(next.items) != 1 {
			t.Errorf("expected items to populate, got %+v", next.items)
		}
	})

	t.Run("list load failure shows persistent error", func(t *testing.T) {
		m := New(nil)
		next := asModel(t, must(m.Update(listLoadedMsg{err: errors.New("boom")})))

		if !next.notice.isErr || next.notice.text != "Failed to fetch items" {
			t.Errorf("unexpected notice: %+v", next.notice)
		}
	})
}

func TestMutationMessages(t *testing.T) {
	t.Run("created prepends and clears the form", func(t *testing.T) {
		m := New(nil)
		m.loading = false
		m.items = []apiclient.Item{fixedItem("a", "A")}
		m.mode = modeCreate
		m.titleInput.SetValue("B")
		m.descInput.SetValue("d")

		next := asModel(t, must(m.Update(createdMsg{item: fixedItem("b", "B")})))

		if next.items[0].ID != "b" {
			t.Errorf("expected new item first, got %+v", next.items)
		}
		if next.titleInput.Value() != "" || next.descInput.Value() != "" {
			t.Error("expected form fields cleared on success")
		}
		if next.mode != modeList {
			t.Error("expected return to list mode")
		}
		if next.notice.isErr || next.notice.text == "" {
			t.Errorf("expected success notice, got %+v", next.notice)
		}
	})

	t.Run("create failure keeps the draft", func(t *testing.T) {
		m := New(nil)
		m.mode = modeCreate
		m.titleInput.SetValue("B")
		m.descInput.SetValue("d")

		next := asModel(t, must(m.Update(createdMsg{err: errors.New("boom")})))

		if next.titleInput.Value() != "B" {
			t.Error("draft should survive a failed create")
		}
		if !next.notice.isErr {
			t.Error("expected error notice")
		}
	})

	t.Run("updated replaces row and exits edit", func(t *testing.T) {
		m := New(nil)
		m.items = []apiclient.Item{fixedItem("a", "old")}
		m.mode = modeEdit
		m.editingID = "a"

		next := asModel(t, must(m.Update(updatedMsg{item: fixedItem("a", "new")})))

		if next.items[0].Title != "new" {
			t.Errorf("expected replaced row, got %+v", next.items)
		}
		if next.editingID != "" || next.mode != modeList {
			t.Error("expected edit slot released")
		}
	})

	t.Run("update failure stays in edit", func(t *testing.T) {
		m := New(nil)
		m.items = []apiclient.Item{fixedItem("a", "old")}
		m.mode = modeEdit
		m.editingID = "a"

		next := asModel(t, must(m.Update(updatedMsg{err: errors.New("boom")})))

		if next.mode != modeEdit || next.editingID != "a" {
			t.Error("expected to remain in edit mode on failure")
		}
	})

	t.Run("deleted removes row", func(t *testing.T) {
		m := New(nil)
		m.items = []apiclient.Item{fixedItem("a", "A"), fixedItem("b", "B")}
		m.cursor = 1

		next := asModel(t, must(m.Update(deletedMsg{id: "b", message: "Item deleted successfully"})))

		if len(next.items) != 1 || next.items[0].ID != "a" {
			t.Errorf("unexpected items: %+v", next.items)
		}
		if next.cursor != 0 {
			t.Errorf("expected cursor clamped, got %d", next.cursor)
		}
	})
}

func TestNoticeClearing(t *testing.T) {
	t.Run("stale timer does not clear a newer notice", func(t *testing.T) {
		m := New(nil)
		_ = m.setNotice("first", false)
		staleSeq := m.noticeSeq
		_ = m.setNotice("second", false)

		next := asModel(t, must(m.Update(clearNoticeMsg{seq: staleSeq})))
		if next.notice.text != "second" {
			t.Errorf("stale timer cleared the banner: %+v", next.notice)
		}
	})

	t.Run("matching timer clears success notice", func(t *testing.T) {
		m := New(nil)
		_ = m.setNotice("done", false)

		next := asModel(t, must(m.Update(clearNoticeMsg{seq: m.noticeSeq})))
		if next.notice.text != "" {
			t.Errorf("expected banner cleared, got %+v", next.notice)
		}
	})

	t.Run("errors never auto-clear", func(t *testing.T) {
		m := New(nil)
		_ = m.setNotice("bad", true)

		next := asModel(t, must(m.Update(clearNoticeMsg{seq: m.noticeSeq})))
		if next.notice.text != "bad" {
			t.Error("error notice should persist until the next action")
		}
	})
}

func TestEditFlow(t *testing.T) {
	t.Run("begin edit captures the row draft", func(t *testing.T) {
		m := New(nil)
		m.loading = false
		m.items = []apiclient.Item{fixedItem("a", "A")}

		next := asModel(t, must(m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})))

		if next.mode != modeEdit || next.editingID != "a" {
			t.Fatalf("expected edit mode for row a, got mode=%d id=%q", next.mode, next.editingID)
		}
		if next.titleInput.Value() != "A" || next.descInput.Value() != "d" {
			t.Error("expected draft captured from the row")
		}
	})

	t.Run("cancel discards the draft without network call", func(t *testing.T) {
		m := New(nil)
		m.items = []apiclient.Item{fixedItem("a", "A")}
		m.mode = modeEdit
		m.editingID = "a"
		m.titleInput.SetValue("changed")

		model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		next := asModel(t, model)

		if cmd != nil {
			t.Error("cancel must not issue a command")
		}
		if next.mode != modeList || next.editingID != "" {
			t.Error("expected return to viewing state")
		}
		if next.items[0].Title != "A" {
			t.Error("cancel must not touch list state")
		}
	})

	t.Run("blank draft is rejected client-side", func(t *testing.T) {
		m := New(nil)
		m.items = []apiclient.Item{fixedItem("a", "A")}
		m.mode = modeEdit
		m.editingID = "a"
		m.titleInput.SetValue("   ")
		m.descInput.SetValue("d")

		model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		next := asModel(t, model)

		if cmd != nil {
			t.Error("blank draft must not reach the network")
		}
		if !next.notice.isErr {
			t.Error("expected validation error notice")
		}
	})
}

func TestDeleteConfirm(t *testing.T) {
	t.Run("delete requires confirmation", func(t *testing.T) {
		m := New(nil)
		m.loading = false
		m.items = []apiclient.Item{fixedItem("a", "A")}

		next := asModel(t, must(m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})))
		if next.mode != modeConfirmDelete {
			t.Fatalf("expected confirm mode, got %d", next.mode)
		}
		if len(next.items) != 1 {
			t.Error("nothing may be removed before confirmation")
		}
	})

	t.Run("declining keeps the item", func(t *testing.T) {
		m := New(nil)
		m.items = []apiclient.Item{fixedItem("a", "A")}
		m.mode = modeConfirmDelete

		model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
		next := asModel(t, model)

		if cmd != nil {
			t.Error("declining must not issue a command")
		}
		if next.mode != modeList || len(next.items) != 1 {
			t.Error("expected unchanged list in viewing state")
		}
	})
}

// must discards the command half of Update for transitions where only the
// resulting model is under test.
func must(m tea.Model, _ tea.Cmd) tea.Model { return m }
