package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New(srv.URL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return client
}

func TestList(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/v1/items" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode([]Item{
			{ID: "2", Title: "newer", CreatedAt: time.Now()},
			{ID: "1", Title: "older", CreatedAt: time.Now().Add(-time.Hour)},
		})
	})

	items, err := client.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 2 || items[0].ID != "2" {
		t.Errorf("unexpected items: %+v", items)
	}
}

func TestCreate(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type: %s", ct)
		}
		var payload itemPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Item{
			ID:          "abc",
			Title:       payload.Title,
			Description: payload.Description,
			CreatedAt:   time.Now(),
		})
	})

	it, err := client.Create(context.Background(), "T", "D")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if it.ID != "abc" || it.Title != "T" || it.Description != "D" {
		t.Errorf("unexpected item: %+v", it)
	}
}

func TestUpdate(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/v1/items/abc" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(Item{ID: "abc", Title: "new", Description: "newer"})
	})

	it, err := client.Update(context.Background(), "abc", "new", "newer")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if it.Title != "new" {
		t.Errorf("unexpected item: %+v", it)
	}
}

func TestDelete(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/v1/items/abc" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(msgBody{Message: "Item deleted successfully"})
	})

	msg, err := client.Delete(context.Background(), "abc")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if msg != "Item deleted successfully" {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestAPIError(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(errBody{Error: "Item not found"})
	})

	_, err := client.Get(context.Background(), "missing")
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsNotFound(err) {
		t.Errorf("expected IsNotFound, got %v", err)
	}
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Message != "Item not found" {
		t.Errorf("unexpected message: %q", apiErr.Message)
	}
}

func TestNewRejectsEmptyURL(t *testing.T) {
	if _, err := New("  "); err == nil {
		t.Fatal("expected error for empty base URL")
	}
}
