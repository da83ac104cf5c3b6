package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"item-management/internal/tui"
	"item-management/pkg/apiclient"
)

func main() {
	baseURL := flag.String("api", defaultBaseURL(), "base URL of the items API")
	flag.Parse()

	client, err := apiclient.New(*baseURL)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid API URL:", err)
		os.Exit(1)
	}

	p := tea.NewProgram(tui.New(client), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func defaultBaseURL() string {
	if v := os.Getenv("ITEMS_API_URL"); v != "" {
		return v
	}
	return "http://localhost:8080"
}
