package ui

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/eventscout/internal/backend"
	"github.com/five82/eventscout/internal/logtail"
	"github.com/five82/eventscout/internal/search"
	"github.com/five82/eventscout/internal/state"
)

// Every network result carries the generation it was issued under. Update
// drops it when a newer request of the same kind has started since.

type locationResolvedMsg struct {
	gen    uint64
	search search.Search
}

type searchDoneMsg struct {
	gen     uint64
	outcome search.Outcome
}

type detailLoadedMsg struct {
	gen   uint64
	id    string
	event backend.Event
	err   error
}

type venueLoadedMsg struct {
	gen   uint64
	name  string
	venue backend.Venue
	err   error
}

type tickMsg time.Time

type snapshotMsg state.Snapshot

type logsLoadedMsg struct {
	lines []logtail.Line
	err   error
}

// flashMsg is a transient status bar message.
type flashMsg struct {
	text    string
	isError bool
}

// generations are the stale-response tokens, one per request kind.
type generations struct {
	search uint64
	detail uint64
	venue  uint64
}

func resolveLocationCmd(ctx context.Context, orch *search.Orchestrator, gen uint64, s search.Search) tea.Cmd {
	return func() tea.Msg {
		return locationResolvedMsg{gen: gen, search: orch.Resolve(ctx, s)}
	}
}

func querySearchCmd(ctx context.Context, orch *search.Orchestrator, gen uint64, s search.Search) tea.Cmd {
	return func() tea.Msg {
		return searchDoneMsg{gen: gen, outcome: orch.Query(ctx, s)}
	}
}

func fetchDetailCmd(ctx context.Context, api backend.API, gen uint64, id string) tea.Cmd {
	return func() tea.Msg {
		ev, err := api.EventDetails(ctx, id)
		return detailLoadedMsg{gen: gen, id: id, event: ev, err: err}
	}
}

func fetchVenueCmd(ctx context.Context, api backend.API, gen uint64, name string) tea.Cmd {
	return func() tea.Msg {
		v, err := api.VenueDetails(ctx, name)
		return venueLoadedMsg{gen: gen, name: name, venue: v, err: err}
	}
}

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func loadLogsCmd(path string, max int) tea.Cmd {
	return func() tea.Msg {
		lines, err := logtail.ReadLines(path, max)
		return logsLoadedMsg{lines: lines, err: err}
	}
}

// openURLCmd hands url to the platform's default browser.
func openURLCmd(url string) tea.Cmd {
	return func() tea.Msg {
		var cmd *exec.Cmd
		switch runtime.GOOS {
		case "darwin":
			cmd = exec.Command("open", url)
		case "windows":
			cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
		default:
			cmd = exec.Command("xdg-open", url)
		}
		if err := cmd.Start(); err != nil {
			return flashMsg{text: fmt.Sprintf("open browser: %v", err), isError: true}
		}
		go func() { _ = cmd.Wait() }()
		return flashMsg{text: "Opened ticket page"}
	}
}

func copyURLCmd(url string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(url); err != nil {
			return flashMsg{text: fmt.Sprintf("copy: %v", err), isError: true}
		}
		return flashMsg{text: "Copied ticket URL"}
	}
}
