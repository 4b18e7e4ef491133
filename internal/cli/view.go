package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/ambiyansyah-risyal/anuvada/history"
	"github.com/ambiyansyah-risyal/anuvada/internal/controller"
)

// terminalView keeps the two panels in memory and prints status lines.
type terminalView struct {
	mu      sync.Mutex
	out     io.Writer
	panels  map[controller.Panel]string
	counts  map[controller.Panel]string
	entries []history.Entry

	lastMessage string
	lastLevel   controller.Level
}

func newTerminalView(out io.Writer) *terminalView {
	return &terminalView{
		out:    out,
		panels: make(map[controller.Panel]string),
		counts: make(map[controller.Panel]string),
	}
}

func (v *terminalView) Text(p controller.Panel) string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.panels[p]
}

func (v *terminalView) SetText(p controller.Panel, text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.panels[p] = text
}

func (v *terminalView) SetCharCount(p controller.Panel, count string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.counts[p] = count
}

func (v *terminalView) SetLoading(bool) {}

func (v *terminalView) ShowStatus(message string, level controller.Level) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.lastMessage, v.lastLevel = message, level
	fmt.Fprintf(v.out, "[%s] %s\n", level, message)
}

func (v *terminalView) HideStatus() {}

func (v *terminalView) RenderHistory(entries []history.Entry) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.entries = entries
}

// lastStatus returns the most recent status message and its level.
func (v *terminalView) lastStatus() (string, controller.Level) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lastMessage, v.lastLevel
}
