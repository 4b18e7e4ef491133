// Package controller drives the translator screen. It turns user actions
// and speech events into client calls and renders the results through a
// View, never touching the network itself.
package controller

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ambiyansyah-risyal/anuvada"
	"github.com/ambiyansyah-risyal/anuvada/history"
)

// StatusDuration is how long a status message stays visible.
const StatusDuration = 5 * time.Second

const (
	localeEnglish = "en-US"
	localeKannada = "kn-IN"
)

// Controller holds the screen logic. Its methods may be called from
// different goroutines; actions are serialised. Status updates take a lock of
// their own so speech callbacks may fire from inside Synthesizer.Speak.
type Controller struct {
	mu sync.Mutex

	api     API
	view    View
	history *history.History

	synth      Synthesizer
	clipboard  Clipboard
	recognizer Recognizer
	logger     *zap.Logger

	statusMu       sync.Mutex
	statusDuration time.Duration
	statusTimer    *time.Timer
}

// Option configures a Controller.
type Option func(*Controller)

func WithSynthesizer(s Synthesizer) Option {
	return func(c *Controller) { c.synth = s }
}

func WithClipboard(cb Clipboard) Option {
	return func(c *Controller) { c.clipboard = cb }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithStatusDuration overrides StatusDuration.
func WithStatusDuration(d time.Duration) Option {
	return func(c *Controller) { c.statusDuration = d }
}

// New wires a controller. api, view and h are required.
func New(api API, view View, h *history.History, opts ...Option) *Controller {
	c := &Controller{
		api:            api,
		view:           view,
		history:        h,
		logger:         zap.NewNop(),
		statusDuration: StatusDuration,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Init loads the persisted history and renders it. A broken history is
// logged and ignored.
func (c *Controller) Init() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.history.Load(); err != nil {
		c.logger.Error("Error loading history", zap.Error(err))
	}
	c.view.RenderHistory(c.history.Entries())
}

// Translate translates the English panel into the Kannada panel.
func (c *Controller) Translate(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	text := strings.TrimSpace(c.view.Text(PanelEnglish))
	if text == "" {
		c.showStatus("Please enter English text to translate", LevelError)
		return
	}

	c.view.SetLoading(true)
	defer c.view.SetLoading(false)

	outcome := c.api.Translate(ctx, text)
	if f := outcome.Failure(); f != nil {
		c.showStatus("Error: "+f.Message, LevelError)
		return
	}

	var result anuvada.TranslateResponse
	if err := outcome.Decode(&result); err != nil || !result.Success {
		c.showStatus("Translation failed", LevelError)
		return
	}

	c.view.SetText(PanelKannada, result.Kannada)
	c.updateCharCount(PanelKannada)
	c.showStatus("Translation successful!", LevelSuccess)

	if _, err := c.history.Add(result.English, result.Kannada); err != nil {
		c.logger.Warn("Failed to save history", zap.Error(err))
	}
	c.view.RenderHistory(c.history.Entries())
}

// Speak voices the text of a panel locally and notifies the backend.
func (c *Controller) Speak(p Panel) {
	c.mu.Lock()
	defer c.mu.Unlock()

	text := c.view.Text(p)
	if strings.TrimSpace(text) == "" {
		c.showStatus("No text to speak", LevelError)
		return
	}

	if c.synth == nil {
		c.showStatus("Speech synthesis not available", LevelError)
	} else {
		locale := localeEnglish
		if p == PanelKannada {
			locale = localeKannada
		}
		language := string(p.Language())

		c.synth.Cancel()
		c.synth.Speak(Utterance{Text: text, Locale: locale, Rate: 0.9, Pitch: 1.0, Volume: 1.0}, SpeechEvents{
			OnStart: func() { c.ShowStatus(fmt.Sprintf("Speaking %s...", language), LevelInfo) },
			OnEnd:   func() { c.ShowStatus("Speech completed", LevelSuccess) },
			OnError: func(err string) { c.ShowStatus("Speech error: "+err, LevelError) },
		})
	}

	c.api.NotifySpoken(text, p.Language())
}

// Clear empties a panel.
func (c *Controller) Clear(p Panel) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.view.SetText(p, "")
	c.updateCharCount(p)
}

// Copy puts the text of a panel on the clipboard.
func (c *Controller) Copy(ctx context.Context, p Panel) {
	c.mu.Lock()
	defer c.mu.Unlock()

	text := c.view.Text(p)
	if strings.TrimSpace(text) == "" {
		c.showStatus(fmt.Sprintf("No %s text to copy", p.Label()), LevelError)
		return
	}
	if c.clipboard == nil {
		c.showStatus("Failed to copy text", LevelError)
		return
	}
	if err := c.clipboard.WriteText(ctx, text); err != nil {
		c.logger.Debug("Clipboard write failed", zap.Error(err))
		c.showStatus("Failed to copy text", LevelError)
		return
	}
	c.showStatus(fmt.Sprintf("%s text copied!", p.Label()), LevelSuccess)
}

// UpdateCharCount refreshes the character counter of a panel.
func (c *Controller) UpdateCharCount(p Panel) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updateCharCount(p)
}

// Restore puts history entry i back into both panels.
func (c *Controller) Restore(i int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, err := c.history.At(i)
	if err != nil {
		return err
	}
	c.view.SetText(PanelEnglish, entry.English)
	c.view.SetText(PanelKannada, entry.Kannada)
	c.updateCharCount(PanelEnglish)
	c.updateCharCount(PanelKannada)
	c.showStatus("Restored from history", LevelInfo)
	return nil
}

// ShowStatus displays message and hides it after the status duration. A
// newer message replaces the pending hide.
func (c *Controller) ShowStatus(message string, level Level) {
	c.showStatus(message, level)
}

func (c *Controller) showStatus(message string, level Level) {
	c.statusMu.Lock()
	defer c.statusMu.Unlock()

	if c.statusTimer != nil {
		c.statusTimer.Stop()
	}
	c.view.ShowStatus(message, level)

	var timer *time.Timer
	timer = time.AfterFunc(c.statusDuration, func() {
		c.statusMu.Lock()
		defer c.statusMu.Unlock()
		if c.statusTimer == timer {
			c.view.HideStatus()
			c.statusTimer = nil
		}
	})
	c.statusTimer = timer
}

func (c *Controller) updateCharCount(p Panel) {
	c.view.SetCharCount(p, FormatCharCount(len([]rune(c.view.Text(p)))))
}

// FormatCharCount renders "1 character" / "N characters".
func FormatCharCount(n int) string {
	if n == 1 {
		return "1 character"
	}
	return fmt.Sprintf("%d characters", n)
}
