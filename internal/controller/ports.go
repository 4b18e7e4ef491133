package controller

import (
	"context"

	"github.com/ambiyansyah-risyal/anuvada"
	"github.com/ambiyansyah-risyal/anuvada/history"
)

// Panel identifies one of the two text regions.
type Panel int

const (
	PanelEnglish Panel = iota
	PanelKannada
)

// Label is the user facing name of the panel.
func (p Panel) Label() string {
	if p == PanelKannada {
		return "Kannada"
	}
	return "English"
}

// Language is the API language spoken by the panel.
func (p Panel) Language() anuvada.Language {
	if p == PanelKannada {
		return anuvada.Kannada
	}
	return anuvada.English
}

// Level is the severity of a status message.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// API is the part of *anuvada.Client the controller uses.
type API interface {
	Translate(ctx context.Context, text string) anuvada.Outcome
	NotifySpoken(text string, language anuvada.Language)
}

// View renders controller state.
type View interface {
	Text(p Panel) string
	SetText(p Panel, text string)
	SetCharCount(p Panel, count string)
	SetLoading(loading bool)
	ShowStatus(message string, level Level)
	HideStatus()
	RenderHistory(entries []history.Entry)
}

// Utterance is a text-to-speech request.
type Utterance struct {
	Text   string
	Locale string
	Rate   float64
	Pitch  float64
	Volume float64
}

// SpeechEvents receives the lifecycle of an utterance.
type SpeechEvents struct {
	OnStart func()
	OnEnd   func()
	OnError func(err string)
}

// Synthesizer is a text-to-speech facility.
type Synthesizer interface {
	Cancel()
	Speak(u Utterance, events SpeechEvents)
}

// Clipboard copies text for the user.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// RecognitionHandlers receives speech-to-text events.
type RecognitionHandlers struct {
	OnStart  func()
	OnEnd    func()
	OnError  func(err string)
	OnResult func(transcript string, final bool)
}

// Recognizer is a speech-to-text event source.
type Recognizer interface {
	Handle(handlers RecognitionHandlers)
	Start() error
}
