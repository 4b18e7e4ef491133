package controller

import "errors"

// ErrNoRecognizer is returned by StartListening when no recognizer is bound.
var ErrNoRecognizer = errors.New("controller: speech recognition not available")

// BindRecognizer registers the controller's handlers on r. Final transcripts
// are appended to the English panel followed by a space.
func (c *Controller) BindRecognizer(r Recognizer) {
	c.mu.Lock()
	c.recognizer = r
	c.mu.Unlock()

	r.Handle(RecognitionHandlers{
		OnStart: func() { c.ShowStatus("Listening...", LevelInfo) },
		OnEnd:   func() { c.ShowStatus("Listening stopped", LevelInfo) },
		OnError: func(err string) { c.ShowStatus("Speech error: "+err, LevelError) },
		OnResult: func(transcript string, final bool) {
			if !final {
				return
			}
			c.mu.Lock()
			defer c.mu.Unlock()
			c.view.SetText(PanelEnglish, c.view.Text(PanelEnglish)+transcript+" ")
			c.updateCharCount(PanelEnglish)
		},
	})
}

// StartListening starts the bound recognizer.
func (c *Controller) StartListening() error {
	c.mu.Lock()
	r := c.recognizer
	c.mu.Unlock()

	if r == nil {
		c.ShowStatus("Speech recognition not supported", LevelError)
		return ErrNoRecognizer
	}
	return r.Start()
}
