package stubapi

import (
	"net/http"
	"strings"

	json "github.com/goccy/go-json"
)

type translateBody struct {
	Text string `json:"text"`
}

type batchBody struct {
	Texts json.RawMessage `json:"texts"`
}

type speakBody struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

type batchItem struct {
	English string  `json:"english"`
	Kannada *string `json:"kannada"`
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	var body translateBody
	if !decodeBody(r, &body) {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	text := strings.TrimSpace(body.Text)
	if text == "" {
		writeError(w, http.StatusBadRequest, "No text provided")
		return
	}

	kannada, ok := s.lookup(text)
	if !ok {
		writeError(w, http.StatusInternalServerError, "Translation failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"english":   text,
		"kannada":   kannada,
		"timestamp": s.timestamp(),
	})
}

func (s *Server) handleTranslateBatch(w http.ResponseWriter, r *http.Request) {
	var body batchBody
	if !decodeBody(r, &body) {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	var texts []string
	if len(body.Texts) == 0 || json.Unmarshal(body.Texts, &texts) != nil || len(texts) == 0 {
		writeError(w, http.StatusBadRequest, "No texts provided or invalid format")
		return
	}

	items := make([]batchItem, 0, len(texts))
	for _, text := range texts {
		item := batchItem{English: text}
		if kannada, ok := s.lookup(text); ok {
			item.Kannada = &kannada
		}
		items = append(items, item)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"translations": items,
		"timestamp":    s.timestamp(),
	})
}

func (s *Server) handleSpeak(w http.ResponseWriter, r *http.Request) {
	var body speakBody
	if !decodeBody(r, &body) {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	text := strings.TrimSpace(body.Text)
	if text == "" {
		writeError(w, http.StatusBadRequest, "No text provided")
		return
	}

	language := strings.ToLower(body.Language)
	if language == "" {
		language = "english"
	}
	if language != "english" && language != "kannada" {
		writeError(w, http.StatusBadRequest, `Language must be "english" or "kannada"`)
		return
	}

	s.mu.Lock()
	s.spoken = append(s.spoken, SpokenText{Text: text, Language: language})
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"message":  "Text-to-speech initiated",
		"text":     text,
		"language": language,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"service":   ServiceName,
		"version":   APIVersion,
		"timestamp": s.timestamp(),
	})
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"name":        "English to Kannada Translator",
		"version":     APIVersion,
		"description": "Full-stack translator with text and speech capabilities",
		"endpoints": map[string]any{
			"translate": map[string]any{
				"method": "POST",
				"path":   "/api/translate",
				"params": map[string]string{"text": "English text to translate"},
			},
			"translate_batch": map[string]any{
				"method": "POST",
				"path":   "/api/translate-batch",
				"params": map[string]string{"texts": "Array of English texts"},
			},
			"speak": map[string]any{
				"method": "POST",
				"path":   "/api/speak",
				"params": map[string]string{"text": "Text to speak", "language": "english or kannada"},
			},
			"health": map[string]any{
				"method": "GET",
				"path":   "/api/health",
			},
		},
	})
}
