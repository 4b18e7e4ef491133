package stubapi

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Fixtures maps English phrases to their Kannada answers.
type Fixtures struct {
	Phrases map[string]string `yaml:"phrases"`
}

// DefaultFixtures is used when no fixture file is given.
func DefaultFixtures() *Fixtures {
	return &Fixtures{Phrases: map[string]string{
		"Hello":                "ಹಲೋ",
		"Thank you":            "ಧನ್ಯವಾದಗಳು",
		"Good morning":         "ಶುಭೋದಯ",
		"How are you?":         "ನೀವು ಹೇಗಿದ್ದೀರಿ?",
		"Welcome":              "ಸ್ವಾಗತ",
		"What is your name?":   "ನಿಮ್ಮ ಹೆಸರೇನು?",
		"I love Karnataka":     "ನಾನು ಕರ್ನಾಟಕವನ್ನು ಪ್ರೀತಿಸುತ್ತೇನೆ",
		"See you tomorrow":     "ನಾಳೆ ಸಿಗೋಣ",
		"Water":                "ನೀರು",
		"Where is the market?": "ಮಾರುಕಟ್ಟೆ ಎಲ್ಲಿದೆ?",
	}}
}

// LoadFixtures reads a YAML fixture file.
func LoadFixtures(path string) (*Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixtures: %w", err)
	}
	return ParseFixtures(data)
}

// ParseFixtures decodes YAML fixture data.
func ParseFixtures(data []byte) (*Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures: %w", err)
	}
	if f.Phrases == nil {
		f.Phrases = map[string]string{}
	}
	return &f, nil
}
