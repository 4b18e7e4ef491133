package anuvada

import (
	"context"

	json "github.com/goccy/go-json"
)

// Endpoint paths of the translation API.
const (
	PathTranslate      = "/api/translate"
	PathTranslateBatch = "/api/translate-batch"
	PathSpeak          = "/api/speak"
	PathHealth         = "/api/health"
	PathInfo           = "/api/info"
)

type translateRequest struct {
	Text string `json:"text"`
}

type batchRequest struct {
	Texts []string `json:"texts"`
}

type speakRequest struct {
	Text     string   `json:"text"`
	Language Language `json:"language"`
}

// Translate sends text to be translated from English to Kannada.
func (c *Client) Translate(ctx context.Context, text string) Outcome {
	return c.postJSON(ctx, PathTranslate, translateRequest{Text: text})
}

// TranslateBatch translates several texts in one call. A nil slice is sent
// as an empty array.
func (c *Client) TranslateBatch(ctx context.Context, texts []string) Outcome {
	if texts == nil {
		texts = []string{}
	}
	return c.postJSON(ctx, PathTranslateBatch, batchRequest{Texts: texts})
}

// Speak asks the backend to voice text. An empty language means English.
func (c *Client) Speak(ctx context.Context, text string, language Language) Outcome {
	if language == "" {
		language = English
	}
	return c.postJSON(ctx, PathSpeak, speakRequest{Text: text, Language: language})
}

// HealthCheck calls the health endpoint.
func (c *Client) HealthCheck(ctx context.Context) Outcome {
	return c.Request(ctx, PathHealth, RequestConfig{Method: MethodGet})
}

// GetInfo fetches the API description.
func (c *Client) GetInfo(ctx context.Context) Outcome {
	return c.Request(ctx, PathInfo, RequestConfig{Method: MethodGet})
}

// NotifySpoken tells the backend that text was spoken locally. It returns at
// once; the outcome is only logged and counted.
func (c *Client) NotifySpoken(text string, language Language) {
	c.notifications.Add(1)
	go func() {
		defer c.notifications.Done()

		outcome := c.Speak(context.Background(), text, language)
		c.metrics.RecordNotification(outcome)
		if f := outcome.Failure(); f != nil && c.logEnabled(c.debug.LogFailures) {
			c.logger.Debug("Spoken text notification dropped", "kind", f.Kind.String(), "message", f.Message)
		}
	}()
}

// WaitNotifications blocks until every pending NotifySpoken call finished.
func (c *Client) WaitNotifications() {
	c.notifications.Wait()
}

func (c *Client) postJSON(ctx context.Context, path string, body any) Outcome {
	payload, err := json.Marshal(body)
	if err != nil {
		return failedWith(&Failure{Kind: KindNetworkError, Message: err.Error(), Cause: err, Endpoint: path})
	}
	return c.Request(ctx, path, RequestConfig{Method: MethodPost, Body: payload})
}
