// Package anuvada is a client for the English to Kannada translation API.
//
// Every call returns an Outcome instead of an error:
//
//   - Success carries the decoded JSON body (and the raw bytes, see Decode)
//   - Failure carries a Kind (Timeout, HttpError, NetworkError), the message
//     to show the user and, for HTTP errors, the status code
//
// Each request is bounded by its own timer (15s by default). When the timer
// fires the in-flight call is cancelled and the outcome is a Timeout failure
// with the message "Request timeout". Non-2xx responses use the body's
// "error" field as the message, falling back to "HTTP <status>". Exactly one
// attempt is made; retrying is left to the caller.
//
// Typical usage:
//
//	client := anuvada.New("http://localhost:5000",
//	    anuvada.WithTimeout(10*time.Second),
//	    anuvada.WithMetrics(),
//	)
//	outcome := client.Translate(ctx, "Hello")
//	var tr anuvada.TranslateResponse
//	if err := outcome.Decode(&tr); err != nil {
//	    // err is an *anuvada.Failure
//	}
//
// GET endpoints may be cached with WithCache; POST calls always reach the
// server. A Logger (WithSimpleLogger, WithZapLogger) plus WithDebug give
// insight into individual calls.
package anuvada
