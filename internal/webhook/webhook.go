package webhook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"MediaNotifier/models"
)

// Send POSTs one notice as JSON to the crawling webhook and returns the
// response body for logging.
func Send(endpoint string, notice models.Notice) (string, error) {
	payload, err := json.Marshal(notice)
	if err != nil {
		return "", fmt.Errorf("marshaling notice %d: %w", notice.Index, err)
	}

	resp, err := http.Post(endpoint, "application/json", bytes.NewBuffer(payload))
	if err != nil {
		return "", fmt.Errorf("posting notice %d: %w", notice.Index, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading webhook response: %w", err)
	}
	return string(body), nil
}
