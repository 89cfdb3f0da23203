package fetcher

import (
	"crypto/tls"
	"fmt"
	"io"
	"net/http"

	"MediaNotifier/internal/config"

	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

// Fetch requests one page of the board listing and returns the body as UTF-8
// text. The board server presents a broken certificate chain, so certificate
// validation is disabled on purpose; switching it back on makes every fetch
// fail against the production host.
func Fetch(board config.BoardConfig) (string, error) {
	url := fmt.Sprintf("%s?mode=list&articleLimit=%d&article.offset=%d",
		board.BaseURL, board.ArticleLimit, board.ArticleOffset)

	client := &http.Client{
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		},
	}

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return "", fmt.Errorf("building request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("requesting %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 400 {
		return "", fmt.Errorf("status code error at %s: %s", url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading body of %s: %w", url, err)
	}

	return decodeBody(string(body), board.Encoding)
}

func decodeBody(body, encoding string) (string, error) {
	switch encoding {
	case "", "utf-8":
		return body, nil
	case "euc-kr":
		decoded, _, err := transform.String(korean.EUCKR.NewDecoder(), body)
		if err != nil {
			return "", fmt.Errorf("decoding euc-kr body: %w", err)
		}
		return decoded, nil
	default:
		return "", fmt.Errorf("unsupported board encoding %q", encoding)
	}
}
