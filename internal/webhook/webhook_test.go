package webhook

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"MediaNotifier/models"
)

func TestSendPostsNoticeJSON(t *testing.T) {
	var gotContentType string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	notice := models.Notice{
		Index:    1872,
		Category: "행사",
		Title:    "특강 안내",
		Author:   "미디어학과",
		Link:     "http://media.ajou.ac.kr/media/board/notice.do?mode=view",
	}

	response, err := Send(server.URL, notice)
	if err != nil {
		t.Fatalf("Send returned an unexpected error: %v", err)
	}
	if response != `{"ok":true}` {
		t.Errorf("response body wrong: %q", response)
	}
	if gotContentType != "application/json" {
		t.Errorf("content type wrong: %q", gotContentType)
	}

	var decoded models.Notice
	if err := json.Unmarshal(gotBody, &decoded); err != nil {
		t.Fatalf("payload is not valid notice JSON: %v", err)
	}
	if decoded != notice {
		t.Errorf("payload round-trip wrong: %+v", decoded)
	}
}

func TestSendFailsOnUnreachableEndpoint(t *testing.T) {
	_, err := Send("http://127.0.0.1:1", models.Notice{Index: 1})
	if err == nil {
		t.Fatal("an unreachable endpoint must be an error")
	}
}
