package renderer

import (
	"strings"
	"testing"
	"time"

	"MediaNotifier/models"
)

func sampleNotices() []models.Notice {
	return []models.Notice{
		{
			Index:     models.PinnedIndex,
			Category:  "학사",
			Title:     "수강신청 안내",
			Author:    "교학팀",
			Link:      "http://media.ajou.ac.kr/media/board/notice.do?mode=view&amp;articleNo=9001",
			ExpiredAt: "2024-03-02",
		},
		{
			Index:     1872,
			Category:  "행사",
			Title:     "Tom &amp; Jerry &lt;특강&gt;",
			Author:    "미디어학과",
			Link:      "http://media.ajou.ac.kr/media/board/notice.do?mode=view&amp;articleNo=1872",
			ExpiredAt: "2024-02-29",
		},
	}
}

func TestComposeXML(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	out := ComposeXML(sampleNotices(), now)

	if !strings.HasPrefix(out, "<rss version=\"2.0\">\n <channel>\n <title>Ajou University Department of Digital Media Notices</title>") {
		t.Errorf("channel header wrong:\n%s", out)
	}
	if !strings.HasSuffix(out, "</channel>\n </rss>") {
		t.Errorf("channel footer wrong:\n%s", out)
	}

	if got := strings.Count(out, "<item>"); got != 2 {
		t.Errorf("expected 2 <item> blocks, got %d", got)
	}

	stamp := "<lastBuildDate>" + now.Format(time.RFC1123Z) + "</lastBuildDate>"
	if !strings.Contains(out, stamp) {
		t.Errorf("lastBuildDate missing or wrong, want %s in:\n%s", stamp, out)
	}
	if _, err := time.Parse(time.RFC1123Z, now.Format(time.RFC1123Z)); err != nil {
		t.Errorf("lastBuildDate is not a valid RFC-2822 timestamp: %v", err)
	}

	wantItem := "<item>\n <title>Tom &amp; Jerry &lt;특강&gt;</title>\n" +
		" <link>http://media.ajou.ac.kr/media/board/notice.do?mode=view&amp;articleNo=1872</link>\n" +
		" <description>[행사] - 미디어학과 (~2024-02-29)</description>\n </item>"
	if !strings.Contains(out, wantItem) {
		t.Errorf("item block wrong, want:\n%s\nin:\n%s", wantItem, out)
	}
}

func TestComposeMarkdown(t *testing.T) {
	out := ComposeMarkdown(sampleNotices())

	want := `# 미디어학과 최근 공지사항\n\n` +
		`* **[📌 수강신청 안내](http://media.ajou.ac.kr/media/board/notice.do?mode=view&amp;articleNo=9001)**\n  [학사] - 교학팀 (~2024-03-02)\n\n` +
		`* **[Tom &amp; Jerry &lt;특강&gt;](http://media.ajou.ac.kr/media/board/notice.do?mode=view&amp;articleNo=1872)**\n  [행사] - 미디어학과 (~2024-02-29)`
	if out != want {
		t.Errorf("markdown output wrong:\ngot:  %q\nwant: %q", out, want)
	}

	// The separators are the two literal characters backslash and n; a real
	// line break anywhere would change what downstream consumers split on.
	if strings.Contains(out, "\n") {
		t.Error("markdown output must not contain real newlines")
	}
}

func TestComposeMarkdownMarksPinnedTitles(t *testing.T) {
	out := ComposeMarkdown(sampleNotices())

	if !strings.Contains(out, "[📌 수강신청 안내]") {
		t.Error("pinned notice title missing the pin marker")
	}
	if strings.Contains(out, "[📌 Tom") {
		t.Error("numbered notice title must not carry the pin marker")
	}
}

func TestComposeCommitMessage(t *testing.T) {
	notices := []models.Notice{
		{Index: 3, Title: "A"},
		{Index: 2, Title: "B"},
		{Index: 1, Title: "C"},
	}

	out := ComposeCommitMessage(notices, 3)
	want := "dist: 3개의 새 공지사항\n\n* A\n* B\n* C"
	if out != want {
		t.Errorf("commit message wrong:\ngot:  %q\nwant: %q", out, want)
	}
}
