// Package renderer turns an extracted notice list into one of three text
// documents. Field values arrive already entity-escaped from the extractor
// and are never escaped again here. The composers are pure: no clock reads
// besides the timestamp argument, no I/O.
package renderer

import (
	"fmt"
	"strings"
	"time"

	"MediaNotifier/models"
)

const (
	XML           = "xml"
	Markdown      = "md"
	CommitMessage = "cm"
)

// ComposeXML emits an RSS 2.0 document with a fixed channel block. Lines
// inside the header, items and footer are joined with "\n " (newline plus one
// space); consumers of the historical feed expect those exact bytes.
func ComposeXML(notices []models.Notice, now time.Time) string {
	header := strings.Join([]string{
		`<rss version="2.0">`,
		`<channel>`,
		`<title>Ajou University Department of Digital Media Notices</title>`,
		`<link>https://media.ajou.ac.kr/media/board/board01.jsp</link>`,
		`<description>Recently published notices</description>`,
		`<language>ko-kr</language>`,
		`<lastBuildDate>` + now.Format(time.RFC1123Z) + `</lastBuildDate>`,
	}, "\n ")

	items := make([]string, 0, len(notices))
	for _, notice := range notices {
		items = append(items, strings.Join([]string{
			`<item>`,
			`<title>` + notice.Title + `</title>`,
			`<link>` + notice.Link + `</link>`,
			`<description>` + describe(notice) + `</description>`,
			`</item>`,
		}, "\n "))
	}

	footer := "</channel>\n </rss>"

	return header + "\n" + strings.Join(items, "\n") + "\n" + footer
}

// ComposeMarkdown emits the digest form. The separators between header and
// items are the two literal characters backslash and n, not real line breaks;
// the downstream pipeline splits on that literal form, so it stays.
func ComposeMarkdown(notices []models.Notice) string {
	header := "# 미디어학과 최근 공지사항"

	items := make([]string, 0, len(notices))
	for _, notice := range notices {
		title := notice.Title
		if notice.Pinned() {
			title = "📌 " + title
		}
		items = append(items, `* **[`+title+`](`+notice.Link+`)**\n  `+describe(notice))
	}

	return header + `\n\n` + strings.Join(items, `\n\n`)
}

// ComposeCommitMessage emits a commit message headline with the number of
// newly seen notices, then one bullet per notice title.
func ComposeCommitMessage(notices []models.Notice, newCount int) string {
	header := fmt.Sprintf("dist: %d개의 새 공지사항", newCount)

	items := make([]string, 0, len(notices))
	for _, notice := range notices {
		items = append(items, "* "+notice.Title)
	}

	return header + "\n\n" + strings.Join(items, "\n")
}

func describe(notice models.Notice) string {
	return fmt.Sprintf("[%s] - %s (~%s)", notice.Category, notice.Author, notice.ExpiredAt)
}
