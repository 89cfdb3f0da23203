package extractor

import (
	"html"
	"strconv"
	"strings"

	"MediaNotifier/internal/config"
	"MediaNotifier/models"

	"github.com/PuerkitoBio/goquery"
	xhtml "golang.org/x/net/html"
)

// Selectors holds one positional rule per Notice field, relative to a board
// row. Keeping them as data localizes the layout dependency: when the board
// markup changes, extraction degrades to empty fields instead of erroring,
// and only this table needs to move.
type Selectors struct {
	Row       string
	Index     string
	Category  string
	Title     string
	Link      string
	Author    string
	ExpiredAt string
}

// AjouBoard matches the bn-list board tables used across ajou.ac.kr
// department sites.
func AjouBoard() Selectors {
	return Selectors{
		Row:       "table.board-table > tbody > tr",
		Index:     "td.b-num-box",
		Category:  "td.b-num-box + td",
		Title:     "td.b-td-left > div.b-title-box > a",
		Link:      "td.b-td-left > div.b-title-box > a",
		Author:    "td.b-no-right + td",
		ExpiredAt: "td.b-no-right + td + td",
	}
}

// FromConfig overlays non-empty config overrides on the Ajou defaults.
func FromConfig(overrides config.SelectorConfig) Selectors {
	selectors := AjouBoard()
	if overrides.Row != "" {
		selectors.Row = overrides.Row
	}
	if overrides.Index != "" {
		selectors.Index = overrides.Index
	}
	if overrides.Category != "" {
		selectors.Category = overrides.Category
	}
	if overrides.Title != "" {
		selectors.Title = overrides.Title
	}
	if overrides.Link != "" {
		selectors.Link = overrides.Link
	}
	if overrides.Author != "" {
		selectors.Author = overrides.Author
	}
	if overrides.ExpiredAt != "" {
		selectors.ExpiredAt = overrides.ExpiredAt
	}
	return selectors
}

// Parse maps every board row to a Notice, in document order. Rows whose index
// cell holds the pinned label instead of a number get the PinnedIndex
// sentinel. All string fields come back entity-escaped; renderers must not
// escape them again. The link is the base URL plus the scraped href verbatim,
// even when the href is empty or malformed.
func Parse(htmlText, baseURL string, selectors Selectors) ([]models.Notice, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlText))
	if err != nil {
		return nil, err
	}

	notices := make([]models.Notice, 0)
	doc.Find(selectors.Row).Each(func(_ int, row *goquery.Selection) {
		index, err := strconv.Atoi(selectText(row, selectors.Index))
		if err != nil {
			index = models.PinnedIndex
		}

		notices = append(notices, models.Notice{
			Index:     index,
			Category:  html.EscapeString(selectText(row, selectors.Category)),
			Title:     html.EscapeString(selectText(row, selectors.Title)),
			Author:    html.EscapeString(selectText(row, selectors.Author)),
			Link:      html.EscapeString(baseURL + selectHref(row, selectors.Link)),
			ExpiredAt: html.EscapeString(selectText(row, selectors.ExpiredAt)),
		})
	})

	return notices, nil
}

// selectText gathers every text node under the matched elements, trims each
// fragment, strips embedded newlines and tabs, drops fragments that end up
// empty, and joins the survivors with a single space.
func selectText(row *goquery.Selection, selector string) string {
	fragments := make([]string, 0)
	row.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		for _, node := range sel.Nodes {
			collectText(node, &fragments)
		}
	})
	return strings.Join(fragments, " ")
}

func collectText(node *xhtml.Node, fragments *[]string) {
	if node.Type == xhtml.TextNode {
		text := strings.TrimSpace(node.Data)
		text = strings.ReplaceAll(text, "\n", "")
		text = strings.ReplaceAll(text, "\t", "")
		if text != "" {
			*fragments = append(*fragments, text)
		}
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, fragments)
	}
}

// selectHref returns the first href among the matched elements, or "" when no
// match carries one.
func selectHref(row *goquery.Selection, selector string) string {
	href := ""
	row.Find(selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if value, exists := sel.Attr("href"); exists {
			href = value
			return false
		}
		return true
	})
	return href
}
