package notifier

import (
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"MediaNotifier/internal/config"
	"MediaNotifier/internal/extractor"
	"MediaNotifier/internal/fetcher"
	"MediaNotifier/internal/renderer"
	"MediaNotifier/internal/watermark"
	"MediaNotifier/internal/webhook"
	"MediaNotifier/models"
)

// Notifier runs one fetch-extract-render pass against the board. Diag carries
// the soft diagnostics the scheduler watches for on stderr; Sent and Advance
// are optional audit loggers.
type Notifier struct {
	Config  *config.Config
	Store   watermark.Store
	Out     io.Writer
	Diag    *log.Logger
	Sent    *log.Logger
	Advance *log.Logger
}

// Run fetches the board once and compares the newest non-pinned index against
// previousIndex. When nothing changed it reports on Diag and leaves the
// watermark alone. Otherwise it renders the notice list in the requested mode
// to Out, posts newly seen notices to the webhook, and saves the new
// watermark. An unrecognized mode is a diagnostic, not an error; the
// watermark still advances.
func (n *Notifier) Run(previousIndex int, mode string) error {
	htmlText, err := fetcher.Fetch(n.Config.Board)
	if err != nil {
		return err
	}

	selectors := extractor.FromConfig(n.Config.Selectors)
	notices, err := extractor.Parse(htmlText, n.Config.Board.BaseURL, selectors)
	if err != nil {
		return err
	}

	latestIndex, err := latestIndex(notices)
	if err != nil {
		return err
	}

	if latestIndex == previousIndex {
		n.Diag.Println("new notices not found")
		return nil
	}

	switch mode {
	case renderer.XML:
		fmt.Fprintln(n.Out, renderer.ComposeXML(notices, time.Now().UTC()))
	case renderer.Markdown:
		fmt.Fprintln(n.Out, renderer.ComposeMarkdown(notices))
	case renderer.CommitMessage:
		fmt.Fprintln(n.Out, renderer.ComposeCommitMessage(notices, latestIndex-previousIndex))
	default:
		n.Diag.Printf("unknown mode '%s'", mode)
	}

	n.sendWebhooks(notices, previousIndex)

	err = n.Store.Save(latestIndex)
	if err != nil {
		return err
	}
	if n.Advance != nil {
		n.Advance.Println("latestIndex =>", latestIndex)
	}
	return nil
}

// latestIndex is the index of the first non-pinned notice; the board lists
// numbered rows newest first, so the first one is the maximum.
func latestIndex(notices []models.Notice) (int, error) {
	for _, notice := range notices {
		if !notice.Pinned() {
			return notice.Index, nil
		}
	}
	return 0, errors.New("no non-pinned notice found on the board page")
}

// sendWebhooks delivers every newly seen numbered notice. Delivery failures
// are logged and swallowed; the watermark must advance either way.
func (n *Notifier) sendWebhooks(notices []models.Notice, previousIndex int) {
	endpoint := n.Config.Webhook.Endpoint
	if endpoint == "" {
		return
	}

	for _, notice := range notices {
		if notice.Pinned() || notice.Index <= previousIndex {
			continue
		}
		body, err := webhook.Send(endpoint, notice)
		if err != nil {
			n.Diag.Println("webhook delivery failed:", err)
			continue
		}
		if n.Sent != nil {
			n.Sent.Println("notice =>", notice, "response =>", body)
		}
	}
}
