package models

// PinnedIndex marks a board row that carries the pinned label instead of a
// sequence number. Pinned notices never take part in watermark comparison.
const PinnedIndex = -1

type Notice struct {
	Index     int    `json:"index"`
	Category  string `json:"category"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Link      string `json:"link"`
	ExpiredAt string `json:"expiredAt"`
}

func (n Notice) Pinned() bool {
	return n.Index == PinnedIndex
}
