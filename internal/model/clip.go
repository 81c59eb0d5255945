package model

import "net/url"

const (
	ClipTypePhoto = "photo"
	ClipTypeVideo = "video"
	ClipTypeAudio = "audio"
)

type Clip struct {
	ID          string  `db:"id" json:"id"`
	Type        string  `db:"type" json:"type"`
	Title       *string `db:"title" json:"title"`
	Description *string `db:"description" json:"description"`
	Caption     *string `db:"caption" json:"caption"`
	MediaKey    string  `db:"media_key" json:"media_key"`
	UserID      *string `db:"user_id" json:"user_id"`
	ExtraJSON   *string `db:"extra_json" json:"extra_json"`
	LikesTotal  int64   `db:"likes_total" json:"likes_total"`
	SharesTotal int64   `db:"shares_total" json:"shares_total"`
	CreatedAt   int64   `db:"created_at" json:"created_at"` // milliseconds since epoch
}

// ClipView is the denormalized shape returned to clients: the stored row plus
// the media URL derived from the key. The URL is never persisted.
type ClipView struct {
	Clip
	MediaURL string `json:"media_url"`
}

// MediaURL derives the proxy URL for a media key. Pure function of the key so
// the stored row and the serving path can never drift apart.
func MediaURL(mediaKey string) string {
	return "/media/" + url.PathEscape(mediaKey)
}

func (c *Clip) View() *ClipView {
	return &ClipView{Clip: *c, MediaURL: MediaURL(c.MediaKey)}
}
