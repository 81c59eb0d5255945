package model

// LikeRecord is the per (clip, user) like tally and the source of truth for the
// like cap. Rows only exist while count > 0; unliking back to zero deletes the
// row rather than keeping a zero tally around.
type LikeRecord struct {
	ClipID    string `db:"clip_id" json:"clip_id"`
	UserID    string `db:"user_id" json:"user_id"`
	Count     int    `db:"count" json:"count"`
	CreatedAt int64  `db:"created_at" json:"created_at"`
	UpdatedAt int64  `db:"updated_at" json:"updated_at"`
}

// LikeResult reports the outcome of a like or unlike call. Cap and no-op
// rejections are expected business outcomes, not errors.
type LikeResult struct {
	Allowed    bool   `json:"allowed"`
	Reason     string `json:"reason,omitempty"`
	LikesTotal int64  `json:"likes_total"`
	UserLikes  int    `json:"user_likes"`
}

const (
	LikeReasonMaxReached   = "max_reached"
	LikeReasonNoneToRemove = "none_to_remove"
)
