package model

// Song is an immutable snapshot of a library track as served by the backend.
// Like/dislike mutations go through the API and come back via a full re-fetch.
type Song struct {
	ID            string `json:"id" validate:"required"`
	Title         string `json:"title" validate:"required"`
	Artist        string `json:"artist"`
	AudioURL      string `json:"audio_url" validate:"omitempty,url"`
	Cover         string `json:"cover" validate:"omitempty,url"`
	VideoURL      string `json:"video_url,omitempty" validate:"omitempty,url"`
	IsLiked       bool   `json:"isLiked"`
	IsDisliked    bool   `json:"isDisliked"`
	LikesCount    int64  `json:"likesCount"`
	DislikesCount int64  `json:"dislikesCount"`
}

// Playable reports whether the song carries a streamable media URL.
func (s Song) Playable() bool {
	return s.AudioURL != ""
}
