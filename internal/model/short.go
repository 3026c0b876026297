package model

const (
	ShortTypeSong  = "SONG"
	ShortTypeVideo = "SHORT_VIDEO"
)

// Short is a short-form feed item: either a song sample or a short video clip.
type Short struct {
	ID            string `json:"id" validate:"required"`
	Title         string `json:"title"`
	Artist        string `json:"artist"`
	Cover         string `json:"cover" validate:"omitempty,url"`
	AudioURL      string `json:"audio_url" validate:"omitempty,url"`
	VideoURL      string `json:"video_url" validate:"omitempty,url"`
	Type          string `json:"type" validate:"required,oneof=SONG SHORT_VIDEO"`
	IsLiked       bool   `json:"isLiked"`
	IsDisliked    bool   `json:"isDisliked"`
	LikesCount    int64  `json:"likesCount"`
	DislikesCount int64  `json:"dislikesCount"`
}

// IsVideo reports whether the short plays its video stream rather than audio.
func (s Short) IsVideo() bool {
	return s.Type == ShortTypeVideo
}

// MediaURL returns the URL the player should load: the video stream for
// SHORT_VIDEO items, the audio stream otherwise. Empty when neither is set.
func (s Short) MediaURL() string {
	if s.IsVideo() && s.VideoURL != "" {
		return s.VideoURL
	}
	return s.AudioURL
}
