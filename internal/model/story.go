package model

// Story is a social feed story attached to a user and optionally a song.
type Story struct {
	ID            string `json:"id" validate:"required"`
	UserID        string `json:"userId" validate:"required"`
	UserNickname  string `json:"userNickname"`
	UserAvatarURL string `json:"userAvatarUrl"`
	ImageURL      string `json:"imageUrl" validate:"omitempty,url"`
	PreviewURL    string `json:"previewUrl" validate:"omitempty,url"`
	StoryType     string `json:"storyType"`
	SongID        string `json:"songId"`
	SongTitle     string `json:"songTitle"`
	SongArtist    string `json:"songArtist"`
	Caption       string `json:"caption"`
	Location      string `json:"location"`
	ViewsCount    int64  `json:"viewsCount"`
	CreatedAt     string `json:"createdAt"`
	ExpiresAt     string `json:"expiresAt"`
	IsExpired     bool   `json:"isExpired"`
}

// Follower is one entry of a user's followers listing.
type Follower struct {
	FollowerID        string `json:"followerId" validate:"required"`
	FollowerEmail     string `json:"followerEmail"`
	FollowerNickname  string `json:"followerNickname"`
	FollowerAvatarURL string `json:"followerAvatarUrl"`
	FollowedAt        string `json:"followedAt"`
}
