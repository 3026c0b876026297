package model

// Playlist is a backend playlist plus its member-song summaries.
// Songs is only populated when fetching a single playlist by id.
type Playlist struct {
	ID                string         `json:"id" validate:"required"`
	Name              string         `json:"name" validate:"required"`
	UserID            string         `json:"userId"`
	CoverURL          string         `json:"coverUrl" validate:"omitempty,url"`
	IsDefaultLikes    bool           `json:"isDefaultLikes"`
	IsDefaultDislikes bool           `json:"isDefaultDislikes"`
	Songs             []PlaylistSong `json:"songs,omitempty"`
}

type PlaylistSong struct {
	SongID       string `json:"songId" validate:"required"`
	SongTitle    string `json:"songTitle"`
	SongArtist   string `json:"songArtist"`
	SongCoverURL string `json:"songCoverUrl"`
}
