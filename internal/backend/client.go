package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/tunewave/tunewave-go/internal/model"
	"github.com/tunewave/tunewave-go/internal/port"
	"github.com/tunewave/tunewave-go/internal/validation"
)

// Client talks to the remote music backend over its fixed REST contract.
// Failures are returned to the caller untouched; retry policy, if any,
// belongs to the usecase layer.
type Client struct {
	baseURL string
	http    *http.Client
}

// compile-time checks: *Client must satisfy the backend ports
var (
	_ port.Authenticator   = (*Client)(nil)
	_ port.UserFetcher     = (*Client)(nil)
	_ port.SongLister      = (*Client)(nil)
	_ port.SongRater       = (*Client)(nil)
	_ port.ShortLister     = (*Client)(nil)
	_ port.PlaylistFetcher = (*Client)(nil)
	_ port.FeedFetcher     = (*Client)(nil)
	_ port.BlobFetcher     = (*Client)(nil)
)

func NewClient(baseURL string, timeout time.Duration) *Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        20,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout, Transport: transport},
	}
}

type likeRequest struct {
	UserID string `json:"userId"`
	SongID string `json:"songId"`
}

type authRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Client) Authenticate(ctx context.Context, email, password string) (port.AuthResult, error) {
	log.Printf("authenticating %q against the backend...", email)

	var out port.AuthResult
	err := c.postJSON(ctx, "/api/v1/auth/authenticate", authRequest{Email: email, Password: password}, &out)
	if err != nil {
		return port.AuthResult{}, err
	}
	return out, nil
}

func (c *Client) GetUser(ctx context.Context, userID string) (*model.User, error) {
	log.Printf("fetching profile for user #%s...", userID)

	var u model.User
	if err := c.getJSON(ctx, "/api/v1/users/"+userID, &u); err != nil {
		return nil, err
	}
	if err := validation.ValidateStruct(u); err != nil {
		return nil, fmt.Errorf("invalid user payload for #%s: %w", userID, err)
	}
	return &u, nil
}

func (c *Client) GetSongs(ctx context.Context, userID string) ([]model.Song, error) {
	log.Printf("fetching song library for user #%s...", userID)

	var songs []model.Song
	if err := c.getJSON(ctx, "/api/v1/songs/"+userID, &songs); err != nil {
		return nil, err
	}
	valid, dropped := validation.FilterValid(songs)
	if dropped > 0 {
		log.Printf("dropped %d malformed song entries from the listing", dropped)
	}
	return valid, nil
}

func (c *Client) GetStories(ctx context.Context, userID string) ([]model.Story, error) {
	log.Printf("fetching stories for user #%s...", userID)

	var stories []model.Story
	if err := c.getJSON(ctx, "/api/v1/stories/user/"+userID, &stories); err != nil {
		return nil, err
	}
	valid, dropped := validation.FilterValid(stories)
	if dropped > 0 {
		log.Printf("dropped %d malformed story entries", dropped)
	}
	return valid, nil
}

func (c *Client) GetFollowers(ctx context.Context, userID string) ([]model.Follower, error) {
	log.Printf("fetching followers for user #%s...", userID)

	var followers []model.Follower
	if err := c.getJSON(ctx, "/api/v1/followers/"+userID, &followers); err != nil {
		return nil, err
	}
	valid, dropped := validation.FilterValid(followers)
	if dropped > 0 {
		log.Printf("dropped %d malformed follower entries", dropped)
	}
	return valid, nil
}

func (c *Client) GetShorts(ctx context.Context, userID string) ([]model.Short, error) {
	log.Printf("fetching shorts feed for user #%s...", userID)

	var shorts []model.Short
	if err := c.getJSON(ctx, "/api/v1/shorts/"+userID, &shorts); err != nil {
		return nil, err
	}
	valid, dropped := validation.FilterValid(shorts)
	if dropped > 0 {
		log.Printf("dropped %d malformed short entries", dropped)
	}
	return valid, nil
}

func (c *Client) GetUserPlaylists(ctx context.Context, userID string) ([]model.Playlist, error) {
	log.Printf("fetching playlists for user #%s...", userID)

	var playlists []model.Playlist
	if err := c.getJSON(ctx, "/api/v1/playlists/"+userID, &playlists); err != nil {
		return nil, err
	}
	valid, dropped := validation.FilterValid(playlists)
	if dropped > 0 {
		log.Printf("dropped %d malformed playlist entries", dropped)
	}
	return valid, nil
}

func (c *Client) GetPlaylist(ctx context.Context, playlistID string) (*model.Playlist, error) {
	log.Printf("fetching playlist #%s...", playlistID)

	var p model.Playlist
	if err := c.getJSON(ctx, "/api/v1/playlists/"+playlistID, &p); err != nil {
		return nil, err
	}
	if err := validation.ValidateStruct(p); err != nil {
		return nil, fmt.Errorf("invalid playlist payload for #%s: %w", playlistID, err)
	}
	return &p, nil
}

func (c *Client) LikeSong(ctx context.Context, songID, userID string) error {
	log.Printf("liking song #%s as user #%s...", songID, userID)
	return c.postJSON(ctx, "/api/v1/songs/"+songID+"/like", likeRequest{UserID: userID, SongID: songID}, nil)
}

func (c *Client) DislikeSong(ctx context.Context, songID, userID string) error {
	log.Printf("disliking song #%s as user #%s...", songID, userID)
	return c.postJSON(ctx, "/api/v1/songs/"+songID+"/dislike", likeRequest{UserID: userID, SongID: songID}, nil)
}

// FetchBlob streams a media blob from an absolute URL. The caller owns the
// returned body.
func (c *Client) FetchBlob(ctx context.Context, url string) (io.ReadCloser, int64, error) {
	log.Printf("fetching blob %q...", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, 0, statusErr(resp.StatusCode)
	}
	return resp.Body, resp.ContentLength, nil
}

// --- plumbing ---

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return statusErr(resp.StatusCode)
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", req.URL.Path, err)
	}
	return nil
}

func statusErr(code int) error {
	switch code {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusInternalServerError:
		return ErrInternal
	}
	return fmt.Errorf("backend: unexpected status %d", code)
}
