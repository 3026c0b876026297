package api

import (
	"net/http"

	"github.com/tunewave/tunewave-go/internal/model"
	"github.com/tunewave/tunewave-go/internal/port"
)

type StoryListResponse struct {
	Stories []model.Story `json:"stories"`
}

type FollowerListResponse struct {
	Followers []model.Follower `json:"followers"`
}

func GetStoriesHandler(svc port.FeedProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stories, err := svc.Stories(r.Context())
		if err != nil {
			WriteError(w, http.StatusBadGateway, "could not fetch stories", err)
			return
		}
		RespondJSON(w, http.StatusOK, StoryListResponse{Stories: stories})
	}
}

func GetFollowersHandler(svc port.FeedProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		followers, err := svc.Followers(r.Context())
		if err != nil {
			WriteError(w, http.StatusBadGateway, "could not fetch followers", err)
			return
		}
		RespondJSON(w, http.StatusOK, FollowerListResponse{Followers: followers})
	}
}
