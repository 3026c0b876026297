package api

import (
	"log"
	"net/http"

	"github.com/tunewave/tunewave-go/internal/model"
	"github.com/tunewave/tunewave-go/internal/port"
)

type ShortListResponse struct {
	Shorts []model.Short `json:"shorts"`
}

func GetShortsHandler(svc port.ShortsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shorts, err := svc.Shorts(r.Context())
		if err != nil {
			WriteError(w, http.StatusBadGateway, "could not fetch shorts", err)
			return
		}

		RespondJSON(w, http.StatusOK, ShortListResponse{Shorts: shorts})
		log.Printf("✅  Returned %d shorts", len(shorts))
	}
}
