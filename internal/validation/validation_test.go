package validation

import (
	"encoding/json"
	"testing"

	"github.com/tunewave/tunewave-go/internal/model"
)

func TestValidateStructAndErrorsToJson(t *testing.T) {
	type Input struct {
		Email string `validate:"required,email"  json:"email"`
		Tags  []int  `validate:"min=1,dive,gt=0" json:"tags"`
	}

	tests := []struct {
		name        string
		in          Input
		wantErr     bool
		wantJsonMap map[string]string
	}{
		{
			name:    "success",
			in:      Input{Email: "a@b.com", Tags: []int{1, 2, 3}},
			wantErr: false,
		},
		{
			name:    "missing email",
			in:      Input{Email: "", Tags: []int{1}},
			wantErr: true,
			wantJsonMap: map[string]string{
				"email": "required",
			},
		},
		{
			name:    "invalid email and empty tags",
			in:      Input{Email: "not-an-email", Tags: []int{}},
			wantErr: true,
			wantJsonMap: map[string]string{
				"email": "email",
				"tags":  "min",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateStruct() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}

			// convert and unmarshal for comparison
			js, jerr := ErrorsToJson(err)
			if jerr != nil {
				t.Fatalf("ErrorsToJson() error = %v", jerr)
			}
			var got map[string]string
			if err := json.Unmarshal([]byte(js), &got); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}
			for field, tag := range tt.wantJsonMap {
				if got[field] != tag {
					t.Errorf("field %q: got %q, want %q", field, got[field], tag)
				}
			}
		})
	}
}

func TestFilterValid(t *testing.T) {
	songs := []model.Song{
		{ID: "s1", Title: "First", AudioURL: "https://cdn.example.com/1.mp3"},
		{ID: "", Title: "no id"},
		{ID: "s3", Title: "Third", AudioURL: "not a url"},
		{ID: "s4", Title: "Fourth"},
	}

	valid, dropped := FilterValid(songs)
	if dropped != 2 {
		t.Errorf("dropped = %d, want 2", dropped)
	}
	if len(valid) != 2 {
		t.Fatalf("len(valid) = %d, want 2", len(valid))
	}
	if valid[0].ID != "s1" || valid[1].ID != "s4" {
		t.Errorf("kept wrong entries: %v", valid)
	}
}

func TestFilterValid_AllValid(t *testing.T) {
	shorts := []model.Short{
		{ID: "sh1", Type: model.ShortTypeSong, AudioURL: "https://cdn.example.com/a.mp3"},
		{ID: "sh2", Type: model.ShortTypeVideo, VideoURL: "https://cdn.example.com/b.mp4"},
	}
	valid, dropped := FilterValid(shorts)
	if dropped != 0 {
		t.Errorf("dropped = %d, want 0", dropped)
	}
	if len(valid) != 2 {
		t.Errorf("len(valid) = %d, want 2", len(valid))
	}
}

func TestFilterValid_RejectsUnknownShortType(t *testing.T) {
	shorts := []model.Short{
		{ID: "sh1", Type: "REEL"},
	}
	valid, dropped := FilterValid(shorts)
	if dropped != 1 || len(valid) != 0 {
		t.Errorf("want everything dropped, got valid=%v dropped=%d", valid, dropped)
	}
}
