package chat

import (
	"mime/multipart"

	"ShopMate/internal/entity"
)

type SendMessageRequest struct {
	Message string `json:"message" validate:"required,min=1,max=500"`
}

// ChatResponse carries the assistant reply plus an optional result set.
// Results is nil -- absent from the JSON body -- whenever the intent produced
// no catalog rows; an empty-but-present list is never emitted.
type ChatResponse struct {
	Reply   string           `json:"reply"`
	Intent  string           `json:"intent"`
	Results []entity.Product `json:"results,omitempty"`
}

type VoiceMessageRequest struct {
	AudioFile *multipart.FileHeader `json:"audio_file" validate:"required"`
}

type VoiceChatResponse struct {
	Transcript string           `json:"transcript"`
	AudioURL   string           `json:"audio_url,omitempty"`
	Reply      string           `json:"reply"`
	Intent     string           `json:"intent"`
	Results    []entity.Product `json:"results,omitempty"`
}

type StatsResponse struct {
	RecommendationsServed int64 `json:"recommendations_served"`
}
