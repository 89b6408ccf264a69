package chat

import (
	"ShopMate/pkg/response"
	"net/http"
)

var (
	ErrInvalidAudioFile    = response.NewError(http.StatusBadRequest, "invalid audio file type")
	ErrAudioFileTooLarge   = response.NewError(http.StatusBadRequest, "audio file too large")
	ErrTranscriptionFailed = response.NewError(http.StatusBadGateway, "failed to transcribe audio")
	ErrEmptyTranscript     = response.NewError(http.StatusUnprocessableEntity, "could not recognize any speech in the audio")
)
