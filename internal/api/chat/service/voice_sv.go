package chatService

import (
	"errors"
	"strings"

	"ShopMate/internal/api/chat"
	"ShopMate/internal/entity"
	contextPkg "ShopMate/pkg/context"
	utilsPkg "ShopMate/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// ProcessVoiceMessage accepts an uploaded voice note, stores it, transcribes
// it, and runs the transcript through the same interpreter as a typed turn.
// Only speech-to-text goes through an external service; interpretation itself
// stays rule-based.
func (s *chatService) ProcessVoiceMessage(ctx context.Context, user entity.UserLoginData, req chat.VoiceMessageRequest) (*chat.VoiceChatResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if err := s.utils.ValidateAudioFile(req.AudioFile); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid voice upload")
		if errors.Is(err, utilsPkg.ErrFileTooLarge) {
			return nil, chat.ErrAudioFileTooLarge
		}
		return nil, chat.ErrInvalidAudioFile
	}

	audioURL := ""
	if s.s3Client != nil {
		url, err := s.s3Client.UploadFile(req.AudioFile)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to store voice note, continuing without archive")
		} else {
			audioURL = url
		}
	}

	src, err := req.AudioFile.Open()
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to open uploaded audio")
		return nil, chat.ErrTranscriptionFailed
	}
	defer src.Close()

	transcript, err := s.transcriber.Transcribe(ctx, req.AudioFile.Filename, src)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Transcription failed")
		return nil, chat.ErrTranscriptionFailed
	}
	if strings.TrimSpace(transcript) == "" {
		return nil, chat.ErrEmptyTranscript
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    user.ID,
		"transcript": transcript,
	}).Info("Voice note transcribed")

	reply, err := s.SendMessage(ctx, user, chat.SendMessageRequest{Message: transcript})
	if err != nil {
		return nil, err
	}

	return &chat.VoiceChatResponse{
		Transcript: transcript,
		AudioURL:   audioURL,
		Reply:      reply.Reply,
		Intent:     reply.Intent,
		Results:    reply.Results,
	}, nil
}
