package audio

import (
	"context"
	"io"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

type ITranscriber interface {
	Transcribe(ctx context.Context, filename string, r io.Reader) (string, error)
}

type transcriber struct {
	client *openai.Client
}

func New() ITranscriber {
	client := openai.NewClient(os.Getenv("OPENAI_API_KEY"))
	return &transcriber{client: client}
}

func (t *transcriber) Transcribe(ctx context.Context, filename string, r io.Reader) (string, error) {
	req := openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: filename,
		Reader:   r,
		Language: "en",
	}

	resp, err := t.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", err
	}

	return resp.Text, nil
}
