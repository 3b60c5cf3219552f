package services

import (
	"context"
	"time"
)

type ChatService interface {
	Ask(ctx context.Context, resumeText, message string) (string, error)
}

type chatService struct {
	client *apiClient
}

func NewChatService(baseURL string, timeout time.Duration) ChatService {
	return &chatService{client: newAPIClient(baseURL, timeout)}
}

// Ask implements ChatService.
func (s *chatService) Ask(ctx context.Context, resumeText, message string) (string, error) {
	req := struct {
		Text    string `json:"text"`
		Message string `json:"message"`
	}{Text: resumeText, Message: message}

	var resp struct {
		Response *string `json:"response"`
		Answer   *string `json:"answer"`
	}
	if err := s.client.postJSON(ctx, "chat", "/chat", req, &resp); err != nil {
		return "", err
	}

	switch {
	case resp.Response != nil:
		return *resp.Response, nil
	case resp.Answer != nil:
		return *resp.Answer, nil
	default:
		return MsgNoAnswer, nil
	}
}
