package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ayush6624/go-chatgpt"
)

type GptRepository interface {
	ExplainAllocation(ctx context.Context, riskTolerance string, allocation map[string]float64) (string, error)
}

type gptRepositoryHandler struct {
	GptClient *chatgpt.Client
}

func NewGptRepository(apiKey string) (GptRepository, error) {
	client, err := chatgpt.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to construct gpt client: %w", err)
	}

	return gptRepositoryHandler{
		GptClient: client,
	}, nil
}

const explainAllocationPrompt = `
You are writing a short note for a retail investor explaining a model portfolio allocation produced by a robo-advisor. You will be given the investor's risk tolerance and the target allocation as a JSON object mapping ticker symbols to fractions of the portfolio.

Write 2-3 plain-English sentences explaining why this mix suits that risk tolerance. Do not give personalized financial advice, do not mention taxes, and do not promise returns.
`

func (h gptRepositoryHandler) ExplainAllocation(ctx context.Context, riskTolerance string, allocation map[string]float64) (string, error) {
	allocationJson, err := json.Marshal(allocation)
	if err != nil {
		return "", fmt.Errorf("failed to marshal allocation: %w", err)
	}

	res, err := h.GptClient.Send(ctx, &chatgpt.ChatCompletionRequest{
		Model: chatgpt.GPT35Turbo,
		Messages: []chatgpt.ChatMessage{
			{
				Role:    chatgpt.ChatGPTModelRoleSystem,
				Content: explainAllocationPrompt,
			},
			{
				Role:    chatgpt.ChatGPTModelRoleUser,
				Content: fmt.Sprintf("risk tolerance: %s\nallocation: %s", riskTolerance, allocationJson),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to get allocation explanation: %w", err)
	}
	if len(res.Choices) == 0 {
		return "", fmt.Errorf("gpt returned no choices")
	}

	return res.Choices[0].Message.Content, nil
}
