// Package advisor holds the AI collaborator boundary: a chat advisor grounded
// in the user's transaction history, and a web-grounded investment search.
// Nothing in this package reads or writes ledger state.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"os"

	"google.golang.org/genai"
)

// Model is the Gemini model used for both the advisor chat and the
// investment search.
const Model = "gemini-2.5-flash"

// Greeting opens every advisor conversation.
const Greeting = "Hello! I am Finley, your personal AI financial advisor. How can I help you understand your finances today?"

const systemInstruction = `You are 'Finley', a friendly and insightful AI financial advisor for the TSF-FinGrow app. Your goal is to provide clear, actionable, and encouraging financial advice based on the user's transaction data. Analyze their spending, identify trends, and help them understand their financial habits to make smarter decisions. Be positive, empathetic, and avoid judgmental language. Your tone should be supportive, like a knowledgeable friend. Do not provide professional, legally-binding financial advice, but rather educational guidance and suggestions. When asked, analyze the provided JSON data of transactions to answer user questions.`

// ErrUnavailable reports that the AI features cannot be used because no API
// key is configured.
var ErrUnavailable = errors.New("AI advisor is unavailable: set GEMINI_API_KEY to enable it")

// NewClient creates a Gemini client from the ambient configuration. It fails
// with ErrUnavailable when no API key is present in the environment.
func NewClient(ctx context.Context) (*genai.Client, error) {
	if os.Getenv("GEMINI_API_KEY") == "" && os.Getenv("GOOGLE_API_KEY") == "" {
		return nil, ErrUnavailable
	}
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create Gemini client: %w", err)
	}
	return client, nil
}

// Advisor is a chat session with Finley. The transaction context is rebuilt
// by the caller and prepended to every question, so the advisor always sees
// the latest ledger content.
type Advisor struct {
	chat *genai.Chat
}

// NewAdvisor opens a fresh chat session.
func NewAdvisor(ctx context.Context, client *genai.Client) (*Advisor, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
	}
	chat, err := client.Chats.Create(ctx, Model, config, nil)
	if err != nil {
		return nil, fmt.Errorf("could not start advisor chat: %w", err)
	}
	return &Advisor{chat: chat}, nil
}

// Ask sends a question together with the transaction context and streams the
// reply. Each chunk of text is handed to onChunk as it arrives; the full reply
// is returned once the stream ends.
func (a *Advisor) Ask(ctx context.Context, transactionsContext, question string, onChunk func(string)) (string, error) {
	prompt := fmt.Sprintf("%s\n\nUser question: %s", transactionsContext, question)

	var reply string
	for resp, err := range a.chat.SendStream(ctx, &genai.Part{Text: prompt}) {
		if err != nil {
			return reply, fmt.Errorf("advisor chat failed: %w", err)
		}
		chunk := resp.Text()
		if chunk == "" {
			continue
		}
		reply += chunk
		if onChunk != nil {
			onChunk(chunk)
		}
	}
	return reply, nil
}
