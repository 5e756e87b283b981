package advisor

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Source is a web page the search answer is grounded on.
type Source struct {
	URI   string
	Title string
}

// SearchResult is the outcome of an investment search.
type SearchResult struct {
	Text    string
	Sources []Source
}

// SearchInvestments answers a free-text investment question grounded in Google
// Search results. Sources are deduplicated by URI, keeping the first
// occurrence.
func SearchInvestments(ctx context.Context, client *genai.Client, query string) (*SearchResult, error) {
	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
	}
	resp, err := client.Models.GenerateContent(ctx, Model, genai.Text(query), config)
	if err != nil {
		return nil, fmt.Errorf("investment search failed: %w", err)
	}

	result := &SearchResult{Text: resp.Text()}
	if len(resp.Candidates) > 0 && resp.Candidates[0].GroundingMetadata != nil {
		result.Sources = collectSources(resp.Candidates[0].GroundingMetadata.GroundingChunks)
	}
	return result, nil
}

// collectSources extracts the web sources of the grounding chunks, dropping
// chunks without a URI or title and duplicate URIs (first one wins).
func collectSources(chunks []*genai.GroundingChunk) []Source {
	seen := make(map[string]bool)
	var sources []Source
	for _, chunk := range chunks {
		if chunk == nil || chunk.Web == nil || chunk.Web.URI == "" || chunk.Web.Title == "" {
			continue
		}
		if seen[chunk.Web.URI] {
			continue
		}
		seen[chunk.Web.URI] = true
		sources = append(sources, Source{URI: chunk.Web.URI, Title: chunk.Web.Title})
	}
	return sources
}
