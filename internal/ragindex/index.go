// Package ragindex holds the vector-index skeleton around Pinecone:
// index creation, upsert, and query, plus embedding generation. Nothing in
// the request path uses it yet; there is no retrieval orchestration.
package ragindex

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/pinecone-io/go-pinecone/v3/pinecone"
	"go.uber.org/zap"
)

const (
	// IndexName is the serverless index holding goal reflections.
	IndexName = "goal-tracker"
	// EmbeddingDimension matches the embedding model's output size.
	EmbeddingDimension = 1536
	// EmbeddingModel generates the vectors stored in the index.
	EmbeddingModel = openai.EmbeddingModelTextEmbeddingAda002
)

// Index wraps the Pinecone client and the embedding client.
type Index struct {
	pc     *pinecone.Client
	openai openai.Client
	logger *zap.Logger
}

// New creates the vector index wrapper.
func New(pineconeAPIKey, openaiAPIKey string, logger *zap.Logger) (*Index, error) {
	pc, err := pinecone.NewClient(pinecone.NewClientParams{ApiKey: pineconeAPIKey})
	if err != nil {
		return nil, fmt.Errorf("creating pinecone client: %w", err)
	}

	client := openai.NewClient(option.WithAPIKey(openaiAPIKey))

	return &Index{pc: pc, openai: client, logger: logger}, nil
}

// EnsureIndex creates the serverless index if it does not exist and
// returns its host.
func (i *Index) EnsureIndex(ctx context.Context) (string, error) {
	idx, err := i.pc.DescribeIndex(ctx, IndexName)
	if err == nil {
		return idx.Host, nil
	}

	dimension := int32(EmbeddingDimension)
	metric := pinecone.Cosine
	idx, err = i.pc.CreateServerlessIndex(ctx, &pinecone.CreateServerlessIndexRequest{
		Name:      IndexName,
		Dimension: &dimension,
		Metric:    &metric,
		Cloud:     pinecone.Gcp,
		Region:    "europe-west4",
	})
	if err != nil {
		return "", fmt.Errorf("creating index %s: %w", IndexName, err)
	}

	if i.logger != nil {
		i.logger.Info("vector_index_created",
			zap.String("index", IndexName),
			zap.Int("dimension", EmbeddingDimension),
		)
	}
	return idx.Host, nil
}

// Upsert writes one embedded text into the index.
func (i *Index) Upsert(ctx context.Context, host, id, text string) error {
	values, err := i.Embed(ctx, text)
	if err != nil {
		return err
	}

	conn, err := i.pc.Index(pinecone.NewIndexConnParams{Host: host})
	if err != nil {
		return fmt.Errorf("connecting to index %s: %w", IndexName, err)
	}

	_, err = conn.UpsertVectors(ctx, []*pinecone.Vector{
		{Id: id, Values: &values},
	})
	if err != nil {
		return fmt.Errorf("upserting vector %s: %w", id, err)
	}
	return nil
}

// Query embeds the query text and returns the ids of the closest matches.
func (i *Index) Query(ctx context.Context, host, query string, topK uint32) ([]string, error) {
	values, err := i.Embed(ctx, query)
	if err != nil {
		return nil, err
	}

	conn, err := i.pc.Index(pinecone.NewIndexConnParams{Host: host})
	if err != nil {
		return nil, fmt.Errorf("connecting to index %s: %w", IndexName, err)
	}

	resp, err := conn.QueryByVectorValues(ctx, &pinecone.QueryByVectorValuesRequest{
		Vector: values,
		TopK:   topK,
	})
	if err != nil {
		return nil, fmt.Errorf("querying index %s: %w", IndexName, err)
	}

	ids := make([]string, 0, len(resp.Matches))
	for _, match := range resp.Matches {
		if match.Vector != nil {
			ids = append(ids, match.Vector.Id)
		}
	}
	return ids, nil
}

// Embed generates the embedding vector for a text.
func (i *Index) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := i.openai.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Input: openai.EmbeddingNewParamsInputUnion{OfString: openai.String(text)},
		Model: EmbeddingModel,
	})
	if err != nil {
		return nil, fmt.Errorf("embedding text: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("no embedding in response")
	}

	values := make([]float32, len(resp.Data[0].Embedding))
	for idx, v := range resp.Data[0].Embedding {
		values[idx] = float32(v)
	}
	return values, nil
}
