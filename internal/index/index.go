// Package index provides the semantic index over catalog chunks. It is built
// once at startup and is read-only afterwards, so Search is safe to call from
// concurrent requests.
package index

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"

	"github.com/philippgille/chromem-go"
	"github.com/tmc/langchaingo/embeddings"
)

const collectionName = "catalog"

// Index wraps an in-memory chromem-go collection holding one embedded
// document per catalog chunk.
type Index struct {
	collection *chromem.Collection
	embedder   embeddings.Embedder
	chunks     []string
}

// Build embeds every chunk and assembles the similarity index. This is the
// only initialization path; a failure here means the process cannot serve.
func Build(ctx context.Context, embedder embeddings.Embedder, chunks []string) (*Index, error) {
	if len(chunks) == 0 {
		return nil, errors.New("no chunks to index")
	}

	vectors, err := embedder.EmbedDocuments(ctx, chunks)
	if err != nil {
		return nil, fmt.Errorf("embedding chunks: %w", err)
	}
	if len(vectors) != len(chunks) {
		return nil, fmt.Errorf("embedder returned %d vectors for %d chunks", len(vectors), len(chunks))
	}

	db := chromem.NewDB()
	collection, err := db.GetOrCreateCollection(collectionName, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("creating collection: %w", err)
	}

	// Zero-padded IDs encode insertion order so lexical ID order can break
	// similarity ties.
	docs := make([]chromem.Document, len(chunks))
	for i, chunk := range chunks {
		docs[i] = chromem.Document{
			ID:        fmt.Sprintf("chunk-%06d", i),
			Content:   chunk,
			Embedding: vectors[i],
		}
	}
	if err := collection.AddDocuments(ctx, docs, runtime.NumCPU()); err != nil {
		return nil, fmt.Errorf("adding documents: %w", err)
	}

	return &Index{collection: collection, embedder: embedder, chunks: chunks}, nil
}

// Search returns up to k chunks ranked by descending similarity to the query.
// Ties are broken by original insertion order.
func (ix *Index) Search(ctx context.Context, query string, k int) ([]string, error) {
	if k <= 0 {
		return nil, nil
	}
	n := ix.collection.Count()
	if n == 0 {
		return nil, nil
	}

	queryVector, err := ix.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	// Rank the whole collection: chromem keeps only NResults internally, so
	// chunks tied at a k cutoff would survive it in arbitrary order. Ties are
	// resolved here, then the result is truncated to k.
	results, err := ix.collection.QueryWithOptions(ctx, chromem.QueryOptions{
		QueryEmbedding: queryVector,
		NResults:       n,
	})
	if err != nil {
		return nil, fmt.Errorf("similarity search: %w", err)
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Similarity != results[j].Similarity {
			return results[i].Similarity > results[j].Similarity
		}
		return results[i].ID < results[j].ID
	})
	if k < len(results) {
		results = results[:k]
	}

	chunks := make([]string, len(results))
	for i, r := range results {
		chunks[i] = r.Content
	}
	return chunks, nil
}

// Len reports the number of indexed chunks.
func (ix *Index) Len() int {
	return len(ix.chunks)
}
