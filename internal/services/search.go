package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"karthika_back_end/internal/models"
)

const productIndex = "catalog_products"

// Search mirrors the catalog into Elasticsearch. Indexing is fire-and-forget
// from the write path; the list endpoints fall back to an in-memory substring
// scan when the cluster is down, so a dead index never breaks the shop.
type Search struct {
	client *elasticsearch.Client
}

func NewSearch(client *elasticsearch.Client) *Search {
	return &Search{client: client}
}

func (s *Search) Available() bool {
	return s != nil && s.client != nil
}

type indexedProduct struct {
	Kind string `json:"kind"`
	models.Product
}

// IndexProduct upserts one product document. Called in a goroutine after
// catalog writes; failures are logged, never surfaced.
func (s *Search) IndexProduct(p models.Product) {
	if !s.Available() {
		return
	}

	data, _ := json.Marshal(indexedProduct{Kind: p.Kind, Product: p})
	req := esapi.IndexRequest{
		Index:      productIndex,
		DocumentID: p.Kind + ":" + p.ID.String(),
		Body:       bytes.NewReader(data),
		Refresh:    "true",
	}

	res, err := req.Do(context.Background(), s.client)
	if err != nil {
		log.Println("❌ Elasticsearch index request failed:", err)
		return
	}
	defer res.Body.Close()

	if res.IsError() {
		log.Printf("⚠️ Elasticsearch rejected %s: %s", p.Name, res.String())
	}
}

// RemoveProduct drops the document after a catalog delete.
func (s *Search) RemoveProduct(kind string, id string) {
	if !s.Available() {
		return
	}
	req := esapi.DeleteRequest{Index: productIndex, DocumentID: kind + ":" + id}
	res, err := req.Do(context.Background(), s.client)
	if err != nil {
		log.Println("❌ Elasticsearch delete request failed:", err)
		return
	}
	res.Body.Close()
}

// SearchProducts runs a kind-scoped multi_match over the searchable text
// fields and returns the matching product ids.
func (s *Search) SearchProducts(kind, query string) ([]string, error) {
	if !s.Available() {
		return nil, errors.New("elasticsearch not initialized")
	}

	var buf bytes.Buffer
	q := map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"filter": map[string]interface{}{
					"term": map[string]interface{}{"kind": kind},
				},
				"must": map[string]interface{}{
					"multi_match": map[string]interface{}{
						"query":  query,
						"fields": []string{"name", "description", "brand", "targetAudience"},
					},
				},
			},
		},
		"size": 500,
	}
	if err := json.NewEncoder(&buf).Encode(q); err != nil {
		return nil, fmt.Errorf("query encoding: %w", err)
	}

	req := esapi.SearchRequest{Index: []string{productIndex}, Body: &buf}
	res, err := req.Do(context.Background(), s.client)
	if err != nil {
		return nil, fmt.Errorf("elasticsearch request: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, errors.New("index missing or empty")
	}

	var r struct {
		Hits struct {
			Hits []struct {
				Source struct {
					ID string `json:"id"`
				} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("response decoding: %w", err)
	}

	ids := make([]string, 0, len(r.Hits.Hits))
	for _, hit := range r.Hits.Hits {
		ids = append(ids, hit.Source.ID)
	}
	return ids, nil
}
