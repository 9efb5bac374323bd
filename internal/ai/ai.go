// Package ai talks to the external text-generation service used to create
// and explain vocabulary.
package ai

import "context"

// BatchSize is the number of entries requested per generation call
const BatchSize = 5

// GeneratedEntry is one vocabulary item produced by the model
type GeneratedEntry struct {
	Word    string `json:"word"`
	Meaning string `json:"meaning"`
	Example string `json:"example"`
}

// Generator produces vocabulary for a topic and explains single words
type Generator interface {
	GenerateEntries(ctx context.Context, topic string, count int) ([]GeneratedEntry, error)
	ExplainWord(ctx context.Context, word string) (string, error)
}
