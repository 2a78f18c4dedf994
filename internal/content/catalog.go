package content

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/example/physquest/pkg/models"
)

//go:embed data/catalog.json
var catalogData embed.FS

// KeywordRule pairs a set of required substrings with a canned answer.
// A rule matches when every keyword is contained in the normalized
// question; rules are evaluated in order, first match wins.
type KeywordRule struct {
	Keywords []string `json:"keywords"`
	Answer   string   `json:"answer"`
}

// TopicContent is everything the catalog knows about one topic
type TopicContent struct {
	Explanation   string             `json:"explanation"`
	Flashcards    []models.Flashcard `json:"flashcards"`
	Rules         []KeywordRule      `json:"rules"`
	DefaultAnswer string             `json:"default_answer"`
}

// catalog maps topic name to its pre-written content. Loaded once at
// startup from the embedded data file and never mutated.
var catalog map[string]TopicContent

func init() {
	data, err := catalogData.ReadFile("data/catalog.json")
	if err != nil {
		panic(fmt.Sprintf("content: read catalog: %v", err))
	}
	if err := json.Unmarshal(data, &catalog); err != nil {
		panic(fmt.Sprintf("content: parse catalog: %v", err))
	}
}

// Lookup returns the catalog entry for a topic, reporting whether the
// topic is known. Unknown topics are not an error; the caller falls back
// to generic content.
func Lookup(topic string) (TopicContent, bool) {
	tc, ok := catalog[topic]
	return tc, ok
}

// Topics returns the number of known topics
func Topics() int {
	return len(catalog)
}
