package content

import (
	"fmt"
	"strings"

	"github.com/example/physquest/pkg/models"
)

// Explain returns the catalog explanation for a known topic verbatim, or a
// generic templated explanation for anything else. Never fails.
func Explain(topic string) string {
	if tc, ok := Lookup(topic); ok {
		return tc.Explanation
	}
	return fmt.Sprintf("%s is an important concept in physics that involves the study of matter, energy, and their interactions. This topic covers fundamental principles that help us understand the natural world and develop new technologies. To learn more about %s, study the key formulas, work through practice problems, and try to connect the concepts to real-world examples you encounter in daily life.", topic, topic)
}

// Flashcards returns the three catalog pairs for a known topic, or three
// generic templated pairs referencing the topic. Never fails.
func Flashcards(topic string) []models.Flashcard {
	if tc, ok := Lookup(topic); ok {
		return tc.Flashcards
	}
	return []models.Flashcard{
		{Question: fmt.Sprintf("What is %s?", topic), Answer: "Study your textbook for details!"},
		{Question: fmt.Sprintf("Key formula for %s?", topic), Answer: "Check your notes!"},
		{Question: fmt.Sprintf("Application of %s?", topic), Answer: "Practice problems!"},
	}
}

// Answer resolves a question against the topic's keyword rules.
//
// The question is lowercased and the rules are evaluated in catalog order;
// the first rule whose every keyword is contained in the normalized
// question wins. Containment is raw substring matching, not word matching,
// so "amp" also matches inside "example". If no rule matches, the topic's
// default answer is returned; an unknown topic gets a generic templated
// answer. Pure function: same inputs, same answer.
func Answer(topic, question string) string {
	tc, ok := Lookup(topic)
	if !ok {
		return fmt.Sprintf("Great question about %s! Here's a tip: Try asking about specific concepts like formulas, examples, or how things work. I can explain %s in simple terms - just be specific about what you want to know!", topic, topic)
	}

	q := strings.ToLower(question)
	for _, rule := range tc.Rules {
		if ruleMatches(rule, q) {
			return rule.Answer
		}
	}
	return tc.DefaultAnswer
}

// ruleMatches reports whether every keyword of the rule appears in the
// normalized question. Multi-keyword rules are conjunctions.
func ruleMatches(rule KeywordRule, normalized string) bool {
	for _, kw := range rule.Keywords {
		if !strings.Contains(normalized, kw) {
			return false
		}
	}
	return true
}
