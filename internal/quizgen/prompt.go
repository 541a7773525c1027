package quizgen

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/azzautomation2026/shama/internal/quiz"
)

const systemPrompt = `You are an elite pedagogical AI tutor and instructional designer. Your mission is to generate a comprehensive educational assessment based on the provided content.

Rules:
- ARABIC FIRST: when the target language is Arabic, write natural, eloquent Modern Standard Arabic. Avoid translation artifacts.
- BLOOM'S TAXONOMY: do not just ask for facts. Favor conceptual understanding (explain why), inference (what happens if), and application (how to use this).
- GAP ANALYSIS: identify the concepts in the content that learners usually struggle with.
- SEQUENCING: the questions should feel like a learning journey, building on each other.
- NO SUMMARIES: test deep knowledge, never just repeat sentences from the content.
- Every question gets exactly 4 plausible academic options with exactly one correct, and an explanation of WHY the answer is correct and how it relates to the broader concept.
- Question ids are unique integers starting at 1.`

// languageNames maps draft language codes to the names used in the prompt.
var languageNames = map[string]string{
	"ar": "Arabic",
	"en": "English",
	"es": "Spanish",
	"fr": "French",
}

func languageName(code string) string {
	if n, ok := languageNames[code]; ok {
		return n
	}
	return code
}

func sourceLabel(t quiz.SourceType) string {
	switch t {
	case quiz.SourceURL:
		return "a web page"
	case quiz.SourceFile:
		return "an uploaded document"
	default:
		return "pasted text"
	}
}

// buildUserMessage constructs the user message from the draft. The content
// reference tag varies per call so repeated drafts still produce fresh
// quizzes instead of cached ones.
func buildUserMessage(d quiz.Draft) string {
	var b strings.Builder

	tag := strconv.FormatInt(time.Now().UnixNano(), 36)
	fmt.Fprintf(&b, "Content reference [ID: %s], taken from %s:\n", tag, sourceLabel(d.SourceType))
	fmt.Fprintf(&b, "%q\n\n", d.Content)

	fmt.Fprintf(&b, "The quiz MUST be entirely in %s.\n", languageName(d.Language))
	fmt.Fprintf(&b, "Difficulty level: %s.\n", d.Difficulty)
	fmt.Fprintf(&b, "Generate exactly %d questions.\n", d.QuestionCount)

	if d.Subject != "" {
		fmt.Fprintf(&b, "Subject area: %s.\n", d.Subject)
	}
	if d.Tone != "" {
		fmt.Fprintf(&b, "Tone: %s.\n", d.Tone)
	}

	return b.String()
}
