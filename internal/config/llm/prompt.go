// Package llm holds the fixed prompts sent to the completion provider.
package llm

import "fmt"

// Prompt is the coaching instruction sent as the system message.
const Prompt = "You are an expert interview coach. Your task is to provide clear, " +
	"constructive, and friendly feedback on a user's answer to an interview question. " +
	"Analyze their answer for clarity, structure (like the STAR method), and tone. " +
	"Keep your feedback concise (around 3-4 sentences). " +
	"Start with one positive point and then suggest one area for improvement."

const answerTemplate = "The question was: '%s'. My answer is: '%s'"

// UserPrompt embeds the question and the answer verbatim. An absent
// question arrives here as "" and is embedded as '' on purpose, not as a
// placeholder word such as None.
func UserPrompt(question, answer string) string {
	return fmt.Sprintf(answerTemplate, question, answer)
}
