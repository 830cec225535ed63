package engine

import "fmt"

// The persona line is shared by both prompt variants so the assistant's
// scope stays consistent whether or not retrieval produced context.
const persona = "You are a virtual teaching assistant for an online data science course."

const contextPrompt = persona + `
Use the following context to answer the student's question.
If the information is not in the context, just say that you don't know but would be happy to help with other questions.
Do not make up answers that are not supported by the context.
Provide a clear, concise answer.

CONTEXT:
%s

STUDENT QUESTION:
%s

YOUR ANSWER:`

const noContextPrompt = persona + `
Answer the student's question based on your knowledge.
If you don't know the answer, just say that you don't know but would be happy to help with other questions.
Do not make up answers.
Provide a clear, concise answer.

STUDENT QUESTION:
%s

YOUR ANSWER:`

// buildPrompt assembles the generation prompt. With non-empty context the
// model is instructed to answer strictly from it; without context it may
// fall back to general knowledge, with the same admit-uncertainty rule.
func buildPrompt(question, contextBlock string) string {
	if contextBlock != "" {
		return fmt.Sprintf(contextPrompt, contextBlock, question)
	}
	return fmt.Sprintf(noContextPrompt, question)
}
