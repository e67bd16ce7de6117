// Package prompt turns validated study requests into model instructions and turns the
// model's structured replies back into domain values. Both directions share the JSON
// contract embedded in the quiz and flashcard templates.
package prompt

import (
	"fmt"
	"strings"

	"tutoria/internal/domain/entity"
	"tutoria/internal/errors"
)

// Prompt is the instruction pair sent to the generator.
type Prompt struct {
	SystemInstruction string
	UserPrompt        string
}

const (
	summarySystem = "Você é um assistente educacional especializado em criar resumos claros e organizados " +
		"em formato Markdown. Sempre responda em português do Brasil."

	quizSystem = "Você é um assistente educacional que cria questões de múltipla escolha em português do Brasil. " +
		"Sempre responda APENAS com um JSON válido, sem texto adicional antes ou depois."

	flashcardSystem = "Você é um assistente educacional que cria flashcards para estudo em português do Brasil. " +
		"Sempre responda APENAS com um JSON válido, sem texto adicional antes ou depois."

	tutorSystem = "Você é um tutor educacional paciente e didático que responde em português do Brasil. " +
		"Explique conceitos de forma clara, use exemplos quando apropriado, " +
		"e formate suas respostas em Markdown para melhor legibilidade."
)

const summaryTemplate = `Crie um resumo estruturado e didático do seguinte texto em formato Markdown. ` +
	`Use títulos (##), subtítulos (###), listas e destaques em negrito quando apropriado. ` +
	`Organize o conteúdo de forma lógica e fácil de estudar.

TEXTO:
%s

RESUMO EM MARKDOWN:`

const quizTemplate = `Crie %d questões de múltipla escolha sobre o seguinte conteúdo. ` +
	"IMPORTANTE: Retorne APENAS o JSON puro, sem markdown, sem ```json, sem explicações." + `

Formato obrigatório:
{
  "questoes": [
    {
      "pergunta": "texto da pergunta",
      "opcoes": ["A) opção 1", "B) opção 2", "C) opção 3", "D) opção 4"],
      "resposta_correta": "A) opção 1"
    }
  ]
}

CONTEÚDO:
%s

JSON:`

const flashcardTemplate = `Crie %d flashcards sobre o seguinte conteúdo. ` +
	"IMPORTANTE: Retorne APENAS o JSON puro, sem markdown, sem ```json, sem explicações." + `

Formato obrigatório:
{
  "flashcards": [
    {
      "frente": "pergunta ou conceito",
      "verso": "resposta ou explicação detalhada"
    }
  ]
}

CONTEÚDO:
%s

JSON:`

const answerWithContextTemplate = `Baseado no seguinte contexto, responda a pergunta do estudante de forma didática:

CONTEXTO:
%s

PERGUNTA: %s

RESPOSTA EM MARKDOWN:`

const answerTemplate = `Responda a seguinte pergunta de forma clara, didática e bem explicada:

PERGUNTA: %s

RESPOSTA EM MARKDOWN:`

// Summarize builds the Markdown summary prompt.
func Summarize(text string) Prompt {
	return Prompt{
		SystemInstruction: summarySystem,
		UserPrompt:        fmt.Sprintf(summaryTemplate, text),
	}
}

// Quiz builds the multiple-choice prompt asking for exactly count questions.
func Quiz(content string, count int) Prompt {
	return Prompt{
		SystemInstruction: quizSystem,
		UserPrompt:        fmt.Sprintf(quizTemplate, count, content),
	}
}

// Flashcards builds the flashcard prompt asking for exactly count cards.
func Flashcards(content string, count int) Prompt {
	return Prompt{
		SystemInstruction: flashcardSystem,
		UserPrompt:        fmt.Sprintf(flashcardTemplate, count, content),
	}
}

// Answer builds the tutoring prompt. A blank context selects the context-free variant.
func Answer(question, context string) Prompt {
	if strings.TrimSpace(context) == "" {
		return Prompt{
			SystemInstruction: tutorSystem,
			UserPrompt:        fmt.Sprintf(answerTemplate, question),
		}
	}

	return Prompt{
		SystemInstruction: tutorSystem,
		UserPrompt:        fmt.Sprintf(answerWithContextTemplate, context, question),
	}
}

// Build dispatches on the task kind. It is pure: the same request always yields the same prompt.
func Build(req entity.GenerationRequest) (Prompt, error) {
	switch req.Task {
	case entity.TaskSummarize:
		return Summarize(req.Content), nil
	case entity.TaskQuiz:
		return Quiz(req.Content, req.Count), nil
	case entity.TaskFlashcards:
		return Flashcards(req.Content, req.Count), nil
	case entity.TaskAnswer:
		return Answer(req.Question, req.Content), nil
	default:
		return Prompt{}, errors.Errorf("unknown task kind %q", req.Task)
	}
}
