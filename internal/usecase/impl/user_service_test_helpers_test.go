package impl

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// quizJSON renders a reply with n well-formed questions.
func quizJSON(n int) string {
	entries := make([]string, 0, n)
	for i := range n {
		entries = append(entries, fmt.Sprintf(
			`{"pergunta":"Pergunta %d?","opcoes":["A) um","B) dois","C) três","D) quatro"],"resposta_correta":"B) dois"}`, i+1))
	}

	return `{"questoes":[` + strings.Join(entries, ",") + `]}`
}
