package entity

// TaskKind identifies which kind of study material is requested from the generator.
type TaskKind string

const (
	TaskSummarize  TaskKind = "summarize"
	TaskQuiz       TaskKind = "quiz"
	TaskFlashcards TaskKind = "flashcards"
	TaskAnswer     TaskKind = "answer"
)

// SourceKind identifies where the material for a generation request came from.
type SourceKind string

const (
	SourceText SourceKind = "texto"
	SourcePDF  SourceKind = "pdf"
	SourceNone SourceKind = "nenhum"
)

// DefaultQuizTitle is used when a quiz request carries no usable title.
const DefaultQuizTitle = "Quiz"

// GenerationRequest is a validated request for the prompt builder.
// Content is the study material (summaries, quizzes, flashcards) or the optional context (answers).
type GenerationRequest struct {
	Task     TaskKind
	Content  string
	Question string
	Title    string
	Count    int
}

// Summary is a Markdown summary of a source text.
type Summary struct {
	Text           string
	OriginalLength int
	Source         SourceKind
}

// Question is one multiple-choice item. CorrectOption always equals one of Options
// ignoring case and surrounding whitespace.
type Question struct {
	Prompt        string
	Options       []string
	CorrectOption string
}

// Quiz is a titled, ordered list of questions.
type Quiz struct {
	Title     string
	Questions []Question
	Source    SourceKind
}

// Flashcard is a front/back study card.
type Flashcard struct {
	Front string
	Back  string
}

// FlashcardDeck is the ordered result of a flashcard request.
type FlashcardDeck struct {
	Cards  []Flashcard
	Source SourceKind
}

// Answer is a Markdown answer to a student question.
type Answer struct {
	Text          string
	HasContext    bool
	ContextKind   SourceKind
	ContextLength int
}
