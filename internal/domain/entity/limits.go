package entity

// Request bounds. Text lengths count characters (runes), not bytes.
const (
	MinQuestions     = 1
	MaxQuestions     = 20
	DefaultQuestions = 5

	MinFlashcards     = 1
	MaxFlashcards     = 50
	DefaultFlashcards = 10

	MaxQuestionLength = 1000
	MaxContextLength  = 50000
	MaxTextLength     = 100000

	MaxUploadBytes = 25 * 1024 * 1024

	// MaxPasswordBytes is bcrypt's input limit; longer passwords cannot be hashed.
	MaxPasswordBytes = 72
)

// PDFContentType is the only content type accepted for uploads.
const PDFContentType = "application/pdf"
