// Package pdf extracts plain text from uploaded PDF documents.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "tutoria/internal/delivery/context"
	domainerrors "tutoria/internal/domain/errors"
	"tutoria/internal/domain/service"
	"tutoria/internal/errors"

	"github.com/ledongthuc/pdf"
)

// Extractor reads every page of a document and joins their text in page order.
type Extractor struct {
	logger *slog.Logger
}

// NewExtractor returns the PDF text extractor.
func NewExtractor(logger *slog.Logger) service.TextExtractor {
	return &Extractor{logger: logger}
}

// Extract returns the document text. Documents that cannot be opened yield ErrUnreadablePDF.
// Image-only documents yield an empty string; deciding whether that is acceptable is up to the caller.
func (e *Extractor) Extract(ctx context.Context, data []byte) (text string, err error) {
	if len(data) == 0 {
		return "", domainerrors.ErrUnreadablePDF.WithDetails("empty upload")
	}

	// The parser panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = errors.WithStack(domainerrors.ErrUnreadablePDF.WithDetails(fmt.Sprint(r)))
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", errors.WithStack(domainerrors.ErrUnreadablePDF.WithDetails(err.Error()))
	}

	logger := deliverycontext.LoggerFrom(ctx, e.logger)

	var builder strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return "", errors.WithStack(err)
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			logger.Warn("Skipping unreadable PDF page", slog.Int("page", i), slog.Any("error", err))

			continue
		}

		if pageText == "" {
			continue
		}
		if builder.Len() > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString(pageText)
	}

	logger.Debug("PDF text extracted", slog.Int("pages", numPages), slog.Int("chars", builder.Len()))

	return builder.String(), nil
}
