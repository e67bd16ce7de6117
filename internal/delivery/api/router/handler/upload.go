package handler

import (
	"io"
	"net/http"

	"tutoria/internal/domain/entity"
	domainerrors "tutoria/internal/domain/errors"
	"tutoria/internal/errors"

	"github.com/labstack/echo/v4"
)

const (
	pdfField = "pdf"

	// multipartMemory is the part of a multipart body kept in memory; the rest spills to disk.
	multipartMemory = 8 << 20
)

// parseMultipart parses the body once so form values and the file share one read.
// A body over the server limit surfaces as echo's 413, which the error handler maps.
func parseMultipart(c echo.Context) error {
	err := c.Request().ParseMultipartForm(multipartMemory)
	if err == nil || errors.Is(err, http.ErrNotMultipart) {
		return nil
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		return httpErr
	}

	return domainerrors.ErrPDFNotProvided.WithDetails(err.Error())
}

// readPDF returns the bytes of the "pdf" part after the type and size checks.
func readPDF(c echo.Context) ([]byte, error) {
	header, err := c.FormFile(pdfField)
	if err != nil {
		if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
			return nil, httpErr
		}

		return nil, domainerrors.ErrPDFNotProvided
	}

	if header.Header.Get(echo.HeaderContentType) != entity.PDFContentType {
		return nil, domainerrors.ErrNotPDF
	}

	if header.Size > entity.MaxUploadBytes {
		return nil, domainerrors.ErrUploadTooLarge
	}

	file, err := header.Open()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, entity.MaxUploadBytes+1))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read uploaded file")
	}

	if len(data) > entity.MaxUploadBytes {
		return nil, domainerrors.ErrUploadTooLarge
	}

	return data, nil
}
