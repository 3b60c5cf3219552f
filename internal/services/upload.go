package services

import (
	"fmt"
	"io"
	"mime/multipart"

	"alfredoptarigan/resume-analyzer/internal/models"
)

const pdfMediaType = "application/pdf"

type UploadValidator interface {
	Validate(file models.ResumeFile) error
}

type uploadValidator struct {
	maxFileSize int64
}

// NewUploadValidator builds the client-side gate for a contract. Only the
// full analysis profile enforces a size limit.
func NewUploadValidator(kind models.ContractKind, maxFileSize int64) UploadValidator {
	if kind != models.ContractFullAnalysis {
		maxFileSize = 0
	}
	return &uploadValidator{maxFileSize: maxFileSize}
}

// Validate implements UploadValidator.
func (v *uploadValidator) Validate(file models.ResumeFile) error {
	// The declared type is what counts; extensions are only a picker filter.
	if file.ContentType != pdfMediaType {
		return &ValidationError{Message: MsgOnlyPDF}
	}
	if v.maxFileSize > 0 && file.Size > v.maxFileSize {
		return &ValidationError{Message: MsgFileTooLarge}
	}
	return nil
}

// ReadUploads loads the offered files into memory. Only the first one is
// ever used, so the rest are not read.
func ReadUploads(headers []*multipart.FileHeader) ([]models.ResumeFile, error) {
	if len(headers) == 0 {
		return nil, nil
	}

	file, err := ReadUpload(headers[0])
	if err != nil {
		return nil, err
	}
	return []models.ResumeFile{file}, nil
}

func ReadUpload(header *multipart.FileHeader) (models.ResumeFile, error) {
	src, err := header.Open()
	if err != nil {
		return models.ResumeFile{}, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return models.ResumeFile{}, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	return models.ResumeFile{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Data:        data,
	}, nil
}
