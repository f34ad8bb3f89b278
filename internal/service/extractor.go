package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/otiai10/gosseract/v2"
	"go.uber.org/zap"
)

// ExtractionStatus classifies the outcome of text extraction for one file.
type ExtractionStatus int

const (
	// ExtractionOK means usable text was extracted.
	ExtractionOK ExtractionStatus = iota
	// ExtractionNoText means extraction ran but produced nothing usable.
	// For image files this triggers the visual-analysis fallback downstream.
	ExtractionNoText
	// ExtractionUnsupported means the file type has no extraction path;
	// Text carries the fixed placeholder shown to the agent.
	ExtractionUnsupported
	// ExtractionFailed means extraction errored; Text carries a placeholder
	// embedding the error. Never surfaced as an error to the caller.
	ExtractionFailed
)

type Extraction struct {
	Status ExtractionStatus
	Text   string
}

const (
	wordPlaceholder        = "[Processamento de arquivos Word em desenvolvimento]"
	unsupportedPlaceholder = "[Tipo de arquivo não suportado para extração de texto]"
)

type Extractor interface {
	Extract(ctx context.Context, filename string, data []byte) Extraction
}

type textExtractor struct {
	languages []string
	logger    *zap.Logger
}

// NewExtractor returns the process-wide text extractor. Tesseract clients are
// created per call; the extractor itself holds no mutable state.
func NewExtractor(logger *zap.Logger) Extractor {
	return &textExtractor{
		languages: []string{"por", "eng"},
		logger:    logger,
	}
}

// FileExtension returns the lowercase extension including the leading dot.
// A filename without a dot yields the empty string.
func FileExtension(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx == -1 {
		return ""
	}
	return strings.ToLower(filename[idx:])
}

func IsImageExtension(ext string) bool {
	switch ext {
	case ".jpg", ".jpeg", ".png":
		return true
	}
	return false
}

func (e *textExtractor) Extract(ctx context.Context, filename string, data []byte) Extraction {
	ext := FileExtension(filename)

	switch {
	case ext == ".pdf":
		return e.extractPDF(filename, data)
	case IsImageExtension(ext):
		return e.extractImage(filename, data)
	case ext == ".doc" || ext == ".docx":
		return Extraction{Status: ExtractionUnsupported, Text: wordPlaceholder}
	default:
		return Extraction{Status: ExtractionUnsupported, Text: unsupportedPlaceholder}
	}
}

func (e *textExtractor) extractPDF(filename string, data []byte) Extraction {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		e.logger.Warn("Failed to open PDF",
			zap.String("file", filename),
			zap.Error(err),
		)
		return Extraction{
			Status: ExtractionFailed,
			Text:   fmt.Sprintf("[Erro ao processar PDF: %v]", err),
		}
	}
	defer doc.Close()

	var textBuilder strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		pageText, err := doc.Text(i)
		if err != nil {
			e.logger.Warn("Failed to extract text from page",
				zap.String("file", filename),
				zap.Int("page", i+1),
				zap.Error(err),
			)
			continue
		}
		textBuilder.WriteString(pageText)
		textBuilder.WriteString("\n")
	}

	text := strings.TrimSpace(textBuilder.String())
	if text == "" {
		return Extraction{Status: ExtractionNoText}
	}

	e.logger.Info("PDF text extracted",
		zap.String("file", filename),
		zap.Int("pages", doc.NumPage()),
		zap.Int("text_length", len(text)),
	)

	return Extraction{Status: ExtractionOK, Text: text}
}

// extractImage runs Tesseract OCR over the raw image bytes. Any failure is
// swallowed into ExtractionNoText so the orchestrator can fall back to
// sending the original image to the agent.
func (e *textExtractor) extractImage(filename string, data []byte) Extraction {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(e.languages...); err != nil {
		e.logger.Warn("Failed to configure OCR languages", zap.Error(err))
		return Extraction{Status: ExtractionNoText}
	}

	if err := client.SetImageFromBytes(data); err != nil {
		e.logger.Warn("Failed to load image for OCR",
			zap.String("file", filename),
			zap.Error(err),
		)
		return Extraction{Status: ExtractionNoText}
	}

	text, err := client.Text()
	if err != nil {
		e.logger.Warn("OCR failed",
			zap.String("file", filename),
			zap.Error(err),
		)
		return Extraction{Status: ExtractionNoText}
	}

	// Collapse recognized fragments into a single space-joined line.
	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		return Extraction{Status: ExtractionNoText}
	}

	e.logger.Info("OCR extraction completed",
		zap.String("file", filename),
		zap.Int("text_length", len(text)),
	)

	return Extraction{Status: ExtractionOK, Text: text}
}
