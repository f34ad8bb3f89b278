package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// SummaryModeLabel is echoed into the response and the log record in place
// of a query when the request runs in per-file summary mode.
const SummaryModeLabel = "[Modo: Sumarização Individual]"

// queryPlaceholderValue is the literal Swagger UI submits when the query
// field is left at its default; it is treated the same as no query.
const queryPlaceholderValue = "string"

const (
	bannerLine = "============================================================"

	imageSummaryInstruction = "Analise este currículo em formato de imagem e gere o sumário completo seguindo o formato solicitado:"
	imageQueryNotice        = "[Imagem do currículo - OCR não disponível, analisando visualmente]"
)

// ProcessedFile is one uploaded file after validation and extraction,
// kept in submission order.
type ProcessedFile struct {
	Filename    string
	ContentType string
	Size        int64
	Extension   string
	Data        []byte
	Extraction  Extraction
}

type Analysis interface {
	Analyze(ctx context.Context, files []ProcessedFile, query string) (string, error)
}

type analysisService struct {
	agent  Agent
	logger *zap.Logger
}

func NewAnalysis(agent Agent, logger *zap.Logger) Analysis {
	return &analysisService{
		agent:  agent,
		logger: logger,
	}
}

// SummarizeMode reports whether the request runs in per-file summary mode:
// no query, a blank query, or the placeholder literal.
func SummarizeMode(query string) bool {
	trimmed := strings.TrimSpace(query)
	return trimmed == "" || strings.EqualFold(trimmed, queryPlaceholderValue)
}

// QueryForLog returns the query as echoed into the response and the log
// record: verbatim in query mode, the summary-mode label otherwise.
func QueryForLog(query string) string {
	if SummarizeMode(query) {
		return SummaryModeLabel
	}
	return query
}

// imageFallback reports whether the original image bytes should be sent to
// the agent instead of extracted text.
func imageFallback(f ProcessedFile) bool {
	return f.Extraction.Status == ExtractionNoText && IsImageExtension(f.Extension)
}

func mimeForExtension(ext string) string {
	if ext == ".png" {
		return "image/png"
	}
	return "image/jpeg"
}

func (s *analysisService) Analyze(ctx context.Context, files []ProcessedFile, query string) (string, error) {
	if SummarizeMode(query) {
		return s.summarize(ctx, files)
	}
	return s.answerQuery(ctx, files, query)
}

// summarize invokes the summary agent once per file and joins the framed
// sections in submission order.
func (s *analysisService) summarize(ctx context.Context, files []ProcessedFile) (string, error) {
	sections := make([]string, 0, len(files))

	for i, f := range files {
		var parts []Part
		if imageFallback(f) {
			s.logger.Info("Falling back to visual analysis",
				zap.String("file", f.Filename),
			)
			parts = []Part{
				TextPart(imageSummaryInstruction),
				ImagePart(mimeForExtension(f.Extension), f.Data),
			}
		} else {
			parts = []Part{TextPart(f.Extraction.Text)}
		}

		reply, err := s.agent.Invoke(ctx, AgentSummary, parts)
		if err != nil {
			return "", err
		}

		section := fmt.Sprintf("\n%s\nCURRÍCULO  #%d: %s - Sumário\n%s\n%s\n",
			bannerLine, i+1, f.Filename, bannerLine, reply)
		sections = append(sections, section)
	}

	return strings.Join(sections, "\n"), nil
}

// answerQuery builds a single content sequence covering every file and
// invokes the comparative agent exactly once. The reply is returned verbatim.
func (s *analysisService) answerQuery(ctx context.Context, files []ProcessedFile, query string) (string, error) {
	parts := []Part{TextPart(fmt.Sprintf("PERGUNTA/CONSULTA: %s\n", query))}

	for i, f := range files {
		parts = append(parts, TextPart(fmt.Sprintf("\n%s\nCURRÍCULO #%d: %s\n%s\n",
			bannerLine, i+1, f.Filename, bannerLine)))

		if imageFallback(f) {
			s.logger.Info("Falling back to visual analysis",
				zap.String("file", f.Filename),
			)
			parts = append(parts,
				TextPart(imageQueryNotice),
				ImagePart(mimeForExtension(f.Extension), f.Data),
			)
			continue
		}

		parts = append(parts, TextPart(f.Extraction.Text+"\n"))
	}

	return s.agent.Invoke(ctx, AgentQuery, parts)
}
