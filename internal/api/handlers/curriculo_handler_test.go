package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"testing"

	"techmatch/internal/dto"
	"techmatch/internal/models"
	"techmatch/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type fakeExtractor struct {
	calls []string
}

func (f *fakeExtractor) Extract(ctx context.Context, filename string, data []byte) service.Extraction {
	f.calls = append(f.calls, filename)
	return service.Extraction{Status: service.ExtractionOK, Text: "texto extraído de " + filename}
}

type fakeAnalysis struct {
	calls     int
	lastFiles []service.ProcessedFile
	lastQuery string
	result    string
	err       error
}

func (f *fakeAnalysis) Analyze(ctx context.Context, files []service.ProcessedFile, query string) (string, error) {
	f.calls++
	f.lastFiles = files
	f.lastQuery = query
	if f.err != nil {
		return "", f.err
	}
	return f.result, nil
}

type fakeLogSink struct {
	entries []service.LogEntry
}

func (f *fakeLogSink) Record(ctx context.Context, entry service.LogEntry) {
	f.entries = append(f.entries, entry)
}

func newTestApp(h *CurriculoHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(dto.ErrorResponse{Detail: err.Error()})
		},
	})
	app.Post("/curriculo", h.Analisar)
	return app
}

type uploadFile struct {
	name string
	data []byte
}

func newUploadRequest(t *testing.T, files []uploadFile, fields map[string]string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range files {
		part, err := w.CreateFormFile("files", f.name)
		if err != nil {
			t.Fatalf("Failed to create form file: %v", err)
		}
		if _, err := part.Write(f.data); err != nil {
			t.Fatalf("Failed to write form file: %v", err)
		}
	}
	for key, value := range fields {
		if err := w.WriteField(key, value); err != nil {
			t.Fatalf("Failed to write form field: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close multipart writer: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, "/curriculo", &buf)
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func decodeJSON(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		t.Fatalf("Failed to unmarshal response %s: %v", body, err)
	}
}

func TestAnalisarRejectsDisallowedExtension(t *testing.T) {
	extractor := &fakeExtractor{}
	analysis := &fakeAnalysis{result: "ok"}
	sink := &fakeLogSink{}
	app := newTestApp(NewCurriculoHandler(extractor, analysis, sink, zap.NewNop()))

	req := newUploadRequest(t,
		[]uploadFile{{name: "curriculo.txt", data: []byte("plain text")}},
		map[string]string{"user_id": "u1"},
	)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("Status = %d, expected 400", resp.StatusCode)
	}

	var body dto.ErrorResponse
	decodeJSON(t, resp, &body)
	expected := "Arquivo curriculo.txt tem extensão não permitida. Permitidos: PDF, JPG, PNG, DOCX"
	if body.Detail != expected {
		t.Errorf("Detail = %q, expected %q", body.Detail, expected)
	}

	if analysis.calls != 0 {
		t.Errorf("Analysis must not run after a validation failure")
	}
	if len(extractor.calls) != 0 {
		t.Errorf("Extraction must not run after a validation failure")
	}
	if len(sink.entries) != 0 {
		t.Errorf("Validation failures must not be logged")
	}
}

func TestAnalisarRequiresUserID(t *testing.T) {
	app := newTestApp(NewCurriculoHandler(&fakeExtractor{}, &fakeAnalysis{}, &fakeLogSink{}, zap.NewNop()))

	req := newUploadRequest(t,
		[]uploadFile{{name: "curriculo.pdf", data: []byte("%PDF-1.4")}},
		nil,
	)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("Status = %d, expected 422", resp.StatusCode)
	}
}

func TestAnalisarRequiresFiles(t *testing.T) {
	app := newTestApp(NewCurriculoHandler(&fakeExtractor{}, &fakeAnalysis{}, &fakeLogSink{}, zap.NewNop()))

	req := newUploadRequest(t, nil, map[string]string{"user_id": "u1"})

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("Status = %d, expected 422", resp.StatusCode)
	}
}

func TestAnalisarSummaryModeResponse(t *testing.T) {
	extractor := &fakeExtractor{}
	analysis := &fakeAnalysis{result: "sumário formatado"}
	sink := &fakeLogSink{}
	app := newTestApp(NewCurriculoHandler(extractor, analysis, sink, zap.NewNop()))

	req := newUploadRequest(t,
		[]uploadFile{{name: "curriculo.pdf", data: []byte("%PDF-1.4 conteudo")}},
		map[string]string{"user_id": "recrutador_1"},
	)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Status = %d, expected 200", resp.StatusCode)
	}

	var body dto.AnaliseResponse
	decodeJSON(t, resp, &body)

	if _, err := uuid.Parse(body.RequestID); err != nil {
		t.Errorf("request_id %q is not a valid UUID", body.RequestID)
	}
	if body.UserID != "recrutador_1" {
		t.Errorf("user_id = %q", body.UserID)
	}
	if body.FilesProcessed != 1 {
		t.Errorf("files_processed = %d, expected 1", body.FilesProcessed)
	}
	if body.Query != service.SummaryModeLabel {
		t.Errorf("query = %q, expected summary mode label", body.Query)
	}
	if body.Resultado != "sumário formatado" {
		t.Errorf("resultado = %q", body.Resultado)
	}
	if len(body.FilesInfo) != 1 {
		t.Fatalf("files_info has %d entries", len(body.FilesInfo))
	}
	info := body.FilesInfo[0]
	if info.Filename != "curriculo.pdf" {
		t.Errorf("files_info filename = %q", info.Filename)
	}
	if info.Size != int64(len("%PDF-1.4 conteudo")) {
		t.Errorf("files_info size = %d", info.Size)
	}

	if len(sink.entries) != 1 {
		t.Fatalf("Expected 1 log entry, got %d", len(sink.entries))
	}
	entry := sink.entries[0]
	if entry.Status != models.LogStatusSuccess {
		t.Errorf("Log status = %q", entry.Status)
	}
	if entry.RequestID != body.RequestID {
		t.Errorf("Log request_id = %q, response request_id = %q", entry.RequestID, body.RequestID)
	}
	if entry.Query != service.SummaryModeLabel {
		t.Errorf("Log query = %q", entry.Query)
	}

	if analysis.calls != 1 {
		t.Errorf("Analysis calls = %d, expected 1", analysis.calls)
	}
	if len(analysis.lastFiles) != 1 || analysis.lastFiles[0].Extraction.Text != "texto extraído de curriculo.pdf" {
		t.Errorf("Analysis did not receive the extraction result")
	}
}

func TestAnalisarEchoesQueryVerbatim(t *testing.T) {
	analysis := &fakeAnalysis{result: "veredito"}
	app := newTestApp(NewCurriculoHandler(&fakeExtractor{}, analysis, &fakeLogSink{}, zap.NewNop()))

	query := "Qual candidato tem mais experiência?"
	req := newUploadRequest(t,
		[]uploadFile{
			{name: "a.pdf", data: []byte("%PDF-1.4 a")},
			{name: "b.pdf", data: []byte("%PDF-1.4 b")},
		},
		map[string]string{"user_id": "u1", "query": query},
	)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Status = %d, expected 200", resp.StatusCode)
	}

	var body dto.AnaliseResponse
	decodeJSON(t, resp, &body)
	if body.Query != query {
		t.Errorf("query = %q, expected verbatim echo", body.Query)
	}
	if body.FilesProcessed != 2 {
		t.Errorf("files_processed = %d, expected 2", body.FilesProcessed)
	}
	if analysis.lastQuery != query {
		t.Errorf("Analysis received query %q", analysis.lastQuery)
	}
	if len(analysis.lastFiles) != 2 || analysis.lastFiles[0].Filename != "a.pdf" || analysis.lastFiles[1].Filename != "b.pdf" {
		t.Errorf("Files out of submission order: %+v", analysis.lastFiles)
	}
}

func TestAnalisarRequestIDHandling(t *testing.T) {
	run := func(requestID string) string {
		analysis := &fakeAnalysis{result: "r"}
		app := newTestApp(NewCurriculoHandler(&fakeExtractor{}, analysis, &fakeLogSink{}, zap.NewNop()))

		fields := map[string]string{"user_id": "u1"}
		if requestID != "" {
			fields["request_id"] = requestID
		}
		req := newUploadRequest(t, []uploadFile{{name: "c.pdf", data: []byte("%PDF")}}, fields)

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test failed: %v", err)
		}
		var body dto.AnaliseResponse
		decodeJSON(t, resp, &body)
		return body.RequestID
	}

	// A valid UUID is echoed in canonical form.
	explicit := "550E8400-E29B-41D4-A716-446655440000"
	if got := run(explicit); got != "550e8400-e29b-41d4-a716-446655440000" {
		t.Errorf("request_id = %q, expected canonical form of supplied UUID", got)
	}

	// Non-UUID strings derive deterministically.
	first := run("pedido-do-cliente-42")
	second := run("pedido-do-cliente-42")
	if first != second {
		t.Errorf("Derived request_id not deterministic: %q vs %q", first, second)
	}
	if _, err := uuid.Parse(first); err != nil {
		t.Errorf("Derived request_id %q is not a valid UUID", first)
	}
	if other := run("outro-pedido"); other == first {
		t.Errorf("Different strings should derive different UUIDs")
	}
}

func TestAnalisarAnalysisFailure(t *testing.T) {
	analysis := &fakeAnalysis{err: errors.New("model unavailable")}
	sink := &fakeLogSink{}
	app := newTestApp(NewCurriculoHandler(&fakeExtractor{}, analysis, sink, zap.NewNop()))

	req := newUploadRequest(t,
		[]uploadFile{{name: "c.pdf", data: []byte("%PDF")}},
		map[string]string{"user_id": "u1"},
	)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("Status = %d, expected 500", resp.StatusCode)
	}

	var body dto.ErrorResponse
	decodeJSON(t, resp, &body)
	if body.Detail != "Erro ao processar requisição: model unavailable" {
		t.Errorf("Detail = %q", body.Detail)
	}

	if len(sink.entries) != 1 {
		t.Fatalf("Expected 1 error log entry, got %d", len(sink.entries))
	}
	entry := sink.entries[0]
	if entry.Status != models.LogStatusError {
		t.Errorf("Log status = %q, expected error", entry.Status)
	}
	if entry.Resultado != "Erro: model unavailable" {
		t.Errorf("Log resultado = %q", entry.Resultado)
	}
	if entry.FilesCount != 1 {
		t.Errorf("Log files_count = %d", entry.FilesCount)
	}
}

func TestResolveRequestID(t *testing.T) {
	id := ResolveRequestID("550e8400-e29b-41d4-a716-446655440000")
	if id.String() != "550e8400-e29b-41d4-a716-446655440000" {
		t.Errorf("Valid UUID must pass through, got %s", id)
	}

	a := ResolveRequestID("minha-chave")
	b := ResolveRequestID("minha-chave")
	if a != b {
		t.Errorf("Derived UUIDs must be deterministic: %s vs %s", a, b)
	}
	if a == ResolveRequestID("outra-chave") {
		t.Errorf("Different inputs must derive different UUIDs")
	}

	if ResolveRequestID("") == ResolveRequestID("") {
		t.Errorf("Absent request_id must generate random UUIDs")
	}
}
