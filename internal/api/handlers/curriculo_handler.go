package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"techmatch/internal/dto"
	"techmatch/internal/models"
	"techmatch/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var allowedExtensions = map[string]struct{}{
	".pdf":  {},
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".doc":  {},
	".docx": {},
}

type CurriculoHandler struct {
	extractor service.Extractor
	analysis  service.Analysis
	logSink   service.LogSink
	logger    *zap.Logger
}

func NewCurriculoHandler(
	extractor service.Extractor,
	analysis service.Analysis,
	logSink service.LogSink,
	logger *zap.Logger,
) *CurriculoHandler {
	return &CurriculoHandler{
		extractor: extractor,
		analysis:  analysis,
		logSink:   logSink,
		logger:    logger,
	}
}

// ResolveRequestID maps the caller-supplied request_id field to a UUID:
// a valid UUID is used as-is, any other string is hashed into a
// deterministic name-based UUID, and an absent value yields a random one.
func ResolveRequestID(raw string) uuid.UUID {
	if raw == "" {
		return uuid.New()
	}
	if id, err := uuid.Parse(raw); err == nil {
		return id
	}
	return uuid.NewSHA1(uuid.NameSpaceDNS, []byte(raw))
}

// Analisar godoc
// @Summary Analisar currículos com IA
// @Description Processa currículos (PDF ou imagem) e gera sumários individuais ou responde uma pergunta comparativa sobre todos os arquivos enviados
// @Tags analise
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Arquivos de currículos (PDF, JPG, PNG)"
// @Param query formData string false "Pergunta sobre os currículos. Vazio ou omitido gera sumário individual de cada arquivo"
// @Param request_id formData string false "ID da requisição (UUID ou string). Gerado automaticamente se omitido"
// @Param user_id formData string true "Identificador do usuário"
// @Success 200 {object} dto.AnaliseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /curriculo [post]
func (h *CurriculoHandler) Analisar(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Corpo multipart inválido")
	}

	files := form.File["files"]
	if len(files) == 0 {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Campo obrigatório ausente: files")
	}

	userID := c.FormValue("user_id")
	if strings.TrimSpace(userID) == "" {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Campo obrigatório ausente: user_id")
	}

	query := c.FormValue("query")
	requestID := ResolveRequestID(c.FormValue("request_id"))

	// Extension allow-list runs over every file before any extraction work.
	for _, fh := range files {
		ext := service.FileExtension(fh.Filename)
		if _, ok := allowedExtensions[ext]; !ok {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf(
				"Arquivo %s tem extensão não permitida. Permitidos: PDF, JPG, PNG, DOCX",
				fh.Filename,
			))
		}
	}

	processed := make([]service.ProcessedFile, 0, len(files))
	for _, fh := range files {
		data, err := readFile(fh)
		if err != nil {
			return h.fail(c, requestID.String(), userID, query, len(processed), err)
		}

		processed = append(processed, service.ProcessedFile{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        int64(len(data)),
			Extension:   service.FileExtension(fh.Filename),
			Data:        data,
			Extraction:  h.extractor.Extract(c.Context(), fh.Filename, data),
		})
	}

	resultado, err := h.analysis.Analyze(c.Context(), processed, query)
	if err != nil {
		return h.fail(c, requestID.String(), userID, query, len(processed), err)
	}

	queryForLog := service.QueryForLog(query)

	h.logSink.Record(c.Context(), service.LogEntry{
		RequestID:  requestID.String(),
		UserID:     userID,
		Query:      queryForLog,
		Resultado:  resultado,
		FilesCount: len(processed),
		Status:     models.LogStatusSuccess,
	})

	filesInfo := make([]dto.FileInfo, len(processed))
	for i, f := range processed {
		filesInfo[i] = dto.FileInfo{
			Filename:    f.Filename,
			ContentType: f.ContentType,
			Size:        f.Size,
		}
	}

	return c.JSON(dto.AnaliseResponse{
		RequestID:      requestID.String(),
		UserID:         userID,
		FilesProcessed: len(processed),
		FilesInfo:      filesInfo,
		Query:          queryForLog,
		Resultado:      resultado,
	})
}

// fail records a best-effort error log entry and converts the failure into
// the generic 500 response. Validation failures never reach this path.
func (h *CurriculoHandler) fail(c *fiber.Ctx, requestID, userID, query string, filesCount int, err error) error {
	h.logger.Error("Request processing failed",
		zap.String("request_id", requestID),
		zap.Error(err),
	)

	h.logSink.Record(c.Context(), service.LogEntry{
		RequestID:  requestID,
		UserID:     userID,
		Query:      service.QueryForLog(query),
		Resultado:  "Erro: " + err.Error(),
		FilesCount: filesCount,
		Status:     models.LogStatusError,
	})

	return fiber.NewError(fiber.StatusInternalServerError, "Erro ao processar requisição: "+err.Error())
}

func readFile(fh *multipart.FileHeader) ([]byte, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file %s: %w", fh.Filename, err)
	}
	defer src.Close()

	return io.ReadAll(src)
}
