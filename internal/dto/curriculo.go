package dto

type HealthResponse struct {
	Message string `json:"message" example:"API de Análise de Currículos está online"`
	Status  string `json:"status" example:"online"`
	Version string `json:"version" example:"1.0.0"`
}

type FileInfo struct {
	Filename    string `json:"filename" example:"curriculo_joao_silva.pdf"`
	ContentType string `json:"content_type" example:"application/pdf"`
	Size        int64  `json:"size" example:"245678"`
}

type AnaliseResponse struct {
	RequestID      string     `json:"request_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	UserID         string     `json:"user_id" example:"user_123"`
	FilesProcessed int        `json:"files_processed" example:"2"`
	FilesInfo      []FileInfo `json:"files_info"`
	Query          string     `json:"query" example:"Qual candidato tem mais experiência em Python?"`
	Resultado      string     `json:"resultado"`
}

type ErrorResponse struct {
	Detail string `json:"detail" example:"Mensagem de erro detalhada"`
}
