package models

import "github.com/nilayfuladi/plant-identifier/internal/identify"

// IdentificationResponse is the transport-level result of one
// identification attempt.
type IdentificationResponse struct {
	Plant             identify.PlantInfo `json:"plant"`
	ImageWarnings     []string           `json:"image_warnings,omitempty"`
	Timestamp         string             `json:"timestamp"`
	ProcessingTimeSec float64            `json:"processing_time_sec"`
}

// IdentifyURLRequest asks for identification of an image reachable at a URL.
type IdentifyURLRequest struct {
	URL string `json:"url" binding:"required,url"`
}

// ErrorResponse is the transport-level error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
