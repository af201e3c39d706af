package models

import "errors"

// Sentinel errors of the extraction pipeline. Handlers map these onto HTTP
// statuses; everything else becomes a generic 500.
var (
	ErrInvalidURL     = errors.New("invalid TikTok URL format")
	ErrVideoNotFound  = errors.New("video not found or is private")
	ErrNoWatermarkURL = errors.New("no watermark-free URL could be resolved")
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}
