package domain

import "errors"

// Not found errors
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrModelNotFound   = errors.New("model not found")
	ErrAuditNotFound   = errors.New("audit not found")
	ErrMetricsNotFound = errors.New("fairness metrics not found")
	ErrReportNotFound  = errors.New("report not found")
	ErrFileNotFound    = errors.New("uploaded file not found")
)

// Validation errors
var (
	ErrInvalidModelName     = errors.New("model name is required")
	ErrInvalidReportTitle   = errors.New("report title is required")
	ErrInvalidFilename      = errors.New("filename is required")
	ErrNegativeFileSize     = errors.New("file size must be non-negative")
	ErrInvalidProgress      = errors.New("progress must be between 0 and 100")
	ErrInvalidFairnessScore = errors.New("fairness score must be between 0.0 and 1.0")
	ErrInvalidUsername      = errors.New("username is required")
)

// Conflict / state errors
var (
	ErrUsernameTaken        = errors.New("username already exists")
	ErrMetricsAlreadyExist  = errors.New("fairness metrics already recorded for this audit")
	ErrAuditAlreadyTerminal = errors.New("audit is already in a terminal state")
	ErrInvalidTransition    = errors.New("invalid audit status transition")
)
