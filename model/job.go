package model

import (
	"time"
)

// Job tracks one uploaded workbook through processing.
type Job struct {
	ID          string             `json:"id"`
	Filename    string             `json:"filename"`
	Tenant      string             `json:"tenant"`
	Status      string             `json:"status"` // pending, processing, completed, failed
	Document    *ProcessedDocument `json:"document,omitempty"`
	ExcelObject string             `json:"-"`
	PDFObject   string             `json:"-"`
	ExcelURL    string             `json:"excel_url,omitempty"`
	PDFURL      string             `json:"pdf_url,omitempty"`
	ErrorMsg    string             `json:"error_msg,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// Job status constants
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)
