package models

// NoticeLevel is the severity of a viewer-facing notice
type NoticeLevel string

const (
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
)

// Notice is a non-fatal message shown at the top of the page
type Notice struct {
	Level   NoticeLevel `json:"level"`
	Message string      `json:"message"`
}
