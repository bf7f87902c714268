package model

// LogRecord represents a single parsed log line.
type LogRecord struct {
	Date    string `json:"date"`    // YYYY-MM-DD
	Time    string `json:"time"`    // HH:MM:SS
	Level   string `json:"level"`   // literal token, case preserved
	Message string `json:"message"` // rest of the line
}
