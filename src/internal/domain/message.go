package domain

type MessageLevel string

const (
	LevelCritical MessageLevel = "CRITICAL"
	LevelWarning  MessageLevel = "WARNING"
)

const CodeBirthDateMismatch = "BIRTH_DATE_MISMATCH"

// Message is attached to a result without failing it unless its level is
// CRITICAL.
type Message struct {
	Level   MessageLevel `json:"level"`
	Code    string       `json:"code"`
	Message string       `json:"message"`
}

func BirthDateMismatchWarning() Message {
	return Message{
		Level:   LevelWarning,
		Code:    CodeBirthDateMismatch,
		Message: "birth date differs from the one encoded in the IIN, please double-check; ignore this message if the data is correct",
	}
}
