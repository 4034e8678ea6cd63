package wordlist

// Common errors
var (
	ErrUnknownFormat = &Error{"unknown word list format"}
	ErrFileTooLarge  = &Error{"word list file too large"}
	ErrTrailingData  = &Error{"unexpected data after word list"}
)

// Error represents a word list error
type Error struct {
	msg string
}

func (e *Error) Error() string {
	return e.msg
}
