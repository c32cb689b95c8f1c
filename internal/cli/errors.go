package cli

// Error codes for structured error responses. These codes are stable and
// can be relied upon by scripts.
const (
	// Note errors
	ErrNoteNotFound  = "NOTE_NOT_FOUND"
	ErrNoteAmbiguous = "NOTE_AMBIGUOUS"
	ErrNoteExists    = "NOTE_EXISTS"
	ErrNoteInvalid   = "NOTE_INVALID"

	// Template errors
	ErrTemplateInvalid  = "TEMPLATE_INVALID"
	ErrTemplateNotFound = "TEMPLATE_NOT_FOUND"

	// Directory/config errors
	ErrDirNotFound   = "DIR_NOT_FOUND"
	ErrConfigInvalid = "CONFIG_INVALID"

	// File errors
	ErrFileReadError  = "FILE_READ_ERROR"
	ErrFileWriteError = "FILE_WRITE_ERROR"

	// Input errors
	ErrInvalidInput = "INVALID_INPUT"

	// External command errors
	ErrCommandFailed = "COMMAND_FAILED"
)
