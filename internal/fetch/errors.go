package fetch

import "errors"

var (
	// ErrBlocked is returned when a candidate URL could not be retrieved.
	// Recoverable: the orchestrator moves on to the next candidate.
	ErrBlocked = errors.New("candidate document could not be retrieved")
	// ErrTooShort is returned when a fetched document yields less text than
	// the minimum usable length. Indistinguishable from a blocked response,
	// so it is treated the same way.
	ErrTooShort = errors.New("fetched document text below minimum length")
	// ErrPDFNoText is returned when a PDF contains no extractable text
	ErrPDFNoText = errors.New("pdf contains no extractable text, likely a scanned image")
	// ErrPDFEncrypted is returned for password-protected PDFs
	ErrPDFEncrypted = errors.New("pdf is password-protected and cannot be scanned")
)
