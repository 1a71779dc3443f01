package tacit

import "errors"

// Sentinel errors for the snapshot codec. The widget state methods
// themselves never fail: out-of-range input clamps, invalid transitions
// no-op, and disabled-target interaction is suppressed.
var (
	ErrInvalidFormat    = errors.New("tacit: invalid snapshot format")
	ErrSignatureInvalid = errors.New("tacit: snapshot signature verification failed")
	ErrDecryptFailed    = errors.New("tacit: snapshot decryption failed")
	ErrKindMismatch     = errors.New("tacit: snapshot kind does not match widget")
)

// IsDecryptionError checks if err is a decryption or signature error.
func IsDecryptionError(err error) bool {
	return errors.Is(err, ErrDecryptFailed) || errors.Is(err, ErrSignatureInvalid)
}
