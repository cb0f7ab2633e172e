package seal

import "errors"

var (
	ErrStateHashMissing     = errors.New("seal: the block hash must be restored before verifying")
	ErrSealVerifyFailed     = errors.New("seal: signature verification failed")
	ErrStateMismatch        = errors.New("seal: the sealed state does not describe the block")
	ErrKeyIDMissing         = errors.New("seal: the protected header has no key identifier")
	ErrIssuerNotProvided    = errors.New("seal: an issuer is required")
	ErrPublicKeyNotProvided = errors.New("seal: the signer public key is required")
)
