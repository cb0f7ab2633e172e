package byteable

import (
	"errors"
	"fmt"

	dtcbor "github.com/datatrails/go-datatrails-common/cbor"
	"github.com/fxamacker/cbor/v2"
)

var (
	ErrCBOREncode = errors.New("byteable: value has no canonical cbor encoding")
)

var (
	canonicalEncMode cbor.EncMode
	canonicalDecMode cbor.DecMode
)

func init() {
	// sorted map keys, no indefinite lengths, no tags
	cfg, err := dtcbor.NewCBORConfig(
		dtcbor.NewDeterministicEncOpts(),
		dtcbor.NewDeterministicDecOpts(),
	)
	if err != nil {
		panic(err)
	}
	canonicalEncMode = cfg.EncMode
	canonicalDecMode = cfg.DecModeTagsForbidden
}

// CBOR carries a structured value together with its canonical encoding. The
// encoding is produced once, by NewCBOR, so Bytes is cheap and can not fail.
type CBOR[V any] struct {
	Value   V
	encoded []byte
}

// NewCBOR encodes v with the deterministic cbor options.
func NewCBOR[V any](v V) (CBOR[V], error) {
	encoded, err := canonicalEncMode.Marshal(v)
	if err != nil {
		return CBOR[V]{}, fmt.Errorf("%w: %v", ErrCBOREncode, err)
	}
	return CBOR[V]{Value: v, encoded: encoded}, nil
}

// DecodeCBOR is the inverse of NewCBOR. The canonical bytes are retained
// as given so that re-hashing a decoded leaf reproduces the original commitment.
func DecodeCBOR[V any](data []byte) (CBOR[V], error) {
	var v V
	if err := canonicalDecMode.Unmarshal(data, &v); err != nil {
		return CBOR[V]{}, err
	}
	encoded := make([]byte, len(data))
	copy(encoded, data)
	return CBOR[V]{Value: v, encoded: encoded}, nil
}

func (c CBOR[V]) Bytes() []byte {
	b := make([]byte, len(c.encoded))
	copy(b, c.encoded)
	return b
}
