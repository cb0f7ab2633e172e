package seal

import (
	"crypto/ecdsa"
	"crypto/rand"

	dtcbor "github.com/datatrails/go-datatrails-common/cbor"
	dtcose "github.com/datatrails/go-datatrails-common/cose"
	"github.com/veraison/go-cose"
)

// Sealer produces COSE Sign1 signatures over block states.
type Sealer struct {
	issuer    string
	cborCodec dtcbor.CBORCodec
}

func NewSealer(issuer string, cborCodec dtcbor.CBORCodec) (Sealer, error) {
	if issuer == "" {
		return Sealer{}, ErrIssuerNotProvided
	}
	return Sealer{issuer: issuer, cborCodec: cborCodec}, nil
}

// Sign1 signs the provided state and returns the encoded Sign1 message.
//
// The protected header carries the issuer, subject and the signer's public
// key as a CWT cnf claim, so a seal can be checked with
// dtcose.NewCWTPublicKeyProvider. The block hash is signed but then removed
// from the published payload, a verifier must recompute it from the block.
func (s Sealer) Sign1(
	coseSigner cose.Signer, keyIdentifier string, publicKey *ecdsa.PublicKey,
	subject string, state BlockState, external []byte,
) ([]byte, error) {

	if publicKey == nil {
		return nil, ErrPublicKeyNotProvided
	}

	payload, err := s.cborCodec.MarshalCBOR(state)
	if err != nil {
		return nil, err
	}

	headers := cose.Headers{
		Protected: cose.ProtectedHeader{
			cose.HeaderLabelKeyID: []byte(keyIdentifier),
			dtcose.HeaderLabelCWTClaims: dtcose.NewCNFClaim(
				s.issuer, subject, keyIdentifier, coseSigner.Algorithm(), *publicKey),
		},
	}
	headers.Protected.SetAlgorithm(coseSigner.Algorithm())

	msg := cose.Sign1Message{
		Headers: headers,
		Payload: payload,
	}
	if err = msg.Sign(rand.Reader, external, coseSigner); err != nil {
		return nil, err
	}

	state.Hash = nil
	if msg.Payload, err = s.cborCodec.MarshalCBOR(state); err != nil {
		return nil, err
	}
	return msg.MarshalCBOR()
}
