package seal

import (
	"bytes"
	"crypto"
	"fmt"

	dtcbor "github.com/datatrails/go-datatrails-common/cbor"
	dtcose "github.com/datatrails/go-datatrails-common/cose"
	"github.com/forestrie/go-hashchain/block"
	"github.com/forestrie/go-hashchain/byteable"
	"github.com/forestrie/go-hashchain/chainhash"
	"github.com/veraison/go-cose"
)

type publicKeyProvider interface {
	PublicKey() (crypto.PublicKey, cose.Algorithm, error)
}

// DecodeSeal decodes the BlockState from a sealed message. The state will not
// verify as is, see VerifySeal.
func DecodeSeal(
	codec dtcbor.CBORCodec, data []byte,
) (*dtcose.CoseSign1Message, BlockState, error) {
	signed, err := dtcose.NewCoseSign1MessageFromCBOR(data, newDecOptions()...)
	if err != nil {
		return nil, BlockState{}, err
	}

	var unverified BlockState
	if err = codec.UnmarshalInto(signed.Payload, &unverified); err != nil {
		return nil, BlockState{}, err
	}
	return signed, unverified, nil
}

// KeyIdentifier returns the kid the message was sealed with
func KeyIdentifier(signed *dtcose.CoseSign1Message) (string, error) {
	kid, err := signed.KidFromProtectedHeader()
	if err != nil || kid == "" {
		return "", ErrKeyIDMissing
	}
	return kid, nil
}

// VerifySeal applies the provided state to the signed message and verifies
// the signature. signed.Payload is replaced by the encoded state.
//
// Verification is a 3 step process:
//  1. DecodeSeal to obtain the unverified state. The hash is absent.
//  2. Recompute the hash of the block the state describes.
//  3. Set state.Hash and call this function.
//
// VerifyBlock does 2 and 3 for a block held by the caller.
func VerifySeal(
	codec dtcbor.CBORCodec, keyProvider publicKeyProvider,
	signed *dtcose.CoseSign1Message, state BlockState, external []byte,
) error {
	if len(state.Hash) == 0 {
		return ErrStateHashMissing
	}

	var err error
	signed.Payload, err = codec.MarshalCBOR(state)
	if err != nil {
		return err
	}
	if err = signed.VerifyWithProvider(keyProvider, external); err != nil {
		return fmt.Errorf("%w: %v", ErrSealVerifyFailed, err)
	}
	return nil
}

// VerifyBlock checks that the unverified state describes b, restores the
// block hash by recomputing it, and verifies the seal.
func VerifyBlock[T byteable.Byteable](
	codec dtcbor.CBORCodec, keyProvider publicKeyProvider,
	signed *dtcose.CoseSign1Message, state BlockState, b *block.Block[T], external []byte,
) error {

	hash := b.CalculateHash(chainhash.NewHasher())

	var prev []byte
	if b.PreviousHash != nil {
		prev = b.PreviousHash[:]
	}
	var chainRoot []byte
	if !b.ChainRoot.IsEmpty() {
		chainRoot = b.ChainRoot[:]
	}

	switch {
	case !bytes.Equal(state.PreviousHash, prev):
		return fmt.Errorf("%w: previous hash", ErrStateMismatch)
	case !bytes.Equal(state.MerkleRoot, b.MerkleRoot[:]):
		return fmt.Errorf("%w: merkle root", ErrStateMismatch)
	case !bytes.Equal(state.ChainRoot, chainRoot):
		return fmt.Errorf("%w: chain root", ErrStateMismatch)
	case state.Timestamp != b.Timestamp, state.Nonce != b.Nonce, state.Version != b.Version:
		return fmt.Errorf("%w: header fields", ErrStateMismatch)
	}

	state.Hash = hash.Bytes()
	return VerifySeal(codec, keyProvider, signed, state, external)
}
