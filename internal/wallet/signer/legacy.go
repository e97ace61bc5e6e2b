package signer

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github/chapool/tx-signer/internal/wallet/keys"
	"github/chapool/tx-signer/internal/wallet/txn"
)

const (
	// replayProtectionOffset is the EIP-155 constant in
	// v = chainId*2 + 35 + recoveryId.
	replayProtectionOffset = 35

	// recoveryIDIndex is the position of the recovery id in the 65-byte
	// [R || S || V] signature produced by the curve implementation.
	recoveryIDIndex = 64
)

// signLegacyTransaction signs a replay-protected legacy transaction:
// hash the unsigned encoding, sign the digest, fold the recovery id into the
// chain-bound v value and re-encode the nine-tuple with v, r, s.
func (s *service) signLegacyTransaction(_ context.Context, req *SignRequest) (*SignResponse, error) {
	// Convert private key to ECDSA; an out-of-range scalar fails here,
	// before any hashing happens.
	ecdsaPrivateKey, err := crypto.ToECDSA(req.PrivateKey)
	if err != nil {
		return nil, errors.Wrap(err, "invalid private key")
	}

	toAddress, err := keys.ValidateAddress(req.To)
	if err != nil {
		return nil, errors.Wrap(err, "invalid recipient address")
	}

	// Verify from address matches private key when the caller supplied one
	if req.FromAddress != "" {
		fromAddress, err := keys.ValidateAddress(req.FromAddress)
		if err != nil {
			return nil, errors.Wrap(err, "invalid from address")
		}

		derivedAddress := crypto.PubkeyToAddress(ecdsaPrivateKey.PublicKey)
		if derivedAddress != fromAddress {
			return nil, errors.New("from address does not match private key")
		}
	}

	value, err := txn.ParseWei(req.Value)
	if err != nil {
		return nil, errors.Wrap(err, "invalid value")
	}

	gasPrice, err := txn.ParseWei(req.GasPrice)
	if err != nil {
		return nil, errors.Wrap(err, "invalid gas price")
	}

	tx := &txn.Transaction{
		Nonce:    req.Nonce,
		GasPrice: gasPrice,
		GasLimit: req.GasLimit,
		To:       toAddress,
		Value:    value,
		Data:     req.Data,
		ChainID:  req.ChainID,
	}

	unsignedBytes, err := tx.EncodeUnsigned()
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode unsigned transaction")
	}

	digest := crypto.Keccak256(unsignedBytes)
	if isZeroDigest(digest) {
		return nil, errors.New("degenerate all-zero transaction digest")
	}

	// Deterministic (RFC 6979-style) signature: identical inputs always
	// produce identical signed bytes.
	signature, err := crypto.Sign(digest, ecdsaPrivateKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign transaction digest")
	}

	recoveryID := signature[recoveryIDIndex]
	if recoveryID > 1 {
		return nil, errors.Errorf("unexpected recovery id %d", recoveryID)
	}

	v := replayProtectedV(req.ChainID, recoveryID)
	r := append([]byte(nil), signature[:txn.SignatureComponentLength]...)
	sComponent := append([]byte(nil), signature[txn.SignatureComponentLength:2*txn.SignatureComponentLength]...)

	signedBytes, err := tx.EncodeSigned(v, r, sComponent)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode signed transaction")
	}

	txHash := crypto.Keccak256(signedBytes)

	return &SignResponse{
		RawTransaction: signedBytes,
		TxHash:         hexutil.Encode(txHash),
		V:              v,
		R:              r,
		S:              sComponent,
	}, nil
}

// replayProtectedV folds the recovery id into the chain-bound value:
// v = chainId*2 + 35 + recoveryId.
func replayProtectedV(chainID uint64, recoveryID byte) *big.Int {
	v := new(big.Int).SetUint64(chainID)
	v.Lsh(v, 1)
	v.Add(v, big.NewInt(replayProtectionOffset+int64(recoveryID)))

	return v
}

func isZeroDigest(digest []byte) bool {
	for _, b := range digest {
		if b != 0 {
			return false
		}
	}

	return true
}
