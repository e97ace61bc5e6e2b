package signer

import (
	"context"
	"math/big"
)

// Service provides transaction signing functionality
type Service interface {
	// SignTransaction signs a replay-protected transaction (EIP-155)
	SignTransaction(ctx context.Context, req *SignRequest) (*SignResponse, error)
}

// SignRequest represents a request to sign a transaction
type SignRequest struct {
	ChainID     uint64 // Chain ID (1 for Ethereum mainnet, 137 for Polygon, etc.)
	Nonce       uint64 // Transaction nonce
	To          string // Recipient address (hex string with 0x prefix)
	Value       string // Amount in wei (as string to avoid precision loss)
	GasPrice    string // Gas price in wei, as string
	GasLimit    uint64 // Gas limit
	Data        []byte // Transaction data (for contract calls)
	FromAddress string // Optional; verified against the private key when set
	PrivateKey  []byte // 32-byte scalar; caller must clear after use
}

// SignResponse represents a signed transaction
type SignResponse struct {
	RawTransaction []byte   // Canonically encoded signed transaction
	TxHash         string   // Transaction id: hash of the signed bytes (hex string with 0x prefix)
	V              *big.Int // Replay-protected recovery value
	R              []byte   // 32-byte signature component
	S              []byte   // 32-byte signature component
}
