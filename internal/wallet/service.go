package wallet

import (
	"context"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"github/chapool/tx-signer/internal/config"
	"github/chapool/tx-signer/internal/util"
	"github/chapool/tx-signer/internal/wallet/hdkey"
	"github/chapool/tx-signer/internal/wallet/keys"
	"github/chapool/tx-signer/internal/wallet/seed"
	"github/chapool/tx-signer/internal/wallet/signer"
	"github/chapool/tx-signer/internal/wallet/txn"
)

// Service drives the derivation, signing and broadcast pipeline.
type Service interface {
	// DeriveAccount derives the configured account and returns its address
	DeriveAccount(ctx context.Context) (*Account, error)

	// SignTransfer derives the configured key and signs a value transfer
	SignTransfer(ctx context.Context, req *TransferRequest) (*SignedTransfer, error)

	// SendTransfer signs a transfer and submits it to the configured endpoints
	SendTransfer(ctx context.Context, req *TransferRequest) (*SignedTransfer, error)
}

// Broadcaster submits a canonically encoded transaction to the network.
type Broadcaster interface {
	SendRawTransaction(ctx context.Context, rawTx string) (string, error)
}

type service struct {
	config      config.Service
	signer      signer.Service
	broadcaster Broadcaster
}

// NewService creates the pipeline service. The broadcaster may be nil when
// only offline operations are needed; SendTransfer then fails.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService(cfg config.Service, signerService signer.Service, broadcaster Broadcaster) (Service, error) {
	if cfg.Wallet.Mnemonic == "" {
		return nil, errors.New("mnemonic not configured")
	}

	if _, err := hdkey.ParsePath(cfg.Wallet.DerivationPath); err != nil {
		return nil, errors.Wrap(err, "invalid derivation path")
	}

	return &service{
		config:      cfg,
		signer:      signerService,
		broadcaster: broadcaster,
	}, nil
}

// DeriveAccount derives the configured account and returns its address
func (s *service) DeriveAccount(ctx context.Context) (*Account, error) {
	key, err := s.deriveKey()
	if err != nil {
		return nil, err
	}
	defer key.Zero()

	address, err := keys.AddressFromPrivateKey(key.PrivateKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute address")
	}

	return &Account{
		Address: address.Hex(),
		Path:    s.config.Wallet.DerivationPath,
	}, nil
}

// SignTransfer derives the configured key and signs a value transfer
func (s *service) SignTransfer(ctx context.Context, req *TransferRequest) (*SignedTransfer, error) {
	signReq, from, err := s.buildSignRequest(req)
	if err != nil {
		return nil, err
	}
	defer seed.Zero(signReq.PrivateKey)

	log := util.LogFromContext(ctx).With().
		Str("from", from).
		Str("to", req.To).
		Uint64("nonce", signReq.Nonce).
		Uint64("chain_id", signReq.ChainID).
		Logger()

	res, err := s.signer.SignTransaction(ctx, signReq)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign transfer")
	}

	log.Debug().Str("tx_hash", res.TxHash).Msg("Signed transfer")

	return &SignedTransfer{
		From:           from,
		RawTransaction: res.RawTransaction,
		TxHash:         res.TxHash,
	}, nil
}

// SendTransfer signs a transfer and submits it to the configured endpoints
func (s *service) SendTransfer(ctx context.Context, req *TransferRequest) (*SignedTransfer, error) {
	if s.broadcaster == nil {
		return nil, errors.New("no broadcaster configured")
	}

	signed, err := s.SignTransfer(ctx, req)
	if err != nil {
		return nil, err
	}

	log := util.LogFromContext(ctx).With().
		Str("tx_hash", signed.TxHash).
		Logger()

	remoteHash, err := s.broadcaster.SendRawTransaction(ctx, hexutil.Encode(signed.RawTransaction))
	if err != nil {
		return nil, errors.Wrap(err, "failed to broadcast transfer")
	}

	if remoteHash != signed.TxHash {
		log.Warn().Str("remote_tx_hash", remoteHash).Msg("Node reported a different transaction hash")
	}

	log.Info().Msg("Broadcast transfer")

	return signed, nil
}

// buildSignRequest resolves amounts and fee defaults into a signer request.
// The returned private key must be zeroed by the caller.
func (s *service) buildSignRequest(req *TransferRequest) (*signer.SignRequest, string, error) {
	if req == nil {
		return nil, "", errors.New("transfer request is required")
	}

	value, err := resolveAmount(req)
	if err != nil {
		return nil, "", err
	}

	chainID := req.ChainID
	if chainID == 0 {
		chainID = s.config.Transfer.ChainID
	}

	gasLimit := req.GasLimit
	if gasLimit == 0 {
		gasLimit = s.config.Transfer.DefaultGasLimit
	}

	gasPrice := req.GasPriceWei
	if gasPrice == "" {
		gasPrice = s.config.Transfer.DefaultGasPriceWei
	}

	key, err := s.deriveKey()
	if err != nil {
		return nil, "", err
	}

	address, err := keys.AddressFromPrivateKey(key.PrivateKey)
	if err != nil {
		key.Zero()
		return nil, "", errors.Wrap(err, "failed to compute sender address")
	}

	privateKey := make([]byte, len(key.PrivateKey))
	copy(privateKey, key.PrivateKey)
	key.Zero()

	return &signer.SignRequest{
		ChainID:     chainID,
		Nonce:       req.Nonce,
		To:          req.To,
		Value:       value,
		GasPrice:    gasPrice,
		GasLimit:    gasLimit,
		Data:        req.Data,
		FromAddress: address.Hex(),
		PrivateKey:  privateKey,
	}, address.Hex(), nil
}

// deriveKey runs mnemonic -> seed -> path derivation. The caller owns the
// returned key and must zero it.
func (s *service) deriveKey() (*hdkey.ExtendedKey, error) {
	walletSeed := seed.Derive(s.config.Wallet.Mnemonic, s.config.Wallet.Passphrase)
	defer seed.Zero(walletSeed)

	key, err := hdkey.DerivePath(s.config.Wallet.DerivationPath, walletSeed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive key")
	}

	return key, nil
}

func resolveAmount(req *TransferRequest) (string, error) {
	switch {
	case req.AmountEther != "" && req.AmountWei != "":
		return "", errors.New("amountEther and amountWei are mutually exclusive")
	case req.AmountWei != "":
		return req.AmountWei, nil
	case req.AmountEther != "":
		wei, err := txn.ParseEther(req.AmountEther)
		if err != nil {
			return "", err
		}
		return wei.String(), nil
	default:
		return "0", nil
	}
}
