package wallet

// Account is a derived signing identity.
type Account struct {
	Address string `json:"address"`
	Path    string `json:"path"`
}

// TransferRequest describes a value transfer to sign. Exactly one of
// AmountEther and AmountWei must be set. Zero-valued fee and chain fields
// fall back to the configured defaults.
type TransferRequest struct {
	To          string `json:"to"`
	AmountEther string `json:"amountEther,omitempty"`
	AmountWei   string `json:"amountWei,omitempty"`
	GasPriceWei string `json:"gasPriceWei,omitempty"`
	GasLimit    uint64 `json:"gasLimit,omitempty"`
	Nonce       uint64 `json:"nonce"`
	Data        []byte `json:"data,omitempty"`
	ChainID     uint64 `json:"chainID,omitempty"`
}

// SignedTransfer is the result of signing (and optionally broadcasting)
// a transfer.
type SignedTransfer struct {
	From           string `json:"from"`
	RawTransaction []byte `json:"rawTransaction"`
	TxHash         string `json:"txHash"`
}
