package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// DevelopmentMnemonic is a well-known throwaway phrase for local
	// development. Never fund accounts derived from it; production
	// deployments must override TXSIGNER_WALLET_MNEMONIC.
	DevelopmentMnemonic = "test test test test test test test test test test test test test junk"

	// DefaultDerivationPath is the standard first Ethereum account.
	DefaultDerivationPath = "m/44'/60'/0'/0/0"
)

// Wallet holds the key-material configuration for the derivation pipeline.
// Secrets are excluded from serialized output.
type Wallet struct {
	Mnemonic       string `json:"-"`
	Passphrase     string `json:"-"`
	DerivationPath string `json:"derivationPath"`
}

// Transfer holds chain and fee defaults applied when a request leaves them
// unset.
type Transfer struct {
	ChainID            uint64 `json:"chainID"`
	DefaultGasLimit    uint64 `json:"defaultGasLimit"`
	DefaultGasPriceWei string `json:"defaultGasPriceWei"`
}

// RPC configures the broadcast endpoints.
type RPC struct {
	URLs           []string      `json:"urls"`
	RequestTimeout time.Duration `json:"requestTimeout"`
}

// Logger configures structured logging output.
type Logger struct {
	Level              string `json:"level"`
	PrettyPrintConsole bool   `json:"prettyPrintConsole"`
}

// Service is the full service configuration, assembled from the environment
// by the CLI boundary and passed explicitly into the pipeline; the core
// carries no baked-in defaults.
type Service struct {
	Wallet   Wallet   `json:"wallet"`
	Transfer Transfer `json:"transfer"`
	RPC      RPC      `json:"rpc"`
	Logger   Logger   `json:"logger"`
}

// DefaultServiceConfigFromEnv returns the service config, with overrides
// read from TXSIGNER_*-prefixed environment variables
// (e.g. TXSIGNER_WALLET_MNEMONIC, TXSIGNER_RPC_URLS).
func DefaultServiceConfigFromEnv() Service {
	v := viper.New()
	v.SetEnvPrefix("TXSIGNER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("wallet.mnemonic", DevelopmentMnemonic)
	v.SetDefault("wallet.passphrase", "")
	v.SetDefault("wallet.derivation_path", DefaultDerivationPath)

	v.SetDefault("transfer.chain_id", uint64(1))
	v.SetDefault("transfer.default_gas_limit", uint64(21000))
	v.SetDefault("transfer.default_gas_price_wei", "1000000000")

	v.SetDefault("rpc.urls", "")
	v.SetDefault("rpc.request_timeout", 30*time.Second)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.pretty_print_console", false)

	return Service{
		Wallet: Wallet{
			Mnemonic:       v.GetString("wallet.mnemonic"),
			Passphrase:     v.GetString("wallet.passphrase"),
			DerivationPath: v.GetString("wallet.derivation_path"),
		},
		Transfer: Transfer{
			ChainID:            v.GetUint64("transfer.chain_id"),
			DefaultGasLimit:    v.GetUint64("transfer.default_gas_limit"),
			DefaultGasPriceWei: v.GetString("transfer.default_gas_price_wei"),
		},
		RPC: RPC{
			URLs:           ParseRPCURLs(v.GetString("rpc.urls")),
			RequestTimeout: v.GetDuration("rpc.request_timeout"),
		},
		Logger: Logger{
			Level:              v.GetString("logger.level"),
			PrettyPrintConsole: v.GetBool("logger.pretty_print_console"),
		},
	}
}

// ParseRPCURLs parses an RPC endpoint list (multiple URLs, comma-separated).
func ParseRPCURLs(rpcURL string) []string {
	if rpcURL == "" {
		return nil
	}

	urls := strings.Split(rpcURL, ",")
	result := make([]string, 0, len(urls))

	for _, url := range urls {
		url = strings.TrimSpace(url)
		if url != "" {
			result = append(result, url)
		}
	}

	return result
}
