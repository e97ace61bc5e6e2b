package tx

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/tx-signer/internal/util/command"
)

const (
	toFlag         string = "to"
	etherFlag      string = "ether"
	weiFlag        string = "wei"
	nonceFlag      string = "nonce"
	gasPriceFlag   string = "gas-price-wei"
	gasLimitFlag   string = "gas-limit"
	chainIDFlag    string = "chain-id"
	dataFlag       string = "data"
	passphraseFlag string = "prompt-passphrase"
)

func New() *cobra.Command {
	return command.NewSubcommandGroup("tx",
		newSign(),
		newSend(),
	)
}

func stringFlag(cmd *cobra.Command, name string) string {
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		log.Fatal().Err(err).Str("flag", name).Msg("Failed to read flag")
	}

	return value
}

func uint64Flag(cmd *cobra.Command, name string) uint64 {
	value, err := cmd.Flags().GetUint64(name)
	if err != nil {
		log.Fatal().Err(err).Str("flag", name).Msg("Failed to read flag")
	}

	return value
}
