package tx

import (
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/tx-signer/internal/config"
	"github/chapool/tx-signer/internal/util"
	"github/chapool/tx-signer/internal/wallet"
	"github/chapool/tx-signer/internal/wallet/signer"
)

func newSign() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Signs a transfer without broadcasting it",
		Long:  "Derives the configured key, signs the transfer and prints the raw transaction and its hash as JSON.",
		Run: func(cmd *cobra.Command, _ []string) {
			runSign(cmd)
		},
	}

	addTransferFlags(cmd)

	return cmd
}

func runSign(cmd *cobra.Command) {
	svc, req := setupTransfer(cmd, nil)

	signed, err := svc.SignTransfer(cmd.Context(), req)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to sign transfer")
	}

	printSigned(signed)
}

func addTransferFlags(cmd *cobra.Command) {
	cmd.Flags().String(toFlag, "", "Recipient address (0x-prefixed)")
	cmd.Flags().String(etherFlag, "", "Amount in ether (decimal string)")
	cmd.Flags().String(weiFlag, "", "Amount in wei (integer string)")
	cmd.Flags().Uint64(nonceFlag, 0, "Transaction nonce")
	cmd.Flags().String(gasPriceFlag, "", "Gas price in wei (defaults from config)")
	cmd.Flags().Uint64(gasLimitFlag, 0, "Gas limit (defaults from config)")
	cmd.Flags().Uint64(chainIDFlag, 0, "Chain id (defaults from config)")
	cmd.Flags().String(dataFlag, "", "Call data as 0x-prefixed hex")
	cmd.Flags().Bool(passphraseFlag, false, "Prompt for an optional seed passphrase")

	if err := cmd.MarkFlagRequired(toFlag); err != nil {
		log.Fatal().Err(err).Msg("Failed to mark flag required")
	}
}

// setupTransfer resolves flags and config into a wallet service and a
// transfer request shared by the sign and send subcommands.
func setupTransfer(cmd *cobra.Command, broadcaster wallet.Broadcaster) (wallet.Service, *wallet.TransferRequest) {
	cfg := config.DefaultServiceConfigFromEnv()

	prompt, err := cmd.Flags().GetBool(passphraseFlag)
	if err != nil {
		log.Fatal().Err(err).Str("flag", passphraseFlag).Msg("Failed to read flag")
	}

	if prompt {
		passphrase, err := util.PromptPassword("Seed passphrase: ")
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to read passphrase")
		}

		cfg.Wallet.Passphrase = passphrase
	}

	req := &wallet.TransferRequest{
		To:          stringFlag(cmd, toFlag),
		AmountEther: stringFlag(cmd, etherFlag),
		AmountWei:   stringFlag(cmd, weiFlag),
		Nonce:       uint64Flag(cmd, nonceFlag),
		GasPriceWei: stringFlag(cmd, gasPriceFlag),
		GasLimit:    uint64Flag(cmd, gasLimitFlag),
		ChainID:     uint64Flag(cmd, chainIDFlag),
	}

	if data := stringFlag(cmd, dataFlag); data != "" {
		decoded, err := hexutil.Decode(data)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to decode call data")
		}

		req.Data = decoded
	}

	signerService, err := signer.NewService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create signer service")
	}

	svc, err := wallet.NewService(cfg, signerService, broadcaster)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create wallet service")
	}

	return svc, req
}

func printSigned(signed *wallet.SignedTransfer) {
	out, err := json.MarshalIndent(map[string]string{
		"from":           signed.From,
		"rawTransaction": hexutil.Encode(signed.RawTransaction),
		"txHash":         signed.TxHash,
	}, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to marshal signed transfer")
	}

	fmt.Println(string(out)) //nolint:forbidigo
}
