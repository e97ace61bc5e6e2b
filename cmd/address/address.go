package address

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/tx-signer/internal/config"
	"github/chapool/tx-signer/internal/util"
	"github/chapool/tx-signer/internal/wallet"
	"github/chapool/tx-signer/internal/wallet/signer"
)

const (
	pathFlag       string = "path"
	passphraseFlag string = "prompt-passphrase"
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "address",
		Short: "Prints the address of the configured account",
		Long:  "Derives the configured account from the mnemonic and prints its checksummed address.",
		Run: func(cmd *cobra.Command, _ []string) {
			runAddress(cmd)
		},
	}

	cmd.Flags().String(pathFlag, "", "Derivation path override (e.g. m/44'/60'/0'/0/1)")
	cmd.Flags().Bool(passphraseFlag, false, "Prompt for an optional seed passphrase")

	return cmd
}

func runAddress(cmd *cobra.Command) {
	ctx := cmd.Context()
	cfg := config.DefaultServiceConfigFromEnv()

	path, err := cmd.Flags().GetString(pathFlag)
	if err != nil {
		log.Fatal().Err(err).Str("flag", pathFlag).Msg("Failed to read flag")
	}

	if path != "" {
		cfg.Wallet.DerivationPath = path
	}

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

	signerService, err := signer.NewService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create signer service")
	}

	svc, err := wallet.NewService(cfg, signerService, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create wallet service")
	}

	account, err := svc.DeriveAccount(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to derive account")
	}

	fmt.Println(account.Address) //nolint:forbidigo
}
