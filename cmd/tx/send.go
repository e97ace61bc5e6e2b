package tx

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/tx-signer/internal/config"
	"github/chapool/tx-signer/internal/wallet/broadcast"
)

func newSend() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send",
		Short: "Signs a transfer and broadcasts it",
		Long:  "Derives the configured key, signs the transfer and submits it to the configured RPC endpoints.",
		Run: func(cmd *cobra.Command, _ []string) {
			runSend(cmd)
		},
	}

	addTransferFlags(cmd)

	return cmd
}

func runSend(cmd *cobra.Command) {
	ctx := cmd.Context()
	cfg := config.DefaultServiceConfigFromEnv()

	if cfg.RPC.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.RPC.RequestTimeout)
		defer cancel()
	}

	client, err := broadcast.NewClient(ctx, cfg.RPC.URLs)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to RPC endpoints")
	}
	defer client.Close()

	svc, req := setupTransfer(cmd, client)

	signed, err := svc.SendTransfer(ctx, req)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to send transfer")
	}

	printSigned(signed)
}
