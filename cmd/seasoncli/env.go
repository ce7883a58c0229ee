package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/joho/godotenv"

	"github.com/ligun0805/season-mint/internal/config"
	"github.com/ligun0805/season-mint/internal/wallet"
)

// loadEnv reads .env, lets .env.local override it, then parses settings.
func loadEnv() config.Settings {
	_ = godotenv.Load()
	_ = godotenv.Overload(".env.local")
	return config.Load()
}

func printConfig(out io.Writer, cfg config.Settings, w *wallet.Wallet) {
	acct, hasKey := w.Account()
	n := w.Network()
	fmt.Fprintln(out, "=== CONFIG (.env) ===")
	fmt.Fprintln(out, "EXPECTED_CHAIN_ID :", cfg.ExpectedChainID)
	fmt.Fprintln(out, "Network           :", n.Name, "("+n.ChainIDHex()+")")
	fmt.Fprintln(out, "Endpoint          :", n.Endpoint())
	fmt.Fprintln(out, "CONTRACT_ADDRESS  :", orDash(cfg.ContractAddress))
	fmt.Fprintln(out, "PRIVATE_KEY       :", wallet.MaskHex(cfg.PrivateKeyHex))
	if hasKey {
		fmt.Fprintln(out, "  -> Account      :", acct.Hex())
	}
	fmt.Fprintln(out, "MINT_AMOUNT       :", cfg.MintAmount)
	if cfg.FromBlock > 0 {
		fmt.Fprintln(out, "FROM_BLOCK        :", cfg.FromBlock)
	}
	if len(cfg.Networks) > 0 {
		fmt.Fprintln(out, "NETWORKS          :", strings.Join(cfg.Networks, ", "))
	}
	fmt.Fprintln(out, "=====================")
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func explorerTxURL(n wallet.Network, txHash string) string {
	if n.Explorer == "" {
		return txHash
	}
	return fmt.Sprintf("%s/tx/%s", strings.TrimRight(n.Explorer, "/"), txHash)
}
