package main

import (
	"context"
	"fmt"
	"io"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"

	"github.com/ligun0805/season-mint/internal/dapp"
	"github.com/ligun0805/season-mint/internal/guard"
)

// printNetworkState prints the guard verdict plus what the node reports about
// fees, the account balance and the oracle progress.
func printNetworkState(ctx context.Context, out io.Writer, s *dapp.Session, st guard.State) {
	n := s.Wallet.Network()
	verdict := "OK"
	if !st.OnExpected {
		verdict = "WRONG NETWORK"
	}
	fmt.Fprintf(out, "[net] chain: %s (%s), expected %s -> %s\n", orDash(st.ChainID), n.Name, st.Expected, verdict)
	if st.Err != "" {
		fmt.Fprintln(out, "[net] chain query error:", st.Err)
		return
	}

	ec, err := s.Wallet.Backend(ctx)
	if err != nil {
		fmt.Fprintln(out, "[net] dial error:", friendlyErr(err))
		return
	}
	h, err := ec.HeaderByNumber(ctx, nil)
	if err != nil {
		fmt.Fprintln(out, "[net] header error:", friendlyErr(err))
		return
	}
	baseFee := big.NewInt(0)
	if h.BaseFee != nil {
		baseFee = new(big.Int).Set(h.BaseFee)
	}
	fmt.Fprintf(out, "[net] block %s, baseFee(now): %s gwei\n", h.Number, formatGwei(baseFee))
	if tip, err := ec.SuggestGasTipCap(ctx); err == nil {
		fmt.Fprintf(out, "[net] suggested tip: %s gwei (floor %d gwei)\n", formatGwei(tip), n.MinTipGwei)
	}

	if acct, ok := s.Wallet.Account(); ok {
		if bal, err := ec.BalanceAt(ctx, acct, nil); err == nil {
			fmt.Fprintf(out, "[net] %s balance: %s\n", acct.Hex(), formatEther(bal))
		}
	}
	if s.Contract != nil {
		nonce, err := s.Contract.LastProcessedNonce(&bind.CallOpts{Context: ctx})
		if err != nil {
			fmt.Fprintln(out, "[net] lastProcessedNonce error:", friendlyErr(err))
		} else {
			fmt.Fprintln(out, "[net] oracle lastProcessedNonce:", nonce.String())
		}
	}
}
