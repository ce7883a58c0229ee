package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"github.com/ligun0805/season-mint/internal/events"
	"github.com/ligun0805/season-mint/internal/mint"
	"github.com/ligun0805/season-mint/internal/wallet"
)

func short(s string) string {
	if len(s) <= 16 {
		return s
	}
	return s[:10] + "…" + s[len(s)-5:]
}

func mintLine(m events.MintProcessed) string {
	return fmt.Sprintf("#%s  %s  tokens [%s]  block %d",
		m.NonceString(), short(m.User.Hex()), strings.Join(m.TokenIDStrings(), ", "), m.BlockNumber)
}

// userMessage turns a mint or switch failure into status text.
func userMessage(err error) string {
	switch {
	case wallet.IsUserRejected(err):
		return "Request rejected in the wallet."
	case wallet.HasCode(err, wallet.CodeUnauthorized):
		return "No account available. Set PRIVATE_KEY."
	case errors.Is(err, mint.ErrNoAccounts):
		return "The wallet returned no accounts."
	case errors.Is(err, mint.ErrMintInFlight):
		return "A mint is already being sent."
	case strings.Contains(strings.ToLower(err.Error()), "insufficient funds"):
		return "Not enough POL for gas."
	}
	return err.Error()
}

// dialogApprover plays the wallet popup as a confirm dialog.
func dialogApprover(w fyne.Window) wallet.Approver {
	return wallet.ApproverFunc(func(ctx context.Context, req wallet.ApprovalRequest) (bool, error) {
		title, msg := "Wallet", fmt.Sprintf("Approve %s?", req.Method)
		switch req.Method {
		case wallet.MethodRequestAccounts:
			title, msg = "Connect account", fmt.Sprintf("Connect %s to Season Mint?", req.Account.Hex())
		case wallet.MethodSwitchChain:
			title, msg = "Switch network", fmt.Sprintf("Allow this app to switch the network to %s (%s)?", req.Network.Name, req.Network.ChainIDHex())
		}
		res := make(chan bool, 1)
		dialog.ShowConfirm(title, msg, func(ok bool) { res <- ok }, w)
		select {
		case ok := <-res:
			return ok, nil
		case <-ctx.Done():
			return false, ctx.Err()
		}
	})
}
