package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/ligun0805/season-mint/internal/wallet"
)

var stdin = bufio.NewReader(os.Stdin)

func readLine(r *bufio.Reader, prompt string) string {
	fmt.Print(prompt)
	t, _ := r.ReadString('\n')
	return strings.TrimSpace(t)
}

func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	b, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

func yes(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "y" || s == "yes"
}

// terminalApprover plays the wallet popup on the terminal.
func terminalApprover() wallet.Approver {
	return wallet.ApproverFunc(func(_ context.Context, req wallet.ApprovalRequest) (bool, error) {
		switch req.Method {
		case wallet.MethodRequestAccounts:
			return yes(readLine(stdin, fmt.Sprintf("Connect account %s to this app? [y/N]: ", req.Account.Hex()))), nil
		case wallet.MethodSwitchChain:
			return yes(readLine(stdin, fmt.Sprintf("Switch network to %s (%s)? [y/N]: ", req.Network.Name, req.Network.ChainIDHex()))), nil
		}
		return yes(readLine(stdin, fmt.Sprintf("Approve %s? [y/N]: ", req.Method))), nil
	})
}

// guardView prints what the page would show.
type guardView struct {
	out io.Writer
}

func (v guardView) SetBlurred(b bool) {
	if b {
		fmt.Fprintln(v.out, "[guard] content blurred (wrong network)")
	} else {
		fmt.Fprintln(v.out, "[guard] content unlocked")
	}
}

func (v guardView) SetConnectPromptVisible(visible bool) {
	if visible {
		fmt.Fprintln(v.out, "[guard] run `seasoncli connect` to switch network")
	}
}
