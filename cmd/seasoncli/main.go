package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ligun0805/season-mint/internal/config"
	"github.com/ligun0805/season-mint/internal/dapp"
	"github.com/ligun0805/season-mint/internal/events"
	"github.com/ligun0805/season-mint/internal/feed"
	"github.com/ligun0805/season-mint/internal/guard"
	"github.com/ligun0805/season-mint/internal/logger"
	"github.com/ligun0805/season-mint/internal/oracle"
	"github.com/ligun0805/season-mint/internal/wallet"
)

const usage = `usage: seasoncli <command> [flags]

commands:
  status                 check the wallet network and print node state
  connect                switch the wallet to EXPECTED_CHAIN_ID
  mint [-amount N] [-wait]
                         send requestMintCrystals from the wallet account
  watch [-from BLOCK]    print MintProcessed events
  serve [-addr :8089]    run guard and listener behind the websocket feed
  oracle [-max-amount N] answer MintRequest events with mint calls
`

var errUsage = errors.New("usage")

// cli carries what every command needs.
type cli struct {
	cfg        config.Settings
	log        *zap.Logger
	out        io.Writer
	readKey    func(prompt string) (string, error)
	walletOpts []wallet.Option
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) < 1 {
		fmt.Fprint(os.Stderr, usage)
		return 2
	}
	c := &cli{cfg: loadEnv(), out: os.Stdout, readKey: readPassword}
	c.log = logger.New(c.cfg.LogLevel, c.cfg.LogJSON).With(zap.String("run", uuid.NewString()))
	defer func() { _ = c.log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := c.dispatch(ctx, args[0], args[1:])
	switch {
	case errors.Is(err, errUsage):
		return 2
	case err != nil:
		fmt.Fprintln(os.Stderr, "Error:", friendlyErr(err))
		return 1
	}
	return 0
}

func (c *cli) dispatch(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "status":
		return c.runStatus(ctx)
	case "connect":
		return c.runConnect(ctx)
	case "mint":
		return c.runMint(ctx, args)
	case "watch":
		return c.runWatch(ctx, args)
	case "serve":
		return c.runServe(ctx, args)
	case "oracle":
		return c.runOracle(ctx, args)
	case "help", "-h", "--help":
		fmt.Fprint(c.out, usage)
		return nil
	}
	fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", cmd, usage)
	return errUsage
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return errUsage
		}
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	return nil
}

// openSession builds the wallet; needKey prompts for a private key when
// PRIVATE_KEY is not set.
func (c *cli) openSession(needKey bool) (*dapp.Session, error) {
	cfg := c.cfg
	if needKey && strings.TrimSpace(cfg.PrivateKeyHex) == "" {
		key, err := c.readKey("Enter private key (hex): ")
		if err != nil {
			return nil, fmt.Errorf("read private key: %w", err)
		}
		cfg.PrivateKeyHex = key
	}
	approver := terminalApprover()
	if cfg.AutoApprove {
		approver = wallet.AutoApprove
	}
	s, err := dapp.OpenSession(cfg, approver, c.log, c.walletOpts...)
	if err != nil {
		return nil, err
	}
	printConfig(c.out, cfg, s.Wallet)
	return s, nil
}

func (c *cli) runStatus(ctx context.Context) error {
	s, err := c.openSession(false)
	if err != nil {
		return err
	}
	defer s.Close()

	app, err := dapp.New(dapp.GuardOnly, s.Deps(guardView{out: c.out}))
	if err != nil {
		return err
	}
	st, err := app.Check(ctx)
	if err != nil {
		return err
	}
	printNetworkState(ctx, c.out, s, st)
	return nil
}

func (c *cli) runConnect(ctx context.Context) error {
	s, err := c.openSession(false)
	if err != nil {
		return err
	}
	defer s.Close()

	app, err := dapp.New(dapp.GuardOnly, s.Deps(guardView{out: c.out}))
	if err != nil {
		return err
	}
	if !app.Connect(ctx) {
		return fmt.Errorf("could not switch to %s", c.cfg.ExpectedChainID)
	}
	st, _ := app.Check(ctx)
	printNetworkState(ctx, c.out, s, st)
	return nil
}

func (c *cli) runMint(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("mint", flag.ContinueOnError)
	amount := fs.Int64("amount", c.cfg.MintAmount, "crystals amount passed to requestMintCrystals")
	wait := fs.Bool("wait", false, "wait for inclusion and print the request nonce")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	s, err := c.openSession(true)
	if err != nil {
		return err
	}
	defer s.Close()
	if s.Contract == nil {
		return errors.New("CONTRACT_ADDRESS is empty")
	}

	app, err := dapp.New(dapp.Options{Guard: true, Mint: true}, s.Deps(guardView{out: c.out}))
	if err != nil {
		return err
	}
	if st, _ := app.Check(ctx); !st.OnExpected {
		if !app.Connect(ctx) {
			return fmt.Errorf("wallet is not on %s", c.cfg.ExpectedChainID)
		}
	}

	tx, err := app.Mint(ctx, *amount)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, "[mint] sent:", explorerTxURL(s.Wallet.Network(), tx.Hash().Hex()))
	if !*wait {
		return nil
	}

	waitCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()
	fmt.Fprintln(c.out, "[mint] waiting for inclusion…")
	req, err := app.Minter().WaitMined(waitCtx, s.Wallet.ContractBackend(), tx)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "[mint] included in block %d: nonce=%s crystals=%s amount=%s\n",
		req.BlockNumber, req.Nonce, req.Crystals, req.Amount)
	fmt.Fprintln(c.out, "[mint] run `seasoncli watch` to see the oracle's MintProcessed")
	return nil
}

func (c *cli) runWatch(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	from := fs.Uint64("from", c.cfg.FromBlock, "replay events from this block first (0 = live only)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	c.cfg.FromBlock = *from

	s, err := c.openSession(false)
	if err != nil {
		return err
	}
	defer s.Close()
	if s.Contract == nil {
		return errors.New("CONTRACT_ADDRESS is empty")
	}

	ch := events.NewChannel(64)
	deps := s.Deps(nil)
	deps.Observers = append(deps.Observers, ch)
	app, err := dapp.New(dapp.Options{Listen: true}, deps)
	if err != nil {
		return err
	}

	go printNotifications(ctx, c.out, ch)
	fmt.Fprintln(c.out, "[watch] listening for MintProcessed, Ctrl+C to stop")
	app.Start(ctx)
	return nil
}

func printNotifications(ctx context.Context, out io.Writer, ch *events.Channel) {
	for {
		select {
		case n := <-ch.C():
			if n.Err != nil {
				fmt.Fprintln(out, "[watch] error:", friendlyErr(n.Err))
				continue
			}
			m := n.Event
			fmt.Fprintf(out, "[watch] Mint processed for user %s with tokenIds %s and nonce %s\n",
				m.User.Hex(), formatIDs(m.TokenIDStrings()), m.NonceString())
		case <-ctx.Done():
			return
		}
	}
}

func (c *cli) runServe(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	addr := fs.String("addr", c.cfg.FeedAddr, "feed listen address")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	c.cfg.AutoApprove = true // nobody is at the terminal to answer prompts
	s, err := c.openSession(false)
	if err != nil {
		return err
	}
	defer s.Close()

	hub := feed.NewHub(feed.WithLogger(c.log.Named("feed")))
	deps := s.Deps(nil)
	deps.Observers = append(deps.Observers, hub)
	deps.StateObservers = []guard.StateObserver{hub}

	opts := dapp.GuardOnly
	if deps.Events != nil {
		opts.Listen = true
	}
	app, err := dapp.New(opts, deps)
	if err != nil {
		return err
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		app.Start(ctx)
	}()
	err = hub.ListenAndServe(ctx, *addr)
	wg.Wait()
	return err
}

func (c *cli) runOracle(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("oracle", flag.ContinueOnError)
	maxAmount := fs.Int64("max-amount", 50, "skip requests asking for more tokens than this")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	c.cfg.AutoApprove = true
	s, err := c.openSession(true)
	if err != nil {
		return err
	}
	defer s.Close()
	if s.Contract == nil {
		return errors.New("CONTRACT_ADDRESS is empty")
	}
	acct, _ := s.Wallet.Account()
	if err := s.Wallet.SwitchChain(ctx, c.cfg.ExpectedChainID); err != nil {
		return err
	}

	o := oracle.New(acct, s.Contract, oracle.NewRequestSource(&s.Contract.SeasonNFTFilterer), s.Wallet, s.Wallet.ContractBackend(),
		oracle.WithLogger(c.log.Named("oracle")),
		oracle.WithMaxAmount(*maxAmount),
	)
	fmt.Fprintf(c.out, "[oracle] minting as %s on %s, Ctrl+C to stop\n", acct.Hex(), s.Wallet.Network().Name)
	return o.Run(ctx)
}
