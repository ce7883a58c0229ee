package main

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ligun0805/season-mint/internal/config"
	"github.com/ligun0805/season-mint/internal/dapp"
	"github.com/ligun0805/season-mint/internal/events"
	"github.com/ligun0805/season-mint/internal/logger"
)

func main() {
	hideConsoleWindow()

	_ = godotenv.Load()
	_ = godotenv.Overload(".env.local")
	cfg := config.Load()

	a := app.NewWithID("io.github.ligun0805.seasonmint")
	curTheme := makeTheme("dark", false)
	a.Settings().SetTheme(curTheme)

	w := a.NewWindow("Season Mint")
	w.Resize(fyne.NewSize(760, 560))

	log := logger.New(cfg.LogLevel, cfg.LogJSON, logWriter{}).With(zap.String("run", uuid.NewString()))
	ctx, cancel := context.WithCancel(context.Background())

	var da *dapp.App
	var pg *page
	pg = newPage(
		func() {
			go func() {
				if da != nil {
					da.Connect(ctx)
				}
			}()
		},
		func() { startMint(ctx, da, pg) },
	)

	ch := events.NewChannel(64)
	var closeSession func()
	s, err := dapp.OpenSession(cfg, dialogApprover(w), log)
	if err != nil {
		// no wallet: the guard has nothing to ask and the page stays blurred
		log.Error("wallet unavailable", zap.Error(err))
		pg.setStatus("No wallet: " + err.Error())
		da, _ = dapp.New(dapp.GuardOnly, dapp.Deps{View: pg, ExpectedChain: cfg.ExpectedChainID, Logger: log})
	} else {
		closeSession = s.Close
		opts := dapp.FullPage
		deps := s.Deps(pg)
		deps.Observers = append(deps.Observers, ch)
		if deps.Contract == nil {
			opts = dapp.GuardOnly
			pg.setStatus("CONTRACT_ADDRESS is empty, minting is off.")
		}
		if da, err = dapp.New(opts, deps); err != nil {
			log.Fatal("app setup", zap.Error(err))
		}
	}

	go da.Start(ctx)
	go drain(ctx, ch, pg)

	showLogs := func() { ensureLogWindow(a, pg.snapshot).Show() }
	themeBtn := widget.NewToolbarAction(theme.ColorPaletteIcon(), func() {
		mode := "light"
		if curTheme.(*seasonTheme).mode == "light" {
			mode = "dark"
		}
		curTheme = makeTheme(mode, curTheme.(*seasonTheme).compact)
		a.Settings().SetTheme(curTheme)
	})
	toolbar := widget.NewToolbar(
		widget.NewToolbarAction(theme.ViewRefreshIcon(), func() { go da.Check(ctx) }),
		widget.NewToolbarSpacer(),
		themeBtn,
		widget.NewToolbarAction(theme.ListIcon(), showLogs),
	)

	w.SetContent(container.NewBorder(toolbar, nil, nil, nil, pg.root))
	w.SetOnClosed(func() {
		cancel()
		logMu.Lock()
		lw := logWin
		logMu.Unlock()
		if lw != nil {
			lw.Close()
		}
		if closeSession != nil {
			closeSession()
		}
	})
	w.ShowAndRun()
}

// startMint runs the mint off the UI thread with the button locked.
func startMint(ctx context.Context, da *dapp.App, pg *page) {
	if da == nil || da.MintInFlight() {
		return
	}
	pg.setMinting(true)
	pg.setStatus("Confirm the mint in the wallet…")
	go func() {
		defer pg.setMinting(false)
		tx, err := da.Mint(ctx, 0)
		if err != nil {
			pg.setStatus("Mint failed: " + userMessage(err))
			return
		}
		pg.setStatus("Mint sent: " + tx.Hash().Hex())
	}()
}

func drain(ctx context.Context, ch *events.Channel, pg *page) {
	for {
		select {
		case n := <-ch.C():
			if n.Err != nil {
				pg.setStatus("Event stream: " + userMessage(n.Err))
				continue
			}
			pg.addMint(*n.Event)
		case <-ctx.Done():
			return
		}
	}
}
