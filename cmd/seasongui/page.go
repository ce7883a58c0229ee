package main

import (
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ligun0805/season-mint/internal/events"
)

// page is the mint screen. It implements guard.View: while blurred the
// content sits behind a veil and the mint button is disabled.
type page struct {
	root    *fyne.Container
	veil    *canvas.Rectangle
	prompt  *fyne.Container
	connect *widget.Button
	mint    *widget.Button
	status  *widget.Label
	feed    *widget.List

	mu      sync.Mutex
	blurred bool
	minting bool
	mints   []events.MintProcessed
}

// newPage builds the screen in its default state: blurred, prompt hidden.
func newPage(onConnect, onMint func()) *page {
	p := &page{blurred: true}

	p.connect = widget.NewButtonWithIcon("Connect to Polygon", theme.LoginIcon(), onConnect)
	p.connect.Importance = widget.HighImportance
	p.prompt = container.NewVBox(
		widget.NewLabelWithStyle("Wrong network", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Switch your wallet to continue.", fyne.TextAlignCenter, fyne.TextStyle{}),
		p.connect,
	)
	p.prompt.Hide()

	p.mint = widget.NewButtonWithIcon("Mint with crystals", theme.ConfirmIcon(), onMint)
	p.status = widget.NewLabel("")
	p.status.Wrapping = fyne.TextWrapWord

	p.feed = widget.NewList(
		func() int {
			p.mu.Lock()
			defer p.mu.Unlock()
			return len(p.mints)
		},
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			p.mu.Lock()
			if id >= len(p.mints) {
				p.mu.Unlock()
				return
			}
			m := p.mints[len(p.mints)-1-id] // newest first
			p.mu.Unlock()
			obj.(*widget.Label).SetText(mintLine(m))
		},
	)

	content := container.NewBorder(
		widget.NewCard("Season NFT", "Spend crystals to mint season tokens", container.NewVBox(p.mint, p.status)),
		nil, nil, nil,
		widget.NewCard("Processed mints", "", p.feed),
	)
	p.veil = canvas.NewRectangle(color.NRGBA{R: 10, G: 14, B: 20, A: 200})
	p.root = container.NewStack(content, p.veil, container.NewCenter(p.prompt))
	p.apply()
	return p
}

func (p *page) SetBlurred(b bool) {
	p.mu.Lock()
	p.blurred = b
	p.mu.Unlock()
	p.apply()
}

func (p *page) SetConnectPromptVisible(v bool) {
	if v {
		p.prompt.Show()
	} else {
		p.prompt.Hide()
	}
}

func (p *page) setMinting(v bool) {
	p.mu.Lock()
	p.minting = v
	p.mu.Unlock()
	p.apply()
}

func (p *page) setStatus(s string) { p.status.SetText(s) }

func (p *page) addMint(m events.MintProcessed) {
	p.mu.Lock()
	p.mints = append(p.mints, m)
	p.mu.Unlock()
	p.feed.Refresh()
}

func (p *page) snapshot() []events.MintProcessed {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]events.MintProcessed(nil), p.mints...)
}

// apply derives widget state from the flags.
func (p *page) apply() {
	p.mu.Lock()
	blurred, minting := p.blurred, p.minting
	p.mu.Unlock()

	if blurred {
		p.veil.Show()
	} else {
		p.veil.Hide()
	}
	if blurred || minting {
		p.mint.Disable()
	} else {
		p.mint.Enable()
	}
	if minting {
		p.mint.SetText("Minting…")
	} else {
		p.mint.SetText("Mint with crystals")
	}
}
