package main

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Shared UI state.
var (
	logWin fyne.Window

	logMu     sync.Mutex
	logBox    *widget.Entry
	logScroll *container.Scroll
)
