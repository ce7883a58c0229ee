package main

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ligun0805/season-mint/internal/events"
)

// ensureLogWindow creates or returns the log window.
func ensureLogWindow(a fyne.App, export func() []events.MintProcessed) fyne.Window {
	logMu.Lock()
	defer logMu.Unlock()
	if logWin != nil {
		return logWin
	}
	logWin = a.NewWindow("Logs")
	logWin.SetOnClosed(func() {
		logMu.Lock()
		logWin = nil
		logMu.Unlock()
	})
	exportBtn := widget.NewButtonWithIcon("Export mints JSON", theme.DocumentSaveIcon(), func() {
		saveMintsJSON(export())
	})
	bg := canvas.NewLinearGradient(color.NRGBA{12, 16, 24, 255}, color.NRGBA{20, 28, 40, 255}, 90)
	if logBox == nil {
		logBox = widget.NewMultiLineEntry()
		logBox.Disable()
		logBox.Wrapping = fyne.TextWrapWord
	}
	logScroll = container.NewVScroll(logBox)
	logScroll.SetMinSize(fyne.NewSize(800, 180))
	top := container.NewBorder(nil, nil, nil, exportBtn, widget.NewLabel("zap output"))
	logWin.SetContent(container.NewBorder(top, nil, nil, nil, container.NewStack(bg, logScroll)))
	logWin.Resize(fyne.NewSize(1000, 600))
	return logWin
}

// logWriter feeds zap console output into the log window.
type logWriter struct{}

func (logWriter) Write(p []byte) (int, error) {
	appendLogLine(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// appendLogLine adds a line to the log; lines written before the window
// exists are kept and shown once it opens.
func appendLogLine(s string) {
	logMu.Lock()
	defer logMu.Unlock()
	if logBox == nil {
		logBox = widget.NewMultiLineEntry()
		logBox.Disable()
		logBox.Wrapping = fyne.TextWrapWord
	}
	logBox.SetText(logBox.Text + s + "\n")
	if logScroll != nil {
		logScroll.ScrollToBottom()
	}
}

// saveMintsJSON writes the processed mints seen so far to a timestamped file.
func saveMintsJSON(mints []events.MintProcessed) {
	ts := time.Now().Format("20060102_150405")
	exe, _ := os.Executable()
	dir := filepath.Join(filepath.Dir(exe), "log_data")
	_ = os.MkdirAll(dir, 0o755)
	path := filepath.Join(dir, "mints_"+ts+".json")
	out := map[string]any{
		"generatedAt": time.Now().UTC().Format(time.RFC3339),
		"mints":       mints,
	}
	f, err := os.Create(path)
	if err != nil {
		fyne.CurrentApp().SendNotification(&fyne.Notification{Title: "Save error", Content: fmt.Sprintf("%v", err)})
		return
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	_ = enc.Encode(out)
	fyne.CurrentApp().SendNotification(&fyne.Notification{Title: "Saved", Content: path})
}
