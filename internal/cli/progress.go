package cli

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

// newProgress returns a progress callback drawing a bar on stderr, or nil
// when stderr is not a terminal or quiet is set.
func newProgress(description string, quiet bool) func(done, total int) {
	if quiet || !term.IsTerminal(int(os.Stderr.Fd())) {
		return nil
	}
	return progressTo(os.Stderr, description)
}

func progressTo(w io.Writer, description string) func(done, total int) {
	var bar *progressbar.ProgressBar
	var barMu sync.Mutex
	var startTime time.Time

	return func(done, total int) {
		barMu.Lock()
		defer barMu.Unlock()

		if bar == nil {
			startTime = time.Now()
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(w),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]"+description+"[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(w)
				}),
			)
		}

		bar.Set(done)

		if done > 0 && done < total {
			elapsed := time.Since(startTime)
			rate := float64(done) / elapsed.Seconds()
			if rate > 0 {
				eta := time.Duration(float64(total-done)/rate) * time.Second
				bar.Describe(fmt.Sprintf("[cyan]%s[reset] ETA: %s", description, formatDuration(eta)))
			}
		}
	}
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return "<1s"
	}
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh%dm", h, m)
}
