// Package progressbar draws a single-line progress bar for long running
// loops such as learning episodes
package progressbar

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// ManualProgressBar tracks how many of a known number of iterations have
// completed. The caller advances it with Increment and redraws it with
// Display; nothing happens in the background.
type ManualProgressBar struct {
	out     io.Writer
	width   int
	done    int
	total   int
	started time.Time
}

// NewManualProgressBar returns a bar width characters wide that is full
// after total calls to Increment and draws to out
func NewManualProgressBar(out io.Writer, width, total int) *ManualProgressBar {
	if total < 1 {
		total = 1
	}
	return &ManualProgressBar{
		out:     out,
		width:   width,
		total:   total,
		started: time.Now(),
	}
}

// Increment records one completed iteration. Calls past the total are
// ignored.
func (p *ManualProgressBar) Increment() {
	if p.done < p.total {
		p.done++
	}
}

// Progress returns the completed fraction in [0, 1]
func (p *ManualProgressBar) Progress() float64 {
	return float64(p.done) / float64(p.total)
}

func (p *ManualProgressBar) String() string {
	filled := p.done * p.width / p.total
	return fmt.Sprintf("|%s%s| [%.2f%% | elapsed: %v]",
		strings.Repeat("█", filled), strings.Repeat(" ", p.width-filled),
		p.Progress()*100, time.Since(p.started).Truncate(time.Second))
}

// Display overwrites the current terminal line with the bar
func (p *ManualProgressBar) Display() {
	fmt.Fprintf(p.out, "\n\033[1A\033[K%v", p)
}

// Close ends the bar's line
func (p *ManualProgressBar) Close() {
	fmt.Fprintln(p.out)
}
