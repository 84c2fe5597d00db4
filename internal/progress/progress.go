// Package progress draws progress bars on a terminal stream using
// go-pretty's progress writer, one tracker per bar.
//
// All methods are safe to call on a nil *Bar, which draws nothing.
package progress

import (
	"io"
	"time"

	"github.com/fatih/color"
	pretty "github.com/jedib0t/go-pretty/v6/progress"
)

const (
	trackerLength   = 40
	updateFrequency = 50 * time.Millisecond
)

type Bar struct {
	pw      pretty.Writer
	tracker *pretty.Tracker
}

// New starts rendering a bar on w and returns once rendering is running.
func New(w io.Writer, description string, total int64) *Bar {
	pw := pretty.NewWriter()
	pw.SetOutputWriter(w)
	pw.SetAutoStop(true)
	pw.SetTrackerLength(trackerLength)
	pw.SetUpdateFrequency(updateFrequency)
	pw.SetStyle(pretty.StyleDefault)
	pw.Style().Visibility.ETA = false
	pw.Style().Visibility.Time = true
	pw.Style().Visibility.Value = true
	if !color.NoColor {
		pw.Style().Colors = pretty.StyleColorsExample
	}

	tracker := &pretty.Tracker{
		Message: description,
		Total:   total,
		Units:   pretty.UnitsDefault,
	}
	pw.AppendTracker(tracker)

	go pw.Render()
	waitRendering(pw, true)
	return &Bar{pw: pw, tracker: tracker}
}

func (b *Bar) Add(n int64) {
	if b == nil {
		return
	}
	b.tracker.Increment(n)
}

// Finish marks the tracker done and blocks until the final frame is written.
func (b *Bar) Finish() {
	if b == nil {
		return
	}
	b.tracker.MarkAsDone()
	waitRendering(b.pw, false)
}

func waitRendering(pw pretty.Writer, running bool) {
	for pw.IsRenderInProgress() != running {
		time.Sleep(time.Millisecond)
	}
}
