package progress_test

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/programme-lv/exsubs/internal/progress"
	"github.com/stretchr/testify/assert"
)

func TestBarRendersDescriptionAndFinishes(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	var buf bytes.Buffer
	bar := progress.New(&buf, "Parsing leap", 4)
	for range 4 {
		bar.Add(1)
	}
	bar.Finish()

	out := buf.String()
	assert.Contains(t, out, "Parsing leap")
	assert.Contains(t, out, "100")
}

func TestBarWithZeroTotalFinishes(t *testing.T) {
	var buf bytes.Buffer
	bar := progress.New(&buf, "empty", 0)
	bar.Finish()
	assert.Contains(t, buf.String(), "empty")
}

func TestBarOvershootFinishes(t *testing.T) {
	var buf bytes.Buffer
	bar := progress.New(&buf, "overshoot", 2)
	bar.Add(3)
	bar.Finish()
	assert.Contains(t, buf.String(), "overshoot")
}

func TestNilBarIsNoop(t *testing.T) {
	var bar *progress.Bar
	assert.NotPanics(t, func() {
		bar.Add(1)
		bar.Finish()
	})
}
