// internal/cmdutil/progress.go
package cmdutil

import (
	"io"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"sprint/internal/seed"
)

// LogObserver reports one INFO line per finished seed.
type LogObserver struct {
	Out   io.Writer
	Quiet bool
}

func (o LogObserver) SeedStarted(s seed.Seed, n int) {
	Infof(o.Out, o.Quiet, "seed %s: scanning %s s-mers", s, Count(n))
}

func (LogObserver) CollectionDone() {}

func (o LogObserver) SeedDone(s seed.Seed, found int) {
	Infof(o.Out, o.Quiet, "seed %s: %s HSPs", s, Count(found))
}

// ProgressObserver draws one bar per seed over its s-mer collections.
type ProgressObserver struct {
	p   *mpb.Progress
	bar *mpb.Bar
}

func NewProgressObserver(out io.Writer) *ProgressObserver {
	return &ProgressObserver{p: mpb.New(mpb.WithWidth(40), mpb.WithOutput(out))}
}

func (o *ProgressObserver) SeedStarted(s seed.Seed, n int) {
	name := "seed " + s.String() + ": "
	o.bar = o.p.AddBar(int64(n),
		mpb.PrependDecorators(
			decor.Name(name, decor.WC{W: len(name), C: decor.DindentRight}),
			decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.Percentage(decor.WC{W: 5}),
			decor.OnComplete(decor.Name(""), ". done"),
		),
	)
}

func (o *ProgressObserver) CollectionDone() {
	if o.bar != nil {
		o.bar.Increment()
	}
}

func (o *ProgressObserver) SeedDone(seed.Seed, int) {
	if o.bar != nil {
		o.bar.SetTotal(-1, true)
		o.bar = nil
	}
}

// Wait flushes the bars; call once after the run.
func (o *ProgressObserver) Wait() {
	if o.bar != nil {
		o.bar.Abort(false)
		o.bar = nil
	}
	o.p.Wait()
}
