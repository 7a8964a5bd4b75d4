package generate

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/assetnote/brutegen/pkg/brutegen"
	"github.com/schollz/progressbar/v3"
	"github.com/vbauerster/mpb/v6"
	"github.com/vbauerster/mpb/v6/decor"
)

// Finisher is a progress bar that has to be closed once the run is over
type Finisher interface {
	brutegen.ProgressBar
	Finish()
}

// TotalProgress draws a single bar for the whole run
type TotalProgress struct {
	Records *progressbar.ProgressBar
}

// NewTotalProgress creates the bar. A max of -1 draws a spinner for runs without a known total
func NewTotalProgress(max int64) *TotalProgress {
	recordb := progressbar.NewOptions64(max,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(15),
		progressbar.OptionShowIts(),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSetVisibility(true),
		progressbar.OptionSpinnerType(14),
	)
	return &TotalProgress{
		Records: recordb,
	}
}

func (b *TotalProgress) Incr(n int64) {
	b.Records.Add64(n)
}

func (b *TotalProgress) AddTotal(n int64) {
	if n == 0 || b.Records.GetMax64() < 0 {
		return
	}
	b.Records.ChangeMax64(b.Records.GetMax64() + n)
}

func (b *TotalProgress) Finish() {
	b.Records.Finish()
}

var _ Finisher = &TotalProgress{}

// WorkerProgress draws one bar per worker
type WorkerProgress struct {
	Pb *mpb.Progress

	mu   sync.Mutex
	bars map[int]*mpb.Bar

	total int64
	done  int64
}

func NewWorkerProgress() *WorkerProgress {
	return &WorkerProgress{
		Pb: mpb.New(
			mpb.WithOutput(os.Stderr),
			mpb.WithWidth(40),
			mpb.WithRefreshRate(120*time.Millisecond),
		),
		bars: make(map[int]*mpb.Bar),
	}
}

func (w *WorkerProgress) Incr(n int64) {
	atomic.AddInt64(&w.done, n)
}

func (w *WorkerProgress) AddTotal(n int64) {
	atomic.AddInt64(&w.total, n)
}

func (w *WorkerProgress) WorkerStart(worker int, total int64) {
	name := fmt.Sprintf("worker %d", worker)
	bar := w.Pb.AddBar(total,
		mpb.BarPriority(worker),
		mpb.PrependDecorators(
			decor.Name(name, decor.WC{W: len(name) + 1, C: decor.DidentRight}),
			decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.OnComplete(decor.Percentage(decor.WC{W: 5}), "done"),
		),
	)

	w.mu.Lock()
	w.bars[worker] = bar
	w.mu.Unlock()
}

func (w *WorkerProgress) bar(worker int) *mpb.Bar {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.bars[worker]
}

func (w *WorkerProgress) WorkerIncr(worker int, n int64) {
	if bar := w.bar(worker); bar != nil {
		bar.IncrInt64(n)
	}
}

// WorkerDone removes bars that will never complete, otherwise Finish would wait on them forever
func (w *WorkerProgress) WorkerDone(worker int, err error) {
	bar := w.bar(worker)
	if bar == nil {
		return
	}
	if err != nil || !bar.Completed() {
		bar.Abort(false)
	}
}

func (w *WorkerProgress) Finish() {
	w.Pb.Wait()
}

var _ brutegen.WorkerProgressBar = &WorkerProgress{}
var _ Finisher = &WorkerProgress{}

// NullProgress is used when no progress should be drawn
type NullProgress struct {
	brutegen.NullProgressBar
}

func (n *NullProgress) Finish() {}

var _ Finisher = &NullProgress{}

// NewProgress picks the bar for the options. The engine adds the planned total once the run starts
func NewProgress(o *GenerateOptions) Finisher {
	if !o.ProgressBar {
		return &NullProgress{}
	}
	if o.ProgressStyle == ProgressWorkers {
		return NewWorkerProgress()
	}
	if o.Mode == brutegen.RandomUnbounded {
		return NewTotalProgress(-1)
	}
	return NewTotalProgress(0)
}
