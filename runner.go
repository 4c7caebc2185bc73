package tuicore

import (
	"sync"
	"sync/atomic"
	"time"
)

// EventHandler processes one Event and reports whether it requires a
// redraw.
type EventHandler func(ev Event, r *TuiRunner) bool

// DrawFunc renders one frame via the Backend.
type DrawFunc func(f Frame)

// scheduledTask is one entry in the background scheduler's queue.
type scheduledTask struct {
	at       time.Time
	period   time.Duration // 0 for one-shot
	task     func()
	canceled *atomic.Bool
}

// TuiRunner threads Terminal, InputParser, and Backend together into the
// single render-thread event loop. Exactly one goroutine —
// whichever calls Run — ever mutates Buffer, Backend, or widget state;
// the scheduler and terminal resize signal feed it through thread-safe
// queues.
type TuiRunner struct {
	term    Terminal
	parser  *InputParser
	backend *Backend

	tickInterval time.Duration
	frameCount   int
	lastTick     time.Time

	quitting  atomic.Bool
	inLoop    atomic.Bool
	workQueue chan func()

	schedMu   sync.Mutex
	scheduled []*scheduledTask

	resizeQueue chan Size
}

// NewTuiRunner wires a Terminal, Backend, and tick interval into a runner.
func NewTuiRunner(term Terminal, backend *Backend, tickInterval time.Duration) *TuiRunner {
	r := &TuiRunner{
		term:         term,
		parser:       NewInputParser(),
		backend:      backend,
		tickInterval: tickInterval,
		workQueue:    make(chan func(), 64),
		resizeQueue:  make(chan Size, 4),
	}
	term.OnResize(func(sz Size) {
		select {
		case r.resizeQueue <- sz:
		default:
		}
	})
	return r
}

// Run enters raw mode and loops until Quit is called, restoring the
// terminal before returning. Ctrl+C reaches the handler like any other
// key; the loop ends on it only when the handler calls Quit. Panics during
// draw or event handling
// restore the terminal before re-raising.
func (r *TuiRunner) Run(handler EventHandler, draw DrawFunc) (err error) {
	if err = r.term.EnableRawMode(); err != nil {
		return err
	}
	defer func() {
		if p := recover(); p != nil {
			r.term.DisableRawMode()
			panic(p)
		}
	}()
	defer r.term.DisableRawMode()

	r.lastTick = now()
	for !r.quitting.Load() {
		remaining := r.tickRemainingMs()

		r.inLoop.Store(true)
		ev, ok, readErr := r.parser.Next(r.term, remaining)
		r.inLoop.Store(false)
		if readErr != nil {
			return readErr
		}

		shouldRedraw := false
		resized := false

		if ok {
			r.inLoop.Store(true)
			shouldRedraw = handler(ev, r)
			r.inLoop.Store(false)
		}

		if elapsed := now().Sub(r.lastTick); elapsed >= r.tickInterval && r.tickInterval > 0 {
			r.frameCount++
			tickEv := Event{Kind: EventTick, Tick: TickEvent{FrameCount: r.frameCount, Elapsed: elapsed}}
			r.lastTick = now()
			r.inLoop.Store(true)
			if handler(tickEv, r) {
				shouldRedraw = true
			}
			r.inLoop.Store(false)
		}

		select {
		case sz := <-r.resizeQueue:
			resized = true
			r.backend.Resize(NewRect(0, 0, sz.Cols, sz.Rows))
			resizeEv := Event{Kind: EventResize, Resize: ResizeEvent{Size: sz}}
			r.inLoop.Store(true)
			handler(resizeEv, r)
			r.inLoop.Store(false)
		default:
		}

		r.drainWorkQueue()
		r.drainScheduled()

		if shouldRedraw || resized {
			if err := r.drawFrame(draw); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *TuiRunner) drawFrame(draw DrawFunc) (err error) {
	defer func() {
		if p := recover(); p != nil {
			r.term.DisableRawMode()
			panic(p)
		}
	}()
	out, drawErr := r.backend.Draw(r.backend.area, draw)
	if drawErr != nil {
		return drawErr
	}
	return r.term.Write(out)
}

func (r *TuiRunner) tickRemainingMs() int {
	if r.tickInterval <= 0 {
		return 250
	}
	remaining := r.tickInterval - now().Sub(r.lastTick)
	if remaining <= 0 {
		return 0
	}
	ms := int(remaining / time.Millisecond)
	if ms <= 0 {
		ms = 1
	}
	return ms
}

// RunOnRenderThread runs task immediately if called from within the
// render thread's current callback; otherwise it queues the task for
// drainage at the next loop iteration.
func (r *TuiRunner) RunOnRenderThread(task func()) {
	if r.inLoop.Load() {
		task()
		return
	}
	r.RunLater(task)
}

// RunLater always queues task for the next drain, regardless of caller.
func (r *TuiRunner) RunLater(task func()) {
	select {
	case r.workQueue <- task:
	default:
		// Queue full: drop oldest-style backpressure is out of scope; a
		// misbehaving producer should not block the render thread.
	}
}

func (r *TuiRunner) drainWorkQueue() {
	for {
		select {
		case task := <-r.workQueue:
			task()
		default:
			return
		}
	}
}

// Schedule runs task once after delay, invoked via RunOnRenderThread.
func (r *TuiRunner) Schedule(task func(), delay time.Duration) {
	r.schedMu.Lock()
	defer r.schedMu.Unlock()
	r.scheduled = append(r.scheduled, &scheduledTask{at: now().Add(delay), task: task})
}

// ScheduleRepeating runs task every period, invoked via RunOnRenderThread.
func (r *TuiRunner) ScheduleRepeating(task func(), period time.Duration) {
	r.schedMu.Lock()
	defer r.schedMu.Unlock()
	r.scheduled = append(r.scheduled, &scheduledTask{at: now().Add(period), period: period, task: task})
}

func (r *TuiRunner) drainScheduled() {
	r.schedMu.Lock()
	due := make([]*scheduledTask, 0)
	remaining := r.scheduled[:0]
	t := now()
	for _, s := range r.scheduled {
		if !t.Before(s.at) {
			due = append(due, s)
			if s.period > 0 {
				s.at = t.Add(s.period)
				remaining = append(remaining, s)
			}
		} else {
			remaining = append(remaining, s)
		}
	}
	r.scheduled = remaining
	r.schedMu.Unlock()

	// drainScheduled runs on the render thread, so due tasks run now.
	r.inLoop.Store(true)
	for _, s := range due {
		task := s.task
		r.RunOnRenderThread(task)
	}
	r.inLoop.Store(false)
}

// Quit sets the loop's termination flag; it is eventually consistent — an
// in-flight draw completes, then the loop exits and restores the terminal.
func (r *TuiRunner) Quit() { r.quitting.Store(true) }

// now is a thin indirection point for the wall clock; it exists purely so
// tests can be written without a live timer dependency creeping into the
// scheduler's unit-testable pieces.
func now() time.Time { return time.Now() }
