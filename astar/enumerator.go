package astar

import "iter"

// Enumerator yields the neighbors of the node being expanded.
//
// Begin resets the sequence for current; HasNext, Current and Advance walk it.
// The returned nodes belong to the caller's graph storage: the engine writes
// their g/h in place and never retains one after Advance or exhaustion.
type Enumerator[N any] interface {
	Begin(current N)
	HasNext() bool
	Current() N
	Advance()
}

// SliceEnumerator walks the slice produced by a neighbor function.
type SliceEnumerator[N any] struct {
	neighbors func(N) []N
	buf       []N
	pos       int
}

// NewSliceEnumerator returns an Enumerator over fn(current) for every Begin.
func NewSliceEnumerator[N any](fn func(current N) []N) *SliceEnumerator[N] {
	return &SliceEnumerator[N]{neighbors: fn}
}

// Begin implements Enumerator.
func (e *SliceEnumerator[N]) Begin(current N) {
	e.buf = e.neighbors(current)
	e.pos = 0
}

// HasNext implements Enumerator.
func (e *SliceEnumerator[N]) HasNext() bool { return e.pos < len(e.buf) }

// Current implements Enumerator. It panics when the sequence is exhausted.
func (e *SliceEnumerator[N]) Current() N { return e.buf[e.pos] }

// Advance implements Enumerator.
func (e *SliceEnumerator[N]) Advance() {
	if e.pos < len(e.buf) {
		e.pos++
	}
	if e.pos == len(e.buf) {
		e.buf = nil
		e.pos = 0
	}
}

// SeqEnumerator pulls neighbors lazily from an iter.Seq per expansion.
type SeqEnumerator[N any] struct {
	seq  func(N) iter.Seq[N]
	next func() (N, bool)
	stop func()
	cur  N
	ok   bool
}

// NewSeqEnumerator returns an Enumerator over fn(current) for every Begin.
func NewSeqEnumerator[N any](fn func(current N) iter.Seq[N]) *SeqEnumerator[N] {
	return &SeqEnumerator[N]{seq: fn}
}

// Begin implements Enumerator. A sequence left unfinished by the previous
// expansion is stopped first.
func (e *SeqEnumerator[N]) Begin(current N) {
	e.release()
	e.next, e.stop = iter.Pull(e.seq(current))
	e.pull()
}

// HasNext implements Enumerator.
func (e *SeqEnumerator[N]) HasNext() bool { return e.ok }

// Current implements Enumerator.
func (e *SeqEnumerator[N]) Current() N { return e.cur }

// Advance implements Enumerator.
func (e *SeqEnumerator[N]) Advance() {
	if e.ok {
		e.pull()
	}
}

func (e *SeqEnumerator[N]) pull() {
	e.cur, e.ok = e.next()
	if !e.ok {
		e.release()
	}
}

func (e *SeqEnumerator[N]) release() {
	if e.stop != nil {
		e.stop()
	}
	var zero N
	e.next, e.stop, e.cur, e.ok = nil, nil, zero, false
}
