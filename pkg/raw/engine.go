package raw

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Engine validates copy requests and moves bytes between caller-owned regions.
// It keeps no state between calls and never retains the slices it is given.
// Callers must not mutate either region while a copy is running.
type Engine struct {
	overlapMode OverlapMode
	wordCopy    bool
}

type Option func(e *Engine)

// WithOverlapMode selects the overlap test used by the engine.
func WithOverlapMode(mode OverlapMode) Option {
	return func(e *Engine) {
		e.overlapMode = mode
	}
}

// WithWordCopy toggles the word-chunked copy loop, when disabled
// the engine delegates to the builtin copy.
func WithWordCopy(enabled bool) Option {
	return func(e *Engine) {
		e.wordCopy = enabled
	}
}

func NewEngine(opts ...Option) *Engine {
	engine := &Engine{
		overlapMode: OverlapExact,
		wordCopy:    true,
	}

	for _, opt := range opts {
		opt(engine)
	}

	return engine
}

var defaultEngine = NewEngine()

// CopyN copies n bytes from src into dst using the default engine.
func CopyN(dst, src []byte, n int) error {
	return defaultEngine.CopyN(dst, src, n)
}

// Copy is CopyN reporting a Code instead of an error.
func Copy(dst, src []byte, n int) Code {
	return defaultEngine.Copy(dst, src, n)
}

// CopyN copies the first n bytes of src into dst. len(dst) is the destination
// capacity. The request is rejected before any byte is written when:
//   - dst is nil
//   - src is nil
//   - dst can't hold n bytes
//   - n is not positive
//   - the regions overlap
//   - src holds fewer than n bytes
//
// Checks run in that order and the first failing one is reported.
func (e *Engine) CopyN(dst, src []byte, n int) error {
	err := e.validate(dst, src, n)
	if err != nil {
		log.Trace().
			Err(err).
			Int("dst_len", len(dst)).
			Int("src_len", len(src)).
			Int("n", n).
			Stringer("code", CodeOf(err)).
			Msg("copy request rejected")
		return err
	}

	if e.wordCopy {
		copyWords(dst[:n], src[:n])
	} else {
		copy(dst[:n], src[:n])
	}

	return nil
}

func (e *Engine) Copy(dst, src []byte, n int) Code {
	return CodeOf(e.CopyN(dst, src, n))
}

// OverlapMode reports the overlap test the engine was built with.
func (e *Engine) OverlapMode() OverlapMode {
	return e.overlapMode
}

func (e *Engine) validate(dst, src []byte, n int) error {
	if dst == nil {
		return ErrDestinationNull
	}

	if src == nil {
		return ErrSourceNull
	}

	// covers the empty destination case too
	if len(dst) < n {
		return fmt.Errorf("%w: got %d, want %d", ErrInsufficientCapacity, len(dst), n)
	}

	if n <= 0 {
		return ErrZeroLength
	}

	if e.overlaps(dst, src, n) {
		return ErrRegionsOverlap
	}

	if len(src) < n {
		return fmt.Errorf("%w: got %d, want %d", ErrShortSource, len(src), n)
	}

	return nil
}

func (e *Engine) overlaps(dst, src []byte, n int) bool {
	switch e.overlapMode {
	case OverlapLegacy:
		return OverlapsLegacy(dst, src, n)
	default:
		return Overlaps(dst, src, n)
	}
}
