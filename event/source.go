package event

import "io"

// Source is a lazily produced, possibly infinite sequence of parse
// events.
//
// Next returns the next event in the sequence. At end of input it
// returns (nil, io.EOF); a frame-level parse failure at the current
// position returns (nil, err) with any other error. Both are terminal:
// callers must not pull again after a non-nil error.
type Source interface {
	Next() (Event, error)
}

// Result is one pre-computed Source position: a valid event or the
// error for that position.
type Result struct {
	Event Event
	Err   error
}

// Ok wraps a valid event as a Result.
func Ok(e Event) Result { return Result{Event: e} }

// Fail wraps a parse failure as a Result.
func Fail(err error) Result { return Result{Err: err} }

// SliceSource replays a fixed sequence of results, then reports end of
// input.
type SliceSource struct {
	results []Result
}

// NewSliceSource returns a SliceSource over results.
func NewSliceSource(results ...Result) *SliceSource {
	return &SliceSource{results: results}
}

func (s *SliceSource) Next() (Event, error) {
	if len(s.results) == 0 {
		return nil, io.EOF
	}
	head := s.results[0]
	s.results = s.results[1:]
	return head.Event, head.Err
}
