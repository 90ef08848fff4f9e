package fibonacci

// Sink receives terms in sequence order as they are generated.
// index is the zero-based position of the term, so the term at index i is F(i).
type Sink interface {
	Emit(index int, term int64)
}

// SinkFunc is a function adapter that implements Sink.
type SinkFunc func(index int, term int64)

// Emit calls the underlying function.
func (f SinkFunc) Emit(index int, term int64) {
	f(index, term)
}

// Discard is a Sink that drops every term. Useful when only Stats are needed.
var Discard Sink = SinkFunc(func(int, int64) {})

// Collector is a Sink that stores every emitted term.
type Collector struct {
	Terms []int64
}

// Emit appends the term.
func (c *Collector) Emit(_ int, term int64) {
	c.Terms = append(c.Terms, term)
}

// Len returns the number of collected terms.
func (c *Collector) Len() int {
	return len(c.Terms)
}

// MultiSink fans every term out to each of the given sinks, in order.
// Nil sinks are skipped.
func MultiSink(sinks ...Sink) Sink {
	filtered := make([]Sink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			filtered = append(filtered, s)
		}
	}
	return multiSink(filtered)
}

type multiSink []Sink

func (m multiSink) Emit(index int, term int64) {
	for _, s := range m {
		s.Emit(index, term)
	}
}
