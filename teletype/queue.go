package teletype

// keyQueue holds keystrokes produced outside the emulator loop
// (serial receiver goroutine, gocui event loop). One key can be peeked
// so that a readiness check never consumes input.
type keyQueue struct {
	keys chan byte
	errs chan error

	peeked  byte
	pending bool
	err     error
}

func newKeyQueue(size int) *keyQueue {
	return &keyQueue{
		keys: make(chan byte, size),
		errs: make(chan error, 1),
	}
}

// put blocks until there is room for b
func (q *keyQueue) put(b byte) {
	q.keys <- b
}

// offer drops b when the queue is full. Used from ui callbacks which must not block.
func (q *keyQueue) offer(b byte) bool {
	select {
	case q.keys <- b:
		return true
	default:
		return false
	}
}

// fail reports a producer error to the consumer side. Only the first one is kept.
func (q *keyQueue) fail(err error) {
	select {
	case q.errs <- err:
	default:
	}
}

func (q *keyQueue) ready() (bool, error) {
	if q.pending {
		return true, nil
	}
	if q.err != nil {
		return false, q.err
	}
	// keys received before a failure are still delivered
	select {
	case b := <-q.keys:
		q.peeked, q.pending = b, true
		return true, nil
	default:
	}
	select {
	case b := <-q.keys:
		q.peeked, q.pending = b, true
		return true, nil
	case err := <-q.errs:
		q.err = err
		return false, err
	default:
		return false, nil
	}
}

func (q *keyQueue) take() (byte, error) {
	if q.pending {
		q.pending = false
		return q.peeked, nil
	}
	if q.err != nil {
		return 0, q.err
	}
	select {
	case b := <-q.keys:
		return b, nil
	default:
	}
	select {
	case b := <-q.keys:
		return b, nil
	case err := <-q.errs:
		q.err = err
		return 0, err
	}
}
