// =============================================================================
// dtb2x - Lazy Output Writer
// =============================================================================

package textio

import "io"

// LazyWriteCloser delays opening the underlying writer until the first
// write. The output file is therefore not created or truncated when the
// run fails before producing any output (for example when the input file
// cannot be opened).
type LazyWriteCloser struct {
	open   func() (io.WriteCloser, error)
	writer io.WriteCloser
	err    error
}

// NewLazyWriteCloser returns a writer whose open function is called once,
// on the first Write. An open failure is sticky: subsequent writes return
// the same error without retrying.
func NewLazyWriteCloser(open func() (io.WriteCloser, error)) *LazyWriteCloser {
	return &LazyWriteCloser{open: open}
}

func (l *LazyWriteCloser) Write(p []byte) (int, error) {
	if l.err != nil {
		return 0, l.err
	}
	if l.writer == nil {
		l.writer, l.err = l.open()
		if l.err != nil {
			return 0, l.err
		}
	}
	return l.writer.Write(p)
}

// Close closes the underlying writer if it was ever opened.
func (l *LazyWriteCloser) Close() error {
	if l.writer != nil {
		return l.writer.Close()
	}
	return nil
}
