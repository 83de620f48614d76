package exec

import (
	"io"
	"syscall"

	"github.com/afiolmahon/glue-shell/errors"
)

const pumpBufferSize = 4096

// flusher is implemented by buffered sinks such as *bufio.Writer.
type flusher interface {
	Flush() error
}

// pump copies src into dst as bytes arrive until the far end closes. A
// zero-byte read (io.EOF) and EIO, which a pty master returns once the slave
// side is closed, both end the stream. EINTR is retried.
func pump(src io.Reader, dst io.Writer) error {
	buf := make([]byte, pumpBufferSize)
	for {
		n, err := src.Read(buf)
		if n > 0 {
			if _, werr := dst.Write(buf[:n]); werr != nil {
				return errors.Wrap(werr, errors.CodeOutputPump, "write to sink failed")
			}
		}
		switch {
		case err == nil:
		case err == io.EOF, errors.Is(err, syscall.EIO):
			return flush(dst)
		case errors.Is(err, syscall.EINTR):
		default:
			return errors.Wrap(err, errors.CodeOutputPump, "read() failed")
		}
	}
}

func flush(dst io.Writer) error {
	f, ok := dst.(flusher)
	if !ok {
		return nil
	}
	if err := f.Flush(); err != nil {
		return errors.Wrap(err, errors.CodeOutputPump, "flush of sink failed")
	}
	return nil
}
