package sloghelper

import (
	"bufio"
	"os"
	"sync"

	"github.com/pkg/errors"
)

// An io.Writer for slog handlers that appends to a file on disk.
type LogFile struct {
	// The file name that is (re)opened for appending.
	fileName string

	// The current file descriptor that is being written to.
	fd *os.File

	// The buffered writer pointed at fd.
	buffer *bufio.Writer

	// Protects fd and buffer so that concurrent Write() calls from a
	// handler do not interleave.
	lock sync.Mutex
}

// Opens file for appending, creating it if needed.
func OpenLogFile(file string) (*LogFile, error) {
	l := &LogFile{
		fileName: file,
	}
	if err := l.reopen(); err != nil {
		return nil, err
	}
	return l, nil
}

// Opens the file again and switches writes over to the new descriptor. The
// old descriptor is flushed and closed.
func (l *LogFile) reopen() error {
	newfd, err := os.OpenFile(
		l.fileName,
		os.O_WRONLY|os.O_CREATE|os.O_APPEND,
		0644)
	if err != nil {
		return errors.Wrap(err, "Unable to open log file")
	}
	newbuffer := bufio.NewWriter(newfd)
	oldfd, oldbuffer := func() (*os.File, *bufio.Writer) {
		l.lock.Lock()
		defer l.lock.Unlock()
		oldfd, oldbuffer := l.fd, l.buffer
		l.fd, l.buffer = newfd, newbuffer
		return oldfd, oldbuffer
	}()
	return closeBuffered(oldfd, oldbuffer)
}

// Acts like an io.Writer appending raw data to the current buffer.
func (l *LogFile) Write(data []byte) (int, error) {
	l.lock.Lock()
	defer l.lock.Unlock()
	if l.buffer == nil {
		return 0, os.ErrClosed
	}
	return l.buffer.Write(data)
}

// Flushes any buffered data to disk.
func (l *LogFile) flush() error {
	l.lock.Lock()
	defer l.lock.Unlock()
	if l.buffer == nil {
		return nil
	}
	return errors.WithMessage(l.buffer.Flush(), "Error flushing log file")
}

// Flushes and closes the file. Writes after Close return os.ErrClosed.
func (l *LogFile) Close() error {
	fd, buffer := func() (*os.File, *bufio.Writer) {
		l.lock.Lock()
		defer l.lock.Unlock()
		fd, buffer := l.fd, l.buffer
		l.fd, l.buffer = nil, nil
		return fd, buffer
	}()
	return closeBuffered(fd, buffer)
}

func closeBuffered(fd *os.File, buffer *bufio.Writer) error {
	if buffer != nil {
		if err := buffer.Flush(); err != nil {
			fd.Close()
			return errors.Wrap(err, "Error flushing log file")
		}
	}
	if fd != nil {
		if err := fd.Close(); err != nil {
			return errors.Wrap(err, "Error closing log file")
		}
	}
	return nil
}
