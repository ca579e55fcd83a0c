// Package readlines reads text files into a slice of lines.
package readlines

import (
	"bufio"
	"io"
	"io/fs"
	"os"
	"strings"
	"syscall"

	"github.com/inconshreveable/log15"
)

// Log is the package logger. It discards everything until a caller
// installs a handler with Log.SetHandler.
var Log = log15.New("pkg", "readlines")

func init() {
	Log.SetHandler(log15.DiscardHandler())
}

// ReadLines opens the file at path and returns its lines in file order,
// without their terminators. A final line with no terminator is still
// returned. An empty file gives an empty slice.
//
// Any failure to open or read the file is reported as a
// *FileUnavailableError.
func ReadLines(path string) ([]string, error) {
	file, err := open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	lines, err := FromReader(file)
	if err != nil {
		return nil, unavailable(path, err)
	}

	Log.Debug("lines read", "path", path, "count", len(lines))

	return lines, nil
}

// ReadLinesLenient behaves like ReadLines but never fails: a path that
// cannot be opened reads as an empty file, and a read error ends the
// sequence early with the lines read so far.
func ReadLinesLenient(path string) []string {
	file, err := open(path)
	if err != nil {
		Log.Debug("treating unavailable file as empty", "path", path, "err", err)
		return []string{}
	}
	defer file.Close()

	lines, err := FromReader(file)
	if err != nil {
		Log.Debug("read stopped early", "path", path, "count", len(lines), "err", err)
	}

	return lines
}

// FromReader splits r on newlines. On a read error it returns the lines
// read before the error together with the error.
func FromReader(r io.Reader) ([]string, error) {
	lines := []string{}

	err := scan(r, func(line string) error {
		lines = append(lines, line)
		return nil
	})

	return lines, err
}

// Each opens the file at path and calls fn for each line, in order.
// It stops at the first error returned by fn and returns that error as is.
func Each(path string, fn func(line string) error) error {
	file, err := open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var fnErr error
	err = scan(file, func(line string) error {
		fnErr = fn(line)
		return fnErr
	})

	if fnErr != nil {
		return fnErr
	}
	if err != nil {
		return unavailable(path, err)
	}

	return nil
}

// Count returns the number of lines ReadLines would return for path.
func Count(path string) (int, error) {
	n := 0
	err := Each(path, func(string) error {
		n++
		return nil
	})
	if err != nil {
		return 0, err
	}

	return n, nil
}

// open opens path for reading and rejects directories, which os.Open
// accepts on most platforms.
func open(path string) (*os.File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, unavailable(path, err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, unavailable(path, err)
	}

	if info.IsDir() {
		file.Close()
		return nil, unavailable(path, &fs.PathError{Op: "read", Path: path, Err: syscall.EISDIR})
	}

	return file, nil
}

// scan calls fn with every line of r. bufio.Scanner is avoided because
// it caps line length.
func scan(r io.Reader, fn func(line string) error) error {
	br := bufio.NewReader(r)

	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			if fnErr := fn(trimTerminator(line)); fnErr != nil {
				return fnErr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// trimTerminator drops a trailing "\n" and then a trailing "\r", the same
// way bufio.ScanLines does.
func trimTerminator(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
