package util

import (
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
)

type filteredReader struct {
	cmd *exec.Cmd
	r   io.ReadCloser
	src io.Closer
}

func (fr *filteredReader) Read(p []byte) (n int, err error) {
	return fr.r.Read(p)
}

func (fr *filteredReader) Close() error {
	// Close the pipe first so the decompressor cannot block on a full pipe.
	return errors.Join(fr.r.Close(), fr.cmd.Wait(), fr.src.Close())
}

func filterByCommand(r io.ReadCloser, args []string) (io.ReadCloser, error) {
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = r
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		r.Close()
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		r.Close()
		return nil, err
	}
	return &filteredReader{cmd: cmd, r: stdout, src: r}, nil
}

type filterFunc func(r io.ReadCloser) (io.ReadCloser, error)

var fileTypes = map[string]filterFunc{
	".gz": func(r io.ReadCloser) (io.ReadCloser, error) {
		return filterByCommand(r, []string{"gzip", "-cd"})
	},
	".xz": func(r io.ReadCloser) (io.ReadCloser, error) {
		return filterByCommand(r, []string{"xz", "-cd", "-T", "0"})
	},
	".zst": func(r io.ReadCloser) (io.ReadCloser, error) {
		return filterByCommand(r, []string{"zstd", "-cd", "-T0"})
	},
}

// IsCompressed reports whether OpenFile would decompress filename.
func IsCompressed(filename string) bool {
	_, ok := fileTypes[filepath.Ext(filename)]
	return ok
}

// OpenFile opens filename for reading, decompressing it on the fly when
// its extension is one of .gz, .xz or .zst.
func OpenFile(filename string) (io.ReadCloser, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	if filter, ok := fileTypes[filepath.Ext(filename)]; ok {
		return filter(f)
	}
	return f, nil
}

// WriteFileAtomic writes data to a temporary file next to filename and
// renames it into place, so filename is either fully written or untouched.
func WriteFileAtomic(filename string, data []byte, perm os.FileMode) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(filename), "."+filepath.Base(filename)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()
	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Chmod(perm); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), filename)
}
