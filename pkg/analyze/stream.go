package analyze

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/taoky/logproc/pkg/fileiter"
	"github.com/taoky/logproc/pkg/parser"
	"github.com/taoky/logproc/pkg/util"
)

// Position identifies a line within the inputs, 1-based.
type Position struct {
	Path string
	Line uint64
}

type StreamOptions struct {
	MaxLineSize int
	// Progress receives a progress bar per file when non-nil.
	Progress io.Writer
	// OnSkip is called for every line the parser rejects.
	OnSkip func(pos Position, line []byte, err error)
}

// Stream yields the records of its input files in order. Files are opened
// one at a time and closed before the next one is opened. Lines that fail
// to parse are counted and skipped; failing to open or read a file stops
// the stream for good.
type Stream struct {
	paths  []string
	parser parser.Parser
	opts   StreamOptions

	next    int
	cur     io.ReadCloser
	curPath string
	curLine uint64
	iter    fileiter.Iterator

	files   int
	lines   uint64
	skipped uint64
	ignored uint64
	err     error
	done    bool
}

func NewStream(paths []string, p parser.Parser, opts StreamOptions) *Stream {
	return &Stream{
		paths:  paths,
		parser: p,
		opts:   opts,
	}
}

// Next returns the next record. It returns false once every file has been
// read or an I/O error occurred; check Err to tell the two apart.
func (s *Stream) Next() (parser.LogItem, bool) {
	for !s.done {
		if s.iter == nil {
			if s.next >= len(s.paths) {
				s.done = true
				break
			}
			path := s.paths[s.next]
			s.next++
			if err := s.open(path); err != nil {
				s.fail(fmt.Errorf("open input: %w", err))
				break
			}
			continue
		}

		line, err := s.iter.Next()
		if line == nil {
			closeErr := s.closeCurrent()
			if err = errors.Join(err, closeErr); err != nil {
				s.fail(fmt.Errorf("read input %q: %w", s.curPath, err))
				break
			}
			continue
		}
		s.lines++
		s.curLine++

		item, err := s.parser.Parse(line)
		if err != nil {
			if errors.Is(err, parser.ErrExpectedIgnoredLog) {
				s.ignored++
				continue
			}
			s.skipped++
			if s.opts.OnSkip != nil {
				s.opts.OnSkip(Position{Path: s.curPath, Line: s.curLine}, line, err)
			}
			continue
		}
		return item, true
	}
	return parser.LogItem{}, false
}

func (s *Stream) open(path string) error {
	rc, err := util.OpenFile(path)
	if err != nil {
		return err
	}
	if s.opts.Progress != nil {
		rc = newProgressReader(rc, path, s.opts.Progress)
	}
	s.cur = rc
	s.curPath = path
	s.curLine = 0
	s.iter = fileiter.NewWithScannerSize(rc, s.opts.MaxLineSize)
	s.files++
	return nil
}

func (s *Stream) closeCurrent() error {
	if s.cur == nil {
		return nil
	}
	err := s.cur.Close()
	s.cur = nil
	s.iter = nil
	return err
}

func (s *Stream) fail(err error) {
	s.closeCurrent()
	s.err = err
	s.done = true
}

// Err returns the I/O error that ended the stream, if any.
func (s *Stream) Err() error {
	return s.err
}

// Close releases the file being read, if any. The stream is exhausted
// afterwards.
func (s *Stream) Close() error {
	s.done = true
	return s.closeCurrent()
}

// Files returns the number of files opened so far.
func (s *Stream) Files() int {
	return s.files
}

func (s *Stream) Lines() uint64 {
	return s.lines
}

// Skipped returns the number of lines rejected by the parser.
func (s *Stream) Skipped() uint64 {
	return s.skipped
}

// Ignored returns the number of lines the parser recognized as not being
// access log entries.
func (s *Stream) Ignored() uint64 {
	return s.ignored
}

type progressReader struct {
	r   io.Reader
	rc  io.Closer
	bar *progressbar.ProgressBar
}

func newProgressReader(rc io.ReadCloser, path string, w io.Writer) *progressReader {
	// Compressed input has no meaningful size, show a spinner instead.
	size := int64(-1)
	if !util.IsCompressed(path) {
		if fi, err := os.Stat(path); err == nil {
			size = fi.Size()
		}
	}
	bar := progressbar.NewOptions64(size,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(path),
		progressbar.OptionShowBytes(true),
		progressbar.OptionClearOnFinish(),
	)
	return &progressReader{r: io.TeeReader(rc, bar), rc: rc, bar: bar}
}

func (p *progressReader) Read(b []byte) (int, error) {
	return p.r.Read(b)
}

func (p *progressReader) Close() error {
	return errors.Join(p.bar.Finish(), p.rc.Close())
}
