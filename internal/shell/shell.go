// Package shell runs the line-oriented put/get/delete/keys/search command
// loop against a capacity-bounded cache.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"gocache/internal/cache"
)

const (
	cmdPut    = "put"
	cmdGet    = "get"
	cmdDelete = "delete"
	cmdKeys   = "keys"
	cmdSearch = "search"
	cmdExit   = "exit"

	prompt   = "$ "

	// maxLineBytes leaves room for a value as large as the HTTP front end
	// accepts plus the verb and key.
	maxLineBytes = 1<<20 + 4<<10
	improper = "Improper Command"
	missing  = "None"
)

// Shell reads commands from in and writes results to out.
type Shell struct {
	cache *cache.Cache[string, string]
	in    io.Reader
	out   io.Writer
	log   logrus.FieldLogger
}

// New returns a Shell over c. A nil log discards output.
func New(c *cache.Cache[string, string], in io.Reader, out io.Writer, log logrus.FieldLogger) *Shell {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Shell{cache: c, in: in, out: out, log: log}
}

// Run processes commands until "exit", end of input, or ctx is done.
func (s *Shell) Run(ctx context.Context) error {
	sc := bufio.NewScanner(s.in)
	sc.Buffer(make([]byte, 0, 64<<10), maxLineBytes)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(s.out, prompt)
		if !sc.Scan() {
			return sc.Err()
		}
		if !s.exec(strings.Fields(sc.Text())) {
			return nil
		}
	}
}

// exec runs one command and reports whether the loop should continue.
func (s *Shell) exec(args []string) bool {
	if len(args) == 0 {
		fmt.Fprintln(s.out, improper)
		return true
	}

	verb, args := args[0], args[1:]
	s.log.WithFields(logrus.Fields{"cmd": verb, "args": len(args)}).Debug("shell command")

	switch {
	case verb == cmdExit:
		return false
	case verb == cmdPut && len(args) == 2:
		s.cache.Put(args[0], args[1])
	case verb == cmdGet && len(args) == 1:
		v, ok := s.cache.Get(args[0])
		if !ok {
			v = missing
		}
		fmt.Fprintln(s.out, v)
	case verb == cmdDelete && len(args) == 1:
		s.cache.Delete(args[0])
	case verb == cmdKeys && len(args) == 0:
		fmt.Fprintln(s.out, formatKeys(s.cache.Keys()))
	case verb == cmdSearch && len(args) == 1:
		want := args[0]
		fmt.Fprintln(s.out, formatKeys(s.cache.Search(func(v string) bool { return v == want })))
	default:
		fmt.Fprintln(s.out, improper)
	}
	return true
}

func formatKeys(keys []string) string {
	return "[" + strings.Join(keys, " ") + "]"
}
