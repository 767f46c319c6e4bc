// Command sorter sorts the lines of files, or stdin, with one of the
// algorithms from github.com/lanrat/sorter.
//
//	sorter [-m merge|insertion|bubble] [-r] [-u] [-n] [-c | -d] [file...]
package main

import (
	"bufio"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/convox/logger"
	"github.com/lanrat/sorter"
	"github.com/lanrat/sorter/diff"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
)

const (
	exitOK       = 0
	exitMismatch = 1
	exitError    = 2
)

type options struct {
	method  string
	reverse bool
	unique  bool
	numeric bool
	check   bool
	diff    bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	flags := pflag.NewFlagSet("sorter", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&opts.method, "method", "m", sorter.DefaultMethod, "sort algorithm: "+strings.Join(sorter.Methods(), ", "))
	flags.BoolVarP(&opts.reverse, "reverse", "r", false, "reverse the result of comparisons")
	flags.BoolVarP(&opts.unique, "unique", "u", false, "output only the first of an equal run")
	flags.BoolVarP(&opts.numeric, "numeric", "n", false, "compare lines as numbers")
	flags.BoolVarP(&opts.check, "check", "c", false, "check whether input is sorted, do not sort")
	flags.BoolVarP(&opts.diff, "diff", "d", false, "sort two files and print the lines found in only one")

	log := logger.NewWriter("ns=sorter", stderr)

	if err := flags.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return exitOK
		}
		log.At("flags").Error(err)
		return exitError
	}
	paths := flags.Args()

	if opts.check && opts.diff {
		log.At("flags").Errorf("--check and --diff are mutually exclusive")
		return exitError
	}
	if opts.diff && len(paths) != 2 {
		log.At("flags").Errorf("--diff needs exactly two files, got %d", len(paths))
		return exitError
	}

	less := sorter.LessFunc[string](sorter.Ordered[string])
	if opts.numeric {
		less = numericLess
	}
	s, err := sorter.New(less, &sorter.Config{
		Method:  opts.method,
		Reverse: opts.reverse,
		Unique:  opts.unique,
	})
	if err != nil {
		log.At("config").Error(err)
		return exitError
	}

	if len(paths) == 0 {
		paths = []string{"-"}
	}
	if countStdin(paths) > 1 {
		log.At("flags").Errorf("stdin (-) may only be given once")
		return exitError
	}
	inputs, err := readAll(paths, stdin)
	if err != nil {
		log.At("read").Error(err)
		return exitError
	}

	switch {
	case opts.check:
		return check(s, concat(inputs), log)
	case opts.diff:
		return diffFiles(s, inputs[0], inputs[1], stdout, log)
	}

	if err := writeLines(stdout, s.Sort(concat(inputs))); err != nil {
		log.At("write").Error(err)
		return exitError
	}
	return exitOK
}

func countStdin(paths []string) int {
	n := 0
	for _, p := range paths {
		if p == "-" {
			n++
		}
	}
	return n
}

// readAll loads the lines of every path concurrently, in argument order.
// "-" reads from stdin and must appear at most once.
func readAll(paths []string, stdin io.Reader) ([][]string, error) {
	inputs := make([][]string, len(paths))
	var g errgroup.Group
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			lines, err := readFile(path, stdin)
			if err != nil {
				return err
			}
			inputs[i] = lines
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return inputs, nil
}

func readFile(path string, stdin io.Reader) ([]string, error) {
	if path == "-" {
		lines, err := readLines(stdin)
		return lines, errors.Wrap(err, "reading stdin")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()
	lines, err := readLines(f)
	return lines, errors.Wrapf(err, "reading %s", path)
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

func concat(inputs [][]string) []string {
	n := 0
	for _, in := range inputs {
		n += len(in)
	}
	all := make([]string, 0, n)
	for _, in := range inputs {
		all = append(all, in...)
	}
	return all
}

func writeLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, l := range lines {
		if _, err := bw.WriteString(l); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func check(s *sorter.Sorter[string], lines []string, log *logger.Logger) int {
	less := s.Less()
	for i := 1; i < len(lines); i++ {
		if !less(lines[i-1], lines[i]) {
			log.At("check").Errorf("%d: disorder: %s", i+1, lines[i])
			return exitMismatch
		}
	}
	return exitOK
}

func diffFiles(s *sorter.Sorter[string], a, b []string, stdout io.Writer, log *logger.Logger) int {
	bw := bufio.NewWriter(stdout)
	r, err := diff.Slices(s.Sort(a), s.Sort(b), s.Less(), diff.Printer[string](bw))
	if err == nil {
		err = bw.Flush()
	}
	if err != nil {
		log.At("diff").Error(err)
		return exitError
	}
	log.At("diff").Logf("extra_a=%d total_a=%d extra_b=%d total_b=%d common=%d", r.ExtraA, r.TotalA, r.ExtraB, r.TotalB, r.Common)
	if r.ExtraA+r.ExtraB > 0 {
		return exitMismatch
	}
	return exitOK
}

// numericLess orders lines by their numeric value. Lines that are not
// numbers sort before all numbers, lexically among themselves.
func numericLess(a, b string) bool {
	fa, okA := parseNumber(a)
	fb, okB := parseNumber(b)
	switch {
	case !okA && !okB:
		return a <= b
	case !okA:
		return true
	case !okB:
		return false
	}
	return fa <= fb
}

func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}
