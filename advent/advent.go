package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/felixge/fgprof"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	var (
		configPath  = flag.String("config", defaultConfigPath(), "read settings from the ini `file`")
		verbose     = flag.Bool("v", false, "log debug output")
		profile     = flag.String("profile", "", "write an fgprof wall-clock profile to `file`")
		interactive = flag.Bool("i", false, "read solutions to run from an interactive prompt")
	)
	flag.Usage = usage
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	if !*interactive && flag.NArg() < 1 {
		usage()
		os.Exit(1)
	}

	var stopProfile func() error
	if *profile != "" {
		f, err := os.Create(*profile)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot create profile")
		}
		defer f.Close()
		stopProfile = fgprof.Start(f, fgprof.FormatPprof)
	}

	if *interactive {
		err = repl(cfg)
	} else {
		err = runSolution(cfg, flag.Arg(0), flag.Args()[1:], os.Stdin)
	}
	if stopProfile != nil {
		if perr := stopProfile(); perr != nil {
			log.Error().Err(perr).Msg("cannot write profile")
		}
	}
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [flags] [solution] [input-file]\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "where solution is one of:")
	for _, name := range solutionNames() {
		fmt.Fprintln(os.Stderr, name)
	}
	fmt.Fprintln(os.Stderr, "flags:")
	flag.PrintDefaults()
}

// A solution computes one puzzle answer from the raw puzzle input.
type solution func(input string) (int64, error)

var solutions = make(map[string]solution)

func register(name string, fn solution) {
	if _, ok := solutions[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %q", name))
	}
	solutions[name] = fn
}

// registerDay registers the two parts of a day as "<day>a" and "<day>b".
// Each part parses the input with parse before solving.
func registerDay[T any](day int, parse func(string) (T, error), a, b func(T) (int64, error)) {
	for i, part := range []func(T) (int64, error){a, b} {
		register(fmt.Sprintf("%d%c", day, 'a'+i), func(input string) (int64, error) {
			v, err := parse(input)
			if err != nil {
				return 0, fmt.Errorf("bad input: %w", err)
			}
			return part(v)
		})
	}
}

// total adapts a part that cannot fail.
func total[T any](fn func(T) int64) func(T) (int64, error) {
	return func(v T) (int64, error) { return fn(v), nil }
}

func solutionNames() []string {
	var names []string
	for name := range solutions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	return names
}

// runSolution runs the named solution and prints its answer.
// The input is read from args[0] if given, else from the configured input
// directory, else from stdin (if non-nil).
func runSolution(cfg *config, name string, args []string, stdin io.Reader) error {
	fn, ok := solutions[name]
	if !ok {
		return fmt.Errorf("unknown solution %q", name)
	}
	input, err := readInput(cfg, name, args, stdin)
	if err != nil {
		return err
	}
	log.Debug().Str("solution", name).Str("input", humanize.Bytes(uint64(len(input)))).Msg("read input")

	start := time.Now()
	n, err := fn(input)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	log.Debug().Str("solution", name).Dur("elapsed", time.Since(start)).Msg("solved")
	fmt.Println(n)
	return nil
}

func readInput(cfg *config, name string, args []string, stdin io.Reader) (string, error) {
	var (
		b   []byte
		err error
	)
	switch {
	case len(args) > 0:
		b, err = os.ReadFile(args[0])
	case cfg.InputDir != "":
		day, _ := splitName(name)
		b, err = os.ReadFile(filepath.Join(cfg.InputDir, fmt.Sprintf("%d.txt", day)))
	case stdin != nil:
		b, err = io.ReadAll(stdin)
	default:
		return "", errors.New("no input file given and no input dir configured")
	}
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func nameLess(name0, name1 string) bool {
	n0, s0 := splitName(name0)
	n1, s1 := splitName(name1)
	if n0 < n1 {
		return true
	}
	if n0 > n1 {
		return false
	}
	return s0 < s1
}

func splitName(name string) (int, string) {
	i := 0
	for ; i < len(name); i++ {
		c := name[i]
		if c < '0' || c > '9' {
			break
		}
	}
	n, err := strconv.Atoi(name[:i])
	if err != nil {
		panic(err)
	}
	return n, name[i:]
}
