// Command fstkv is a thin inspection CLI over the fstkv library: build a
// map from a line-delimited "key\tvalue" input, look up a key, dump every
// entry, or run a prefix search. It exists to exercise the public API
// end-to-end, not as part of the library's core contract.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/coregx/fstkv"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("fstkv: ")

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "build":
		err = runBuild(args)
	case "get":
		err = runGet(args)
	case "dump":
		err = runDump(args)
	case "search":
		err = runSearch(args)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: fstkv <build|get|dump|search> [flags] ...")
}

func runBuild(args []string) error {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	input := fs.StringP("input", "i", "-", "line-delimited key\\tvalue input, or - for stdin")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("build requires exactly one output path (or %q)", fstkv.MemoryPath)
	}
	out := fs.Arg(0)

	var r *os.File
	if *input == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(*input)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	b, err := fstkv.NewBuilder(out)
	if err != nil {
		return err
	}
	sc := bufio.NewScanner(r)
	n := 0
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if line == "" {
			continue
		}
		key, valStr, ok := strings.Cut(line, "\t")
		if !ok {
			return fmt.Errorf("line %d: expected key<TAB>value, got %q", lineNo, line)
		}
		val, err := strconv.ParseUint(valStr, 10, 64)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if err := b.Insert([]byte(key), val); err != nil {
			return err
		}
		n++
	}
	if err := sc.Err(); err != nil {
		return err
	}
	if _, err := b.Finish(); err != nil {
		return err
	}
	log.Printf("built %d entries -> %s", n, out)
	return nil
}

func runGet(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: fstkv get <path> <key>")
	}
	m, err := fstkv.OpenMap(args[0])
	if err != nil {
		return err
	}
	defer m.Close()
	v, ok, err := m.Get([]byte(args[1]))
	if err != nil {
		return err
	}
	if !ok {
		return fstkv.ErrKeyNotFound
	}
	fmt.Println(v)
	return nil
}

func runDump(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: fstkv dump <path>")
	}
	m, err := fstkv.OpenMap(args[0])
	if err != nil {
		return err
	}
	defer m.Close()
	it, err := m.Items()
	if err != nil {
		return err
	}
	defer it.Close()
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for it.Next() {
		fmt.Fprintf(w, "%s\t%d\n", it.Key(), it.Value())
	}
	return it.Err()
}

func runSearch(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: fstkv search <path> <prefix>")
	}
	m, err := fstkv.OpenMap(args[0])
	if err != nil {
		return err
	}
	defer m.Close()
	it, err := m.StartsWith([]byte(args[1]), fstkv.RangeBounds{})
	if err != nil {
		return err
	}
	defer it.Close()
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for it.Next() {
		fmt.Fprintf(w, "%s\t%d\n", it.Key(), it.Value())
	}
	return it.Err()
}
