package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/KimNorgaard/go-ssml"
)

func main() {
	flag.Usage = func() {
		_, _ = fmt.Fprintln(os.Stderr, "Usage: ssmlfmt [flags] [files...]")
		_, _ = fmt.Fprintln(os.Stderr, "")
		_, _ = fmt.Fprintln(os.Stderr, "Parses SSML documents and prints them in canonical form.")
		_, _ = fmt.Fprintln(os.Stderr, "With no files, reads from standard input and writes to standard output.")
		flag.PrintDefaults()
	}
	writeFlag := flag.Bool("w", false, "rewrite files in place instead of printing to stdout")
	checkFlag := flag.Bool("check", false, "only validate; print nothing, exit non-zero if any file is invalid")
	flag.Parse()

	if *writeFlag && *checkFlag {
		fatal(fmt.Errorf("ssmlfmt: cannot use -w with -check"))
	}

	if flag.NArg() == 0 {
		if *writeFlag {
			fatal(fmt.Errorf("ssmlfmt: -w requires file arguments"))
		}
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fatal(err)
		}
		out, err := canonical(string(data))
		if err != nil {
			fatal(err)
		}
		if !*checkFlag {
			fmt.Println(out)
		}
		return
	}

	failed := false
	for _, path := range flag.Args() {
		if err := processFile(path, *writeFlag, *checkFlag); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func canonical(markup string) (string, error) {
	root, err := ssml.Parse(markup)
	if err != nil {
		return "", err
	}
	return ssml.Render(root), nil
}

func processFile(path string, write, check bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	out, err := canonical(string(data))
	if err != nil {
		return err
	}
	switch {
	case check:
		return nil
	case write:
		return os.WriteFile(path, []byte(out+"\n"), 0o644)
	default:
		fmt.Println(out)
		return nil
	}
}

func fatal(err error) {
	_, _ = fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
