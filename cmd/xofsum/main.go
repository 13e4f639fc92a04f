// Command xofsum prints Keccak sponge digests of files, or of standard
// input when no files are named.
package main

import (
	"bufio"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	keccak "github.com/Giulio2002/keccakxof"
)

type flags struct {
	variant string
	length  int
}

func (f *flags) parse(args []string) (*flags, []string) {
	fs := flag.NewFlagSet("xofsum", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n  %[1]s [-a variant] [-n bytes] [file ...]\n",
			filepath.Base(os.Args[0]))
		fs.PrintDefaults()
	}
	fs.StringVar(&f.variant, "a", keccak.SHAKE256.String(), "variant")
	fs.IntVar(&f.length, "n", 0, "output bytes (SHAKE only; 0 uses the default size)")
	fs.Parse(args)
	return f, fs.Args()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("xofsum: ")

	f, files := new(flags).parse(os.Args[1:])
	v, err := keccak.ParseVariant(f.variant)
	if err != nil {
		log.Fatal(err)
	}
	n, err := outputLength(v, f.length)
	if err != nil {
		log.Fatal(err)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	s := v.New()

	if len(files) == 0 {
		if err := sum(out, s, n, os.Stdin, "-"); err != nil {
			log.Fatal(err)
		}
		return
	}
	failed := false
	for _, name := range files {
		if err := sumFile(out, s, n, name); err != nil {
			log.Print(err)
			failed = true
		}
	}
	if failed {
		out.Flush()
		os.Exit(1)
	}
}

func outputLength(v keccak.Variant, n int) (int, error) {
	switch {
	case n < 0:
		return 0, fmt.Errorf("negative output length %d", n)
	case n == 0:
		return v.New().Size(), nil
	case !v.XOF():
		return 0, fmt.Errorf("%v has a fixed output length", v)
	}
	return n, nil
}

func sumFile(w io.Writer, s *keccak.Sponge, n int, name string) error {
	fi, err := os.Open(name)
	if err != nil {
		return err
	}
	defer fi.Close()
	return sum(w, s, n, fi, name)
}

// sum absorbs r into s, writes n bytes of output as hex followed by name,
// and leaves s reset for the next input. Output is squeezed one block at a
// time so n is not bounded by memory.
func sum(w io.Writer, s *keccak.Sponge, n int, r io.Reader, name string) error {
	defer s.Reset()
	if _, err := io.Copy(s, r); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	enc := hex.NewEncoder(w)
	block := make([]byte, s.Rate())
	for n > 0 {
		k := min(n, len(block))
		s.Output(block[:k])
		if _, err := enc.Write(block[:k]); err != nil {
			return err
		}
		n -= k
	}
	_, err := fmt.Fprintf(w, "  %s\n", name)
	return err
}
