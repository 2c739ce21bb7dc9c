package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/zephyrtronium/opexpr"
)

var cli struct {
	Table  string   `help:"Operator table, loosest level first." default:"${table}"`
	In     string   `help:"Input file with one expression per line (default stdin if no expressions are given)." short:"i"`
	Random int      `help:"Generate this many random expressions instead of reading any." short:"r"`
	Depth  int      `help:"Maximum depth of random expressions." default:"5"`
	Seed   int64    `help:"Random seed (0 = random)."`
	Echo   bool     `help:"Print the bracketed and minimal forms of each expression."`
	Dump   bool     `help:"Dump each result in detail."`
	Fmt    string   `help:"Result formatting string." default:"%g"`
	Exprs  []string `arg:"" optional:"" help:"Expressions to evaluate."`
}

type result struct {
	Input   string
	Full    string
	Minimal string
	Value   float64
	Err     error
}

func main() {
	log.SetFlags(0)
	kctx := kong.Parse(&cli,
		kong.Name("opexpr"),
		kong.Description("Evaluate expressions using operators of configurable precedence."),
		kong.Vars{"table": opexpr.ArithmeticTable},
	)

	tab, err := opexpr.ParseTable(cli.Table, nil)
	kctx.FatalIfErrorf(err)

	var (
		trees []*opexpr.Tree
		srcs  []string
	)
	if cli.Random > 0 {
		seed := cli.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng := rand.New(rand.NewSource(seed))
		for i := 0; i < cli.Random; i++ {
			trees = append(trees, opexpr.Random(rng, tab, cli.Depth))
			srcs = append(srcs, "")
		}
	} else {
		srcs = cli.Exprs
		in, err := infile(cli.In, len(srcs) == 0)
		if err != nil {
			log.Fatal(err)
		}
		if in != nil {
			lines, err := readlines(in)
			if err != nil {
				log.Fatal(err)
			}
			srcs = append(lines, srcs...)
		}
		for _, src := range srcs {
			t, err := opexpr.Parse(src, tab)
			if err != nil {
				log.Fatalf("%q: %v", src, err)
			}
			trees = append(trees, t)
		}
	}

	verb := cli.Fmt + "\n"
	for i, t := range trees {
		r := evaluate(srcs[i], t)
		switch {
		case cli.Dump:
			repr.Println(r)
			continue
		case cli.Echo:
			fmt.Printf("%s : %s : ", r.Full, r.Minimal)
		}
		if r.Err != nil {
			fmt.Println(r.Err)
			continue
		}
		fmt.Printf(verb, r.Value)
	}
}

func evaluate(src string, t *opexpr.Tree) result {
	r := result{Input: src, Full: t.Parenthesize()}
	r.Minimal, r.Err = t.Minimal()
	if r.Err != nil {
		return r
	}
	r.Value, r.Err = t.Eval()
	return r
}

func infile(inname string, std bool) (io.Reader, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return os.Stdin, nil
	}
	return nil, nil
}

func readlines(in io.Reader) ([]string, error) {
	var lines []string
	s := bufio.NewScanner(in)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, s.Err()
}
