package main

import (
	"context"
	"fmt"
	"os"

	"github.com/nikandfor/hacked/hfmt"
	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/tinylang/tiny/compiler"
	"github.com/tinylang/tiny/compiler/ast"
	"github.com/tinylang/tiny/compiler/dot"
	"github.com/tinylang/tiny/compiler/lexer"
)

func main() {
	tokensCmd := &cli.Command{
		Name:   "tokens",
		Action: tokensAct,
		Args:   cli.Args{},
	}

	parseCmd := &cli.Command{
		Name:   "parse",
		Action: parseAct,
		Args:   cli.Args{},
	}

	dotCmd := &cli.Command{
		Name:   "dot",
		Action: dotAct,
		Args:   cli.Args{},
	}

	app := &cli.Command{
		Name:        "tiny",
		Description: "tiny is a tool for inspecting tiny source code",
		Commands: []*cli.Command{
			tokensCmd,
			parseCmd,
			dotCmd,
		},
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

func tokensAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	for _, a := range c.Args {
		text, err := os.ReadFile(a)
		if err != nil {
			return errors.Wrap(err, "read %v", a)
		}

		for _, tk := range lexer.New(string(text)).Tokens(ctx) {
			fmt.Printf("%v\n", tk)
		}
	}

	return nil
}

func parseAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	for _, a := range c.Args {
		prog, diags, err := compiler.ParseFile(ctx, a)
		if err != nil {
			return errors.Wrap(err, "parse %v", a)
		}

		for _, d := range diags {
			fmt.Fprintf(os.Stderr, "%v:%v\n", a, d)
		}

		fmt.Printf("%s", dump(nil, prog, 0))

		if len(diags) != 0 {
			return errors.New("%v: %d syntax errors", a, len(diags))
		}
	}

	return nil
}

func dotAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	for _, a := range c.Args {
		prog, diags, err := compiler.ParseFile(ctx, a)
		if err != nil {
			return errors.Wrap(err, "parse %v", a)
		}

		for _, d := range diags {
			fmt.Fprintf(os.Stderr, "%v:%v\n", a, d)
		}

		fmt.Printf("%s", dot.Render(prog))
	}

	return nil
}

func dump(b []byte, n ast.Node, d int) []byte {
	for i := 0; i < d; i++ {
		b = append(b, "    "...)
	}

	if v := n.Value(); v != "" {
		b = hfmt.Appendf(b, "%v: %v\n", n.Kind(), v)
	} else {
		b = hfmt.Appendf(b, "%v\n", n.Kind())
	}

	for _, ch := range n.Children() {
		b = dump(b, ch, d+1)
	}

	return b
}
