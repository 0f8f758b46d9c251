package main

import (
	"os"
	"strings"

	"github.com/XJIeI5/rpncalc/internal/logging"
	"github.com/codegangsta/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "calc"
	app.Usage = "evaluate infix arithmetic expressions"
	app.ArgsUsage = "[expression...]"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "quiet, q",
			Usage: "don't print the postfix form",
		},
		cli.BoolFlag{
			Name:  "strict",
			Usage: "refuse to evaluate malformed expressions",
		},
		cli.IntFlag{
			Name:  "v",
			Usage: "log verbosity",
		},
	}
	app.Action = func(c *cli.Context) error {
		log := logging.New(c.Int("v")).WithName("calc")
		opts := replOptions{
			quiet:  c.Bool("quiet"),
			strict: c.Bool("strict"),
		}

		if len(c.Args()) > 0 {
			calculate(app.Writer, log, strings.Join(c.Args(), " "), opts)
			return nil
		}
		opts.prompt = true
		if err := repl(os.Stdin, app.Writer, log, opts); err != nil {
			log.Error(err, "read input")
			return cli.NewExitError(err.Error(), 1)
		}
		return nil
	}
	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}
