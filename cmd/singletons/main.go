package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/sghaida/singleton/internal/catalogue"
	"github.com/sghaida/singleton/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns its exit code:
// 0 on success, 1 when a page fails, 2 on bad usage (including an unknown
// page name) or configuration.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	flags := flag.NewFlagSet("singletons", flag.ContinueOnError)
	flags.SetOutput(stderr)

	pagesFlag := flags.String("page", strings.Join(cfg.Pages, ","), "comma-separated page names to run (default: all)")
	list := flags.Bool("list", false, "list pages and exit")

	if err := flags.Parse(args); err != nil {
		return 2
	}
	if flags.NArg() > 0 {
		_, _ = fmt.Fprintln(stderr, "usage: singletons [-list] [-page name[,name...]]")
		return 2
	}

	logger := log.New(stderr, cfg.LogPrefix+": ", 0)
	reg := catalogue.Default()

	if *list {
		for _, name := range reg.Names() {
			_, _ = fmt.Fprintf(stdout, "%-24s %s\n", name, reg.MustGet(name).Title)
		}
		return 0
	}

	names := splitPages(*pagesFlag)
	if len(names) == 0 {
		names = reg.Names()
	}

	for _, name := range names {
		if _, ok := reg.Get(name); !ok {
			logger.Printf("unknown page %q (have: %s)", name, strings.Join(reg.Names(), ", "))
			return 2
		}
	}

	for _, name := range names {
		p := reg.MustGet(name)
		_, _ = fmt.Fprintf(stdout, "# %s\n", p.Title)
		if err := reg.Run(name, stdout); err != nil {
			logger.Printf("page %s: %v", name, err)
			return 1
		}
		_, _ = fmt.Fprintln(stdout)
	}
	return 0
}

// splitPages turns "a, b,,c" into [a b c].
func splitPages(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
