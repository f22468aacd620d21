package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"

	"github.com/symonk/linlist/internal/demo"
)

func main() {
	noColor := flag.Bool("nocolor", false, "disable coloured output")
	containers := flag.Bool("containers", false, "also demonstrate the stack, queue and deque")
	flag.Parse()

	opts := []demo.Option{
		demo.WithColor(!*noColor),
		demo.WithContainers(*containers),
	}
	if flag.NArg() > 0 {
		values := make([]int, 0, flag.NArg())
		for _, arg := range flag.Args() {
			v, err := strconv.Atoi(arg)
			if err != nil {
				color.Red("invalid value %q: %v", arg, err)
				os.Exit(2)
			}
			values = append(values, v)
		}
		opts = append(opts, demo.WithValues(values...))
	}

	if err := demo.New(opts...).Run(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("linlist: %v", err))
		os.Exit(1)
	}
}
