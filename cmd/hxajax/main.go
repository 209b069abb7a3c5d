package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pthm/hxajax"
)

const version = "0.1.0"

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) < 1 {
		printUsage(out)
		return fmt.Errorf("missing command")
	}

	cmd := args[0]
	args = args[1:]

	switch cmd {
	case "attrs":
		return runAttrs(args, out)
	case "script":
		return runScript(args, out)
	case "tag":
		return runTag(args, out)
	case "version":
		fmt.Fprintf(out, "hxajax version %s\n", version)
		return nil
	case "help", "-h", "--help":
		printUsage(out)
		return nil
	default:
		printUsage(out)
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

func printUsage(out io.Writer) {
	fmt.Fprintln(out, `hxajax - inspect compiled ajax markup

Usage:
  hxajax <command> [flags]

Commands:
  attrs     Print the data-ajax attributes for the given options
  script    Print the legacy onclick/onsubmit script for the given options
  tag       Print the bootstrap script tag
  version   Print version
  help      Show this help

Option flags (attrs, script):
  -url -method -confirm -mode -loading -loading-duration -update
  -on-begin -on-complete -on-failure -on-success

Examples:
  hxajax attrs -url /todos -update list -mode after
  hxajax script -form -url /todos -confirm "Sure?"
  hxajax tag -cdn`)
}

// optionFlags binds Options fields to a flag set.
type optionFlags struct {
	opts hxajax.Options
	mode string
}

func newOptionFlags(fs *flag.FlagSet) *optionFlags {
	f := &optionFlags{}
	fs.StringVar(&f.opts.URL, "url", "", "request URL")
	fs.StringVar(&f.opts.HTTPMethod, "method", "", "HTTP method (Get, Post)")
	fs.StringVar(&f.opts.Confirm, "confirm", "", "confirmation message")
	fs.StringVar(&f.mode, "mode", "replace", "insertion mode (replace, before, after, replace-with)")
	fs.StringVar(&f.opts.LoadingElementID, "loading", "", "loading element id")
	fs.IntVar(&f.opts.LoadingElementDuration, "loading-duration", 0, "loading animation duration in ms")
	fs.StringVar(&f.opts.UpdateTargetID, "update", "", "update target element id")
	fs.StringVar(&f.opts.OnBegin, "on-begin", "", "OnBegin handler")
	fs.StringVar(&f.opts.OnComplete, "on-complete", "", "OnComplete handler")
	fs.StringVar(&f.opts.OnFailure, "on-failure", "", "OnFailure handler")
	fs.StringVar(&f.opts.OnSuccess, "on-success", "", "OnSuccess handler")
	return f
}

func (f *optionFlags) options() (*hxajax.Options, error) {
	mode, err := hxajax.ParseInsertionMode(f.mode)
	if err != nil {
		return nil, err
	}
	opts := f.opts
	if err := opts.SetInsertionMode(mode); err != nil {
		return nil, err
	}
	return &opts, nil
}

func runAttrs(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("attrs", flag.ContinueOnError)
	fs.SetOutput(out)
	f := newOptionFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	opts, err := f.options()
	if err != nil {
		return err
	}
	for _, attr := range opts.Attrs() {
		fmt.Fprintf(out, "%s=%q\n", attr.Name, fmt.Sprint(attr.Value))
	}
	return nil
}

func runScript(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("script", flag.ContinueOnError)
	fs.SetOutput(out)
	form := fs.Bool("form", false, "print form handlers instead of link handler")
	f := newOptionFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	opts, err := f.options()
	if err != nil {
		return err
	}

	scope := hxajax.NewConfig(hxajax.WithLegacyScript()).NewScope()
	var attrs hxajax.Attrs
	if *form {
		attrs, err = scope.FormAttrs(opts, nil)
	} else {
		attrs, err = scope.LinkAttrs(opts, nil)
	}
	if err != nil {
		return err
	}
	for _, attr := range attrs {
		fmt.Fprintf(out, "%s: %s\n", attr.Name, attr.Value)
	}
	return nil
}

func runTag(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("tag", flag.ContinueOnError)
	fs.SetOutput(out)
	cdn := fs.Bool("cdn", false, "load the client library from cdnjs")
	path := fs.String("path", hxajax.DefaultLocalScriptPath, "local script path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	opts := []hxajax.Option{hxajax.WithAlwaysInject(), hxajax.WithLocalScriptPath(*path)}
	if *cdn {
		opts = append(opts, hxajax.WithCDN())
	}
	fmt.Fprintln(out, hxajax.NewConfig(opts...).NewScope().ScriptTag())
	return nil
}
