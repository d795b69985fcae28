// Package ui is the terminal front-end of the converter.
// It only parses arguments, asks for confirmation and renders what the service returns.
package ui

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"pressure-lab/errors"
	"pressure-lab/services"
	"strings"

	"github.com/gookit/color"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

var (
	resultStyle = color.New(color.FgGreen, color.OpBold)
	errorStyle  = color.New(color.FgRed)
	hintStyle   = color.New(color.FgGray)
)

type Terminal struct {
	service services.IConverterService
	in      *bufio.Reader
	out     io.Writer
}

func NewTerminal(service services.IConverterService, in io.Reader, out io.Writer) *Terminal {
	return &Terminal{service: service, in: bufio.NewReader(in), out: out}
}

// Run dispatches one command and returns the process exit code.
func (t *Terminal) Run(args []string) int {
	if len(args) == 0 {
		t.usage()
		return ExitUsage
	}
	switch args[0] {
	case "convert":
		return t.convert(args[1:])
	case "units":
		return t.units()
	case "history":
		return t.history()
	case "clear":
		return t.clear(args[1:])
	default:
		t.usage()
		return ExitUsage
	}
}

func (t *Terminal) usage() {
	from, to := t.service.DefaultSelection()
	fmt.Fprintln(t.out, "usage:")
	fmt.Fprintf(t.out, "  pressure convert [-from %s] [-to %s] [--] VALUE\n", from, to)
	fmt.Fprintln(t.out, "  pressure units")
	fmt.Fprintln(t.out, "  pressure history")
	fmt.Fprintln(t.out, "  pressure clear [-yes]")
}

func (t *Terminal) convert(args []string) int {
	defaultFrom, defaultTo := t.service.DefaultSelection()
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(t.out)
	from := fs.String("from", defaultFrom, "source unit id")
	to := fs.String("to", defaultTo, "destination unit id")
	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}

	conversion, err := t.service.Convert(strings.Join(fs.Args(), " "), *from, *to)
	if err != nil {
		fmt.Fprintln(t.out, errorStyle.Render(errors.UserMessage(err)))
		fmt.Fprintln(t.out, errors.Placeholder)
		return ExitError
	}

	fmt.Fprintln(t.out, resultStyle.Render(conversion.Summary()))
	t.service.RecordConversion(conversion.Input, conversion.From.ID, conversion.To.ID, conversion.Result)
	return ExitOK
}

func (t *Terminal) units() int {
	renderUnits(t.out, t.service.Units())
	return ExitOK
}

func (t *Terminal) history() int {
	entries := t.service.GetHistorySnapshot()
	if len(entries) == 0 {
		fmt.Fprintln(t.out, hintStyle.Render("目前沒有換算紀錄。"))
		return ExitOK
	}
	renderHistory(t.out, entries, t.service.Lookup)
	if !t.service.IsPersistenceAvailable() {
		fmt.Fprintln(t.out, hintStyle.Render("紀錄僅保存在本次執行期間。"))
	}
	return ExitOK
}

// clear asks before wiping a non-empty history; an empty history is left alone without a prompt.
func (t *Terminal) clear(args []string) int {
	fs := flag.NewFlagSet("clear", flag.ContinueOnError)
	fs.SetOutput(t.out)
	yes := fs.Bool("yes", false, "skip the confirmation prompt")
	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}

	if len(t.service.GetHistorySnapshot()) == 0 {
		return ExitOK
	}
	if !*yes && !t.confirm("確定要刪除所有詢問紀錄嗎？此動作無法復原。 [y/N] ") {
		return ExitOK
	}
	t.service.ClearHistory()
	return ExitOK
}

func (t *Terminal) confirm(question string) bool {
	fmt.Fprint(t.out, question)
	answer, err := t.in.ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
