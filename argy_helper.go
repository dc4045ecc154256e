package argy

import (
	"fmt"
	"os"

	"github.com/amterp/color"
)

// ExitFunc is the interface for exiting the program
type ExitFunc func(int)

// StderrWriter is the interface for writing to stderr
type StderrWriter interface {
	Write([]byte) (int, error)
}

// StdoutWriter is the interface for writing to stdout
type StdoutWriter interface {
	Write([]byte) (int, error)
}

var osExit ExitFunc = os.Exit
var stderrWriter StderrWriter = os.Stderr
var stdoutWriter StdoutWriter = os.Stdout

var (
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
)

// SetStderrWriter allows overriding the stderr writer for testing or custom output
func SetStderrWriter(writer StderrWriter) {
	stderrWriter = writer
}

// SetStdoutWriter allows overriding the stdout writer for testing or custom output
func SetStdoutWriter(writer StdoutWriter) {
	stdoutWriter = writer
}

// SetExitFunc allows overriding the exit function for testing
func SetExitFunc(exitFunc ExitFunc) {
	osExit = exitFunc
}

func printWarning(msg string) {
	fmt.Fprintln(stderrWriter, yellow.Sprint("Argy warning: "+msg))
}

func printError(msg string) {
	fmt.Fprintln(stderrWriter, red.Sprint("Error: "+msg))
}

// ExitOnError prints err as an error line and exits with code 1. It does
// nothing when err is nil.
func ExitOnError(err error) {
	if err == nil {
		return
	}
	printError(err.Error())
	osExit(1)
}
