package log

import (
	"fmt"
	"io"
	"os"
)

type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

type logger struct {
	out io.Writer
}

// New returns a Logger writing to stdout.
func New() Logger {
	return NewWriter(os.Stdout)
}

// NewWriter returns a Logger writing to w.
func NewWriter(w io.Writer) Logger {
	return &logger{out: w}
}

func (l *logger) Infof(format string, args ...interface{}) {
	fmt.Fprintf(l.out, "[INFO]\t"+format+"\n", args...)
}

func (l *logger) Errorf(format string, args ...interface{}) {
	fmt.Fprintf(l.out, "[ERROR]\t"+format+"\n", args...)
}

func (l *logger) Debugf(format string, args ...interface{}) {
	fmt.Fprintf(l.out, "[DEBUG]\t"+format+"\n", args...)
}
