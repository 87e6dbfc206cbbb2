// Package logger provides the levelled logger used by the bstmap
// tools. It is implemented on top of github.com/sirupsen/logrus and
// can optionally tag every line with the calling function and file.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

type Logger struct {
	lock      sync.Mutex
	log       *logrus.Logger // actual logger
	printFunc bool
	printFile bool
	dep       int // call depth
}

func NewLogger() *Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	l.SetLevel(logrus.InfoLevel)
	return &Logger{
		log: l,
		dep: 5,
	}
}

func (l *Logger) entry(depth int) *logrus.Entry {
	e := logrus.NewEntry(l.log)
	if !l.printFunc && !l.printFile {
		return e
	}
	fn, file := trace(depth)
	fields := logrus.Fields{}
	if l.printFunc {
		fields["func"] = fn
	}
	if l.printFile {
		fields["file"] = file
	}
	return e.WithFields(fields)
}

func (l *Logger) logInternal(level logrus.Level, format string, args ...interface{}) {
	l.lock.Lock()
	e := l.entry(l.dep)
	l.lock.Unlock()
	switch level {
	case logrus.FatalLevel:
		e.Fatalf(format, args...)
	case logrus.PanicLevel:
		e.Panicf(format, args...)
	default:
		if len(args) == 0 {
			e.Log(level, format)
			return
		}
		e.Logf(level, format, args...)
	}
}

// SetLevel parses and applies a level name such as "debug" or "warn".
func (l *Logger) SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	l.log.SetLevel(lvl)
	return nil
}

func (l *Logger) Level() string {
	return l.log.GetLevel().String()
}

// SetFormat selects the text or json formatter.
func (l *Logger) SetFormat(format string) error {
	switch strings.ToLower(format) {
	case FormatText:
		l.log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case FormatJSON:
		l.log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("logger: unknown format %q", format)
	}
	return nil
}

func (l *Logger) SetOutput(w io.Writer) {
	l.log.SetOutput(w)
}

func (l *Logger) SetPrintFunc(ok bool) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.printFunc = ok
}

func (l *Logger) SetPrintFile(ok bool) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.printFile = ok
}

func (l *Logger) SetCallDepth(depth int) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.dep = depth
}

// Entry returns a logrus entry tagged with the given component name,
// for handing to code that logs through logrus directly.
func (l *Logger) Entry(component string) *logrus.Entry {
	return logrus.NewEntry(l.log).WithField("component", component)
}

func (l *Logger) Trace(message string) {
	l.logInternal(logrus.TraceLevel, message)
}

func (l *Logger) Tracef(format string, args ...interface{}) {
	l.logInternal(logrus.TraceLevel, format, args...)
}

func (l *Logger) Debug(message string) {
	l.logInternal(logrus.DebugLevel, message)
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logInternal(logrus.DebugLevel, format, args...)
}

func (l *Logger) Info(message string) {
	l.logInternal(logrus.InfoLevel, message)
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.logInternal(logrus.InfoLevel, format, args...)
}

func (l *Logger) Warn(message string) {
	l.logInternal(logrus.WarnLevel, message)
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logInternal(logrus.WarnLevel, format, args...)
}

func (l *Logger) Error(message string) {
	l.logInternal(logrus.ErrorLevel, message)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logInternal(logrus.ErrorLevel, format, args...)
}

func (l *Logger) Fatal(message string) {
	l.logInternal(logrus.FatalLevel, message)
}

func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.logInternal(logrus.FatalLevel, format, args...)
}

func (l *Logger) Panic(message string) {
	l.logInternal(logrus.PanicLevel, message)
}

func (l *Logger) Panicf(format string, args ...interface{}) {
	l.logInternal(logrus.PanicLevel, format, args...)
}

func trace(calldepth int) (string, string) {
	pc := make([]uintptr, 10) // at least 1 entry needed
	n := runtime.Callers(calldepth, pc)
	if n == 0 {
		return "unknown", "unknown"
	}
	frame, _ := runtime.CallersFrames(pc[:n]).Next()
	return filepath.Base(frame.Function), fmt.Sprintf("%s:%d", filepath.Base(frame.File), frame.Line)
}
