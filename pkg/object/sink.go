package object

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var ErrUnknownSink = errors.New("unknown output sink")

// NewSink maps a configuration name to a Sink.
func NewSink(name string, log logrus.FieldLogger) (Sink, error) {
	switch name {
	case "", "stdout":
		return WriterSink{os.Stdout}, nil
	case "log":
		return LogSink{log}, nil
	}
	return nil, errors.Wrapf(ErrUnknownSink, "'%s'", name)
}

// Sink receives integers written by running programs. Writes are fire and
// forget.
type Sink interface {
	Println(v int64)
}

// WriterSink writes one decimal integer per line.
type WriterSink struct {
	W io.Writer
}

func (s WriterSink) Println(v int64) {
	_, _ = fmt.Fprintln(s.W, v)
}

type LogSink struct {
	Log logrus.FieldLogger
}

func (s LogSink) Println(v int64) {
	s.Log.WithField("value", v).Info("println")
}

// Recorder keeps every value in memory.
type Recorder struct {
	Values []int64
}

func (r *Recorder) Println(v int64) {
	r.Values = append(r.Values, v)
}

func (r *Recorder) Reset() {
	r.Values = r.Values[:0]
}
