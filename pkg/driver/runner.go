package driver

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"go-minirt/pkg/bst"
	"go-minirt/pkg/heap"
	"go-minirt/pkg/object"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	ErrNoReceiver = errors.New("no receiver, use 'new' first")
	ErrSyntax     = errors.New("syntax error")
)

// Runner executes scripts of method invocations against one receiver.
//
//	# comment
//	new               allocate an uninitialised Tree object as receiver
//	Init 16           invoke a method by selector with integer arguments
//	println Search 4  invoke and write the result to the sink
//	println 100000000 write a literal to the sink
type Runner struct {
	rt   *object.Runtime
	recv heap.Ref
	log  logrus.FieldLogger
}

func NewRunner(rt *object.Runtime) *Runner {
	return &Runner{
		rt:  rt,
		log: rt.Log().WithField("component", "driver"),
	}
}

// Receiver returns the current receiver, heap.Nil before 'new'.
func (r *Runner) Receiver() heap.Ref {
	return r.recv
}

func (r *Runner) Run(script io.Reader) error {
	sc := bufio.NewScanner(script)
	for n := 1; sc.Scan(); n++ {
		if err := r.Exec(sc.Text()); err != nil {
			return errors.Wrapf(err, "line %d", n)
		}
	}
	return errors.Wrap(sc.Err(), "failed to read script")
}

// Exec runs a single script line.
func (r *Runner) Exec(line string) (err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}

	echo := fields[0] == "println"
	if echo {
		fields = fields[1:]
		if len(fields) == 0 {
			return errors.Wrap(ErrSyntax, "println needs an operand")
		}
		if len(fields) == 1 {
			if v, err := strconv.ParseInt(fields[0], 10, 64); err == nil {
				r.rt.Out().Println(v)
				return nil
			}
		}
	}

	if fields[0] == "new" {
		if echo || len(fields) > 2 {
			return errors.Wrap(ErrSyntax, "usage: new [key]")
		}
		ref, err := r.rt.NewObject(bst.Class(), bst.NodeSize)
		if err != nil {
			return err
		}
		if len(fields) == 2 {
			key, err := strconv.ParseInt(fields[1], 10, 64)
			if err != nil {
				return errors.Wrapf(ErrSyntax, "key '%s' is not an integer", fields[1])
			}
			if _, err := r.rt.Send(ref, "Init", object.IntWord(key)); err != nil {
				return err
			}
		}
		r.recv = ref
		return nil
	}

	if r.recv == heap.Nil {
		return ErrNoReceiver
	}

	args := make([]heap.Word, 0, len(fields)-1)
	for _, f := range fields[1:] {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return errors.Wrapf(ErrSyntax, "argument '%s' is not an integer", f)
		}
		args = append(args, object.IntWord(v))
	}

	defer func() {
		if p := recover(); p != nil {
			if e, ok := p.(error); ok {
				err = errors.Wrapf(e, "%s panicked", fields[0])
				return
			}
			err = errors.Errorf("%s panicked: %v", fields[0], p)
		}
	}()

	res, err := r.rt.Send(r.recv, fields[0], args...)
	if err != nil {
		return err
	}
	r.log.WithFields(logrus.Fields{
		"selector": fields[0],
		"result":   int64(res),
	}).Debug("sent")

	if echo {
		r.rt.Out().Println(object.WordInt(res))
	}
	return nil
}
