// Package report prints sequences and statistics in the console layout of
// the original exercise.
package report

import (
	"fmt"
	"io"

	"github.com/shashank-93rao/statistics"
)

// PerRow is the number of values printed on one line.
const PerRow = 10

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// values writes values right aligned in width 5, PerRow to a line.
func (p *printer) values(values []int32) {
	for i, v := range values {
		p.printf("%5d ", v)
		if (i+1)%PerRow == 0 {
			p.printf("\n")
		}
	}
}

// Write prints the input sequence, the statistics record and the even
// sequence of res.
func Write(w io.Writer, input []int32, res statistics.Result) error {
	p := &printer{w: w}

	p.printf("\n")
	p.printf("SIZE OF INPUT VECTOR = %d\n", len(input))
	p.printf("INPUT VECTOR = \n")
	p.values(input)
	p.printf("\n")

	p.printf("STATISTICS \n")
	p.printf("Average Value: %f \nMaximum Value: %f \nMinimum Value: %f \n", res.Average, res.Maximum, res.Minimum)
	p.printf("\n")

	p.printf("SIZE OF OUTPUT VECTOR = %d\n", len(res.Evens))
	p.printf("OUTPUT EVEN VECTOR = \n")
	p.values(res.Evens)
	p.printf("\n")

	return p.err
}
