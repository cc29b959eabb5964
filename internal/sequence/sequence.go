// Package sequence builds the in-memory Fibonacci sequence buffer.
//
// Values are int64 and wrap silently on overflow; F(92) is the last value
// that fits. Seeds are written only where the buffer has room for them.
package sequence

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrNegativeLength is returned when a buffer of negative length is requested.
var ErrNegativeLength = errors.New("sequence length must not be negative")

// ErrAllocation is returned when the runtime refuses to allocate the buffer.
var ErrAllocation = errors.New("sequence buffer allocation failed")

// Buffer holds F(0)..F(n-1).
type Buffer []int64

// Allocate returns a zeroed buffer of n elements.
func Allocate(n int) (buf Buffer, err error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLength, n)
	}
	defer func() {
		if r := recover(); r != nil {
			buf = nil
			err = fmt.Errorf("%w: %d elements: %v", ErrAllocation, n, r)
		}
	}()
	return make(Buffer, n), nil
}

// Generate allocates a buffer of n elements and fills it with the first n
// Fibonacci numbers. progress, if non-nil, is called with each index from 2
// to n-1 in increasing order, before that element is computed.
func Generate(n int, progress func(i int)) (Buffer, error) {
	buf, err := Allocate(n)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		buf[0] = 0
	}
	if n > 1 {
		buf[1] = 1
	}
	for i := 2; i < n; i++ {
		if progress != nil {
			progress(i)
		}
		buf[i] = buf[i-1] + buf[i-2]
	}
	return buf, nil
}

// Calculations returns how many elements Generate computes from earlier ones.
func Calculations(n int) int {
	if n < 2 {
		return 0
	}
	return n - 2
}

// WriteTo writes each value in decimal on its own line.
func (b Buffer) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var total int64
	scratch := make([]byte, 0, 24)
	for _, v := range b {
		scratch = strconv.AppendInt(scratch[:0], v, 10)
		scratch = append(scratch, '\n')
		n, err := bw.Write(scratch)
		total += int64(n)
		if err != nil {
			return total, fmt.Errorf("write sequence: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return total, fmt.Errorf("flush sequence: %w", err)
	}
	return total, nil
}
