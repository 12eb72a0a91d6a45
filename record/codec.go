package record

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
)

var endian = binary.LittleEndian

// maxString bounds the length of a string field when reading.
const maxString = 1 << 20

// Writer writes the fields of a positional record. The first error is
// kept and all later writes are skipped.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter returns a Writer writing to w.
func NewWriter(w io.Writer) *Writer { return &Writer{w: w} }

// Err returns the first error encountered.
func (w *Writer) Err() error { return w.err }

func (w *Writer) write(v interface{}) {
	if w.err != nil {
		return
	}
	w.err = binary.Write(w.w, endian, v)
}

// Int writes v as int32. Values outside the int32 range fail the record.
func (w *Writer) Int(v int) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		if w.err == nil {
			w.err = fmt.Errorf("integer %d out of range", v)
		}
		return
	}
	w.write(int32(v))
}

func (w *Writer) Float(v float64)     { w.write(v) }
func (w *Writer) Bytes(b []byte)      { w.write(b) }
func (w *Writer) Color(c color.NRGBA) { w.write([4]uint8{c.R, c.G, c.B, c.A}) }

func (w *Writer) Bool(v bool) {
	var b uint8
	if v {
		b = 1
	}
	w.write(b)
}

// String writes the length of s followed by its bytes. The empty string
// is written as length 0 which reads back as absent.
func (w *Writer) String(s string) {
	w.Int(len(s))
	if len(s) > 0 {
		w.write([]byte(s))
	}
}

// Reader reads the fields of a positional record in the order they were
// written. The first error is kept and all later reads return zero values.
type Reader struct {
	r   io.Reader
	err error
}

// NewReader returns a Reader reading from r.
func NewReader(r io.Reader) *Reader { return &Reader{r: r} }

// Err returns the first error encountered.
func (r *Reader) Err() error { return r.err }

func (r *Reader) read(v interface{}) bool {
	if r.err != nil {
		return false
	}
	if err := binary.Read(r.r, endian, v); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		r.err = err
		return false
	}
	return true
}

func (r *Reader) Int() int {
	var v int32
	r.read(&v)
	return int(v)
}

func (r *Reader) Float() float64 {
	var v float64
	if r.read(&v) && math.IsInf(v, 0) {
		r.err = fmt.Errorf("infinite value")
	}
	return v
}

func (r *Reader) Bool() bool {
	var b uint8
	if r.read(&b) && b > 1 {
		r.err = fmt.Errorf("bad boolean %d", b)
	}
	return b == 1
}

func (r *Reader) Color() color.NRGBA {
	var c [4]uint8
	r.read(&c)
	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}

// Bytes reads exactly len(b) bytes.
func (r *Reader) Bytes(b []byte) { r.read(b) }

// String reads a length prefixed string. Length 0 yields "".
func (r *Reader) String() string {
	n := r.Int()
	if r.err != nil || n == 0 {
		return ""
	}
	if n < 0 || n > maxString {
		r.err = fmt.Errorf("bad string length %d", n)
		return ""
	}
	b := make([]byte, n)
	r.read(b)
	return string(b)
}

// Fail records err unless an error is already pending.
func (r *Reader) Fail(err error) {
	if r.err == nil {
		r.err = err
	}
}
