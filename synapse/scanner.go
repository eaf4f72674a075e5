package synapse

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
)

// expNeg returns exp(-x), the short name used throughout this package for
// resolving per-step decay factors from a time constant and Δt.
func expNeg(x float64) float64 {
	return math.Exp(-x)
}

// fieldScanner reads whitespace-separated tokens (spaces or newlines) from a
// checkpoint stream, one Go value at a time. It exists so Store.Read can
// walk a fixed, ordered field list without repeating fmt.Fscan boilerplate
// at every call site.
type fieldScanner struct {
	sc *bufio.Scanner
}

func newFieldScanner(r io.Reader) *fieldScanner {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &fieldScanner{sc: sc}
}

// scan reads the next token and stores it into dst, which must be one of
// *int, *uint32, *float64, *bool, or *intType.
func (f *fieldScanner) scan(dst interface{}) error {
	if !f.sc.Scan() {
		if err := f.sc.Err(); err != nil {
			return err
		}
		return io.ErrUnexpectedEOF
	}
	tok := f.sc.Text()

	switch d := dst.(type) {
	case *int:
		v, err := strconv.Atoi(tok)
		if err != nil {
			return err
		}
		*d = v
	case *uint32:
		v, err := strconv.ParseUint(tok, 10, 32)
		if err != nil {
			return err
		}
		*d = uint32(v)
	case *float64:
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return err
		}
		*d = v
	case *bool:
		v, err := strconv.ParseBool(tok)
		if err != nil {
			return err
		}
		*d = v
	case *intType:
		v, err := strconv.Atoi(tok)
		if err != nil {
			return err
		}
		d.fromInt(v)
	default:
		return fmt.Errorf("synapse: unsupported checkpoint field type %T", dst)
	}
	return nil
}
