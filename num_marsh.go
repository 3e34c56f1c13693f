// This file implements encoding/decoding of Nums.

package bigfloat

import (
	"encoding/binary"
	"fmt"
	"math/big"
)

// Gob codec version. Permits backward-compatible changes to the encoding.
const numGobVersion byte = 1

// GobEncode implements the gob.GobEncoder interface. The value is
// marshaled with all its attributes: precision, rounding direction and
// NaN state.
func (x Num) GobEncode() ([]byte, error) {
	b := byte((x.acc+1)&3) << 1
	if x.nan {
		b |= 1
		// a NaN carries no value payload, only its precision
		buf := make([]byte, 2+4)
		buf[0] = numGobVersion
		buf[1] = b
		binary.BigEndian.PutUint32(buf[2:], uint32(x.f.Prec()))
		return buf, nil
	}
	payload, err := x.f.GobEncode()
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 2, 2+len(payload))
	buf[0] = numGobVersion
	buf[1] = b
	return append(buf, payload...), nil
}

// GobDecode implements the gob.GobDecoder interface. The previous value
// of z is overwritten entirely, precision included.
func (z *Num) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		*z = Num{}
		return nil
	}
	if buf[0] != numGobVersion {
		return fmt.Errorf("Num.GobDecode: encoding version %d not supported", buf[0])
	}
	if len(buf) < 2 {
		return fmt.Errorf("Num.GobDecode: buffer too small")
	}

	acc := Accuracy((buf[1]>>1)&3) - 1
	if acc < Below || acc > Above {
		return fmt.Errorf("Num.GobDecode: invalid accuracy %d", acc)
	}
	if buf[1]&1 != 0 {
		if len(buf) < 6 {
			return fmt.Errorf("Num.GobDecode: buffer too small")
		}
		prec := binary.BigEndian.Uint32(buf[2:])
		if prec < MinPrec {
			return fmt.Errorf("Num.GobDecode: invalid precision %d", prec)
		}
		*z = makeNaN(uint(prec))
		return nil
	}

	var f big.Float
	if err := f.GobDecode(buf[2:]); err != nil {
		return err
	}
	*z = makeNum(&f, acc)
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface. Only the
// value is marshaled, in full precision; precision and accuracy are not
// preserved. A NaN marshals as "NaN".
func (x Num) MarshalText() (text []byte, err error) {
	return x.Append(nil, 'g', -1), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. The
// value is rounded to z's previous precision, to nearest even, or to 64
// bits when unmarshaling into a zero Num.
func (z *Num) UnmarshalText(text []byte) error {
	prec := z.Prec()
	if prec == 0 {
		prec = 64
	}
	n, err := ParseExact(string(text), prec)
	if err != nil {
		return fmt.Errorf("bigfloat: cannot unmarshal %q into a Num (%v)", text, err)
	}
	*z = n
	return nil
}
