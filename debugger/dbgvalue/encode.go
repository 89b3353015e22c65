// This file is part of Dolphin.
//
// Dolphin is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Dolphin is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Dolphin.  If not, see <https://www.gnu.org/licenses/>.

package dbgvalue

import (
	"encoding/hex"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// the number of hex characters a preview may show before truncation. note
// that the widest fixed-size type, TypeFloat64, is exactly this wide and so
// is never truncated.
const maxPreviewHex = 16

// matches text that is wholly composed of hex digit pairs
var hexString = regexp.MustCompile("^([0-9A-Fa-f]{2})*$")

// EncodedValue is the result of the Encode() function. When Valid is false
// the Preview field is empty and the ToBytes() function returns nothing.
//
// The Preview field is for display and is lossy: it truncates at
// maxPreviewHex hex characters. ToBytes() is not lossy, it always produces
// the full byte sequence for the input text.
type EncodedValue struct {
	Preview string
	Valid   bool

	typ  Type
	text string
}

// Encode converts input text into a typed byte sequence. Malformed and
// out-of-range input is indicated by the Valid field of the returned
// EncodedValue. The function never panics on bad input.
//
// Empty text is not encodable and gives Valid == false.
//
// Space characters are ignored for every type except TypeASCII.
func Encode(text string, typ Type, base Base) EncodedValue {
	v := EncodedValue{typ: typ, text: text}

	if typ != TypeASCII {
		v.text = strings.ReplaceAll(v.text, " ", "")
	}

	if v.text == "" {
		return v
	}

	var hexOut string
	good := false

	switch typ {
	case TypeASCII:
		good = true
		hexOut = fmt.Sprintf("%X", latin1(v.text))

	case TypeFloat32:
		f, err := strconv.ParseFloat(v.text, 32)
		good = err == nil
		if good {
			hexOut = fmt.Sprintf("%08X", math.Float32bits(float32(f)))
		}

	case TypeFloat64:
		f, err := strconv.ParseFloat(v.text, 64)
		good = err == nil
		if good {
			hexOut = fmt.Sprintf("%016X", math.Float64bits(f))
		}

	case TypeS8:
		// parsed with 16bit width and range checked, so that input like
		// "-1000" fails as out-of-range rather than wrapping
		i, err := parseInt(v.text, base, 16)
		good = err == nil && i >= math.MinInt8 && i <= math.MaxInt8
		if good {
			hexOut = fmt.Sprintf("%02X", uint8(i))
		}

	case TypeS16:
		i, err := parseInt(v.text, base, 16)
		good = err == nil
		if good {
			hexOut = fmt.Sprintf("%04X", uint16(i))
		}

	case TypeS32:
		i, err := parseInt(v.text, base, 32)
		good = err == nil
		if good {
			hexOut = fmt.Sprintf("%08X", uint32(i))
		}

	case TypeU8:
		u, err := parseUint(v.text, base, 16)
		good = err == nil && u&0xff00 == 0
		if good {
			hexOut = fmt.Sprintf("%02X", u)
		}

	case TypeU16:
		u, err := parseUint(v.text, base, 16)
		good = err == nil
		if good {
			hexOut = fmt.Sprintf("%04X", u)
		}

	case TypeU32:
		u, err := parseUint(v.text, base, 32)
		good = err == nil
		if good {
			hexOut = fmt.Sprintf("%08X", u)
		}

	case TypeHexString:
		good = hexString.MatchString(v.text)
		if good {
			hexOut = strings.ToUpper(v.text)
		}
	}

	if !good {
		return v
	}

	v.Valid = true
	v.Preview = preview(hexOut)

	return v
}

// ToBytes returns the full byte sequence for the encoded value, suitable
// for committing to memory or for use as a search pattern. An invalid
// value gives a nil slice.
//
// For the variable width types the bytes are rebuilt from the original
// input text, not from the possibly truncated preview. The fixed-size
// types are narrow enough that their preview is never truncated and can be
// decoded directly.
func (v EncodedValue) ToBytes() []uint8 {
	if !v.Valid {
		return nil
	}

	switch v.typ {
	case TypeASCII:
		return latin1(v.text)
	case TypeHexString:
		b, err := hex.DecodeString(v.text)
		if err != nil {
			return nil
		}
		return b
	}

	b, err := hex.DecodeString(strings.ReplaceAll(v.Preview, " ", ""))
	if err != nil {
		return nil
	}
	return b
}

// preview renders a hex string for display: truncation at maxPreviewHex
// characters with an ellipsis; and a space inserted every two characters,
// counting from the least significant end.
func preview(hexOut string) string {
	truncated := false
	if len(hexOut) > maxPreviewHex {
		hexOut = hexOut[:maxPreviewHex]
		truncated = true
	}

	s := strings.Builder{}
	for i := 0; i < len(hexOut); i++ {
		if i > 0 && (len(hexOut)-i)%2 == 0 {
			s.WriteRune(' ')
		}
		s.WriteByte(hexOut[i])
	}
	if truncated {
		s.WriteString("...")
	}

	return s.String()
}

// latin1 converts text to its 8bit code units. code points that do not fit
// in 8bits are replaced with a question mark.
func latin1(text string) []uint8 {
	b := make([]uint8, 0, len(text))
	for _, r := range text {
		if r > 0xff {
			r = '?'
		}
		b = append(b, uint8(r))
	}
	return b
}

// strip0x removes a leading hex prefix, taking care of any sign character.
func strip0x(text string) string {
	s := text
	sign := ""
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		sign = s[:1]
		s = s[1:]
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
	}
	return sign + s
}

func parseInt(text string, base Base, bitSize int) (int64, error) {
	if base == BaseHex {
		return strconv.ParseInt(strip0x(text), 16, bitSize)
	}
	return strconv.ParseInt(text, 10, bitSize)
}

func parseUint(text string, base Base, bitSize int) (uint64, error) {
	if base == BaseHex {
		return strconv.ParseUint(strip0x(text), 16, bitSize)
	}
	return strconv.ParseUint(text, 10, bitSize)
}
