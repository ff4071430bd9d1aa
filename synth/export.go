// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package synth

import (
	"math"
	"strconv"
	"strings"

	"github.com/albertocavalcante/facadoc/model"
)

// exportValue renders v in the runtime's literal export form, e.g.
//
//	array (
//	  0 => 1,
//	  'key' =>
//	  array (
//	    0 => NULL,
//	  ),
//	)
func exportValue(v *model.Value) string {
	var b strings.Builder
	writeExport(&b, v, 1)
	return b.String()
}

func writeExport(b *strings.Builder, v *model.Value, level int) {
	if v == nil {
		b.WriteString("NULL")
		return
	}
	switch v.Kind {
	case model.Null:
		b.WriteString("NULL")
	case model.Bool:
		b.WriteString(strconv.FormatBool(v.Bool))
	case model.Int:
		b.WriteString(exportInt(v.Int))
	case model.Float:
		b.WriteString(exportFloat(v.Float))
	case model.String:
		b.WriteString(exportString(v.Str))
	case model.Array:
		if level > 1 {
			b.WriteByte('\n')
			b.WriteString(strings.Repeat(" ", level-1))
		}
		b.WriteString("array (\n")
		for _, e := range v.Items {
			b.WriteString(strings.Repeat(" ", level+1))
			if e.Key.IsString {
				b.WriteString(exportString(e.Key.Str))
			} else {
				b.WriteString(strconv.FormatInt(e.Key.Int, 10))
			}
			b.WriteString(" => ")
			writeExport(b, e.Value, level+2)
			b.WriteString(",\n")
		}
		if level > 1 {
			b.WriteString(strings.Repeat(" ", level-1))
		}
		b.WriteByte(')')
	}
}

func exportInt(i int64) string {
	if i == math.MinInt64 {
		// The minimum has no positive counterpart as a literal.
		return "-9223372036854775807-1"
	}
	return strconv.FormatInt(i, 10)
}

var stringEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\x00", `' . "\0" . '`)

func exportString(s string) string {
	return "'" + stringEscaper.Replace(s) + "'"
}

// exportFloat renders f with the shortest digits that round-trip. Exponent
// form is used when the decimal point falls more than 4 places before the
// first digit or more than 17 places after it. Finite results without a
// point or exponent get ".0".
func exportFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NAN"
	case math.IsInf(f, 1):
		return "INF"
	case math.IsInf(f, -1):
		return "-INF"
	}

	sign := ""
	if math.Signbit(f) {
		sign = "-"
		f = -f
	}

	// d.ddde±x: collect the mantissa digits and the decimal point position.
	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
	digits := strings.Replace(mantissa, ".", "", 1)
	e, _ := strconv.Atoi(exp)
	decpt := e + 1

	const ndigit = 17
	var b strings.Builder
	b.WriteString(sign)

	exponential := decpt > ndigit
	if decpt < 0 {
		exponential = decpt < -3
	}
	switch {
	case exponential:
		b.WriteByte(digits[0])
		b.WriteByte('.')
		if len(digits) == 1 {
			b.WriteByte('0')
		} else {
			b.WriteString(digits[1:])
		}
		b.WriteByte('E')
		if decpt-1 < 0 {
			b.WriteByte('-')
		} else {
			b.WriteByte('+')
		}
		b.WriteString(strconv.Itoa(abs(decpt - 1)))
	case decpt < 0:
		b.WriteString("0.")
		b.WriteString(strings.Repeat("0", -decpt))
		b.WriteString(digits)
	default:
		if decpt >= len(digits) {
			b.WriteString(digits)
			b.WriteString(strings.Repeat("0", decpt-len(digits)))
		} else {
			if decpt == 0 {
				b.WriteByte('0')
			} else {
				b.WriteString(digits[:decpt])
			}
			b.WriteByte('.')
			b.WriteString(digits[decpt:])
		}
	}

	out := b.String()
	if !strings.ContainsAny(out, ".eE") {
		out += ".0"
	}
	return out
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
