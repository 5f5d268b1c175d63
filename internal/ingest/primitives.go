package ingest

import (
	"strconv"

	"github.com/hvacdesign/planload/internal/geometry"
)

// LinePrimitive is a stroked line from a page content stream, in PDF points.
type LinePrimitive struct {
	From  geometry.Point
	To    geometry.Point
	Width float64
}

// RectPrimitive is a rectangle path from a page content stream.
type RectPrimitive struct {
	X, Y, W, H float64
}

// PositionedText is a text-showing operation with its device-space origin.
type PositionedText struct {
	Text     string
	At       geometry.Point
	FontSize float64
}

// parseContentStream walks a decoded PDF content stream and collects path
// primitives and positioned text. Operand values are kept on a small stack
// the way a PDF interpreter would; graphics state beyond line width and the
// text matrix origin is ignored, which is sufficient for flat architectural
// exports.
func parseContentStream(data []byte) (lines []LinePrimitive, rects []RectPrimitive, texts []PositionedText) {
	toks := tokenize(data)

	var (
		stack          []string
		lineWidth      = 1.0
		curX, curY     float64
		startX, startY float64
		haveCur        bool
		pending        []LinePrimitive // path under construction, emitted on stroke

		textX, textY float64
		fontSize     = 1.0
		pendingText  []PositionedText
	)

	popFloats := func(n int) []float64 {
		if len(stack) < n {
			return nil
		}
		vals := make([]float64, n)
		ok := true
		for i := 0; i < n; i++ {
			v, err := strconv.ParseFloat(stack[len(stack)-n+i], 64)
			if err != nil {
				ok = false
				break
			}
			vals[i] = v
		}
		stack = stack[:len(stack)-n]
		if !ok {
			return nil
		}
		return vals
	}

	for _, tok := range toks {
		switch tok.kind {
		case tokNumber:
			stack = append(stack, tok.val)
			continue
		case tokString:
			stack = append(stack, tok.val)
			continue
		case tokName, tokArrayText:
			stack = append(stack, tok.val)
			continue
		}

		// operator
		switch tok.val {
		case "w":
			if v := popFloats(1); v != nil {
				lineWidth = v[0]
			}
		case "m":
			if v := popFloats(2); v != nil {
				curX, curY = v[0], v[1]
				startX, startY = curX, curY
				haveCur = true
			}
		case "l":
			if v := popFloats(2); v != nil && haveCur {
				pending = append(pending, LinePrimitive{
					From:  geometry.Point{X: curX, Y: curY},
					To:    geometry.Point{X: v[0], Y: v[1]},
					Width: lineWidth,
				})
				curX, curY = v[0], v[1]
			}
		case "h":
			if haveCur && (curX != startX || curY != startY) {
				pending = append(pending, LinePrimitive{
					From:  geometry.Point{X: curX, Y: curY},
					To:    geometry.Point{X: startX, Y: startY},
					Width: lineWidth,
				})
				curX, curY = startX, startY
			}
		case "re":
			if v := popFloats(4); v != nil {
				rects = append(rects, RectPrimitive{X: v[0], Y: v[1], W: v[2], H: v[3]})
			}
		case "S", "s", "B", "B*", "b", "b*":
			lines = append(lines, pending...)
			pending = pending[:0]
			haveCur = false
		case "f", "F", "f*", "n":
			// filled or discarded paths still bound rooms on many exports;
			// keep stroked lines only, drop the unstroked path
			pending = pending[:0]
			haveCur = false

		case "BT":
			textX, textY = 0, 0
			pendingText = pendingText[:0]
		case "Tf":
			if v := popFloats(1); v != nil {
				fontSize = v[0]
			}
			// the font name below the size was already consumed as a name
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case "Tm":
			if v := popFloats(6); v != nil {
				textX, textY = v[4], v[5]
			}
		case "Td", "TD":
			if v := popFloats(2); v != nil {
				textX += v[0]
				textY += v[1]
			}
		case "Tj", "'", "\"":
			if len(stack) > 0 {
				s := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if s != "" {
					pendingText = append(pendingText, PositionedText{
						Text: s, At: geometry.Point{X: textX, Y: textY}, FontSize: fontSize,
					})
				}
			}
		case "TJ":
			if len(stack) > 0 {
				s := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if s != "" {
					pendingText = append(pendingText, PositionedText{
						Text: s, At: geometry.Point{X: textX, Y: textY}, FontSize: fontSize,
					})
				}
			}
		case "ET":
			texts = append(texts, pendingText...)
			pendingText = pendingText[:0]
		}

		// operators clear any operands they did not consume
		stack = stack[:0]
	}

	return lines, rects, texts
}

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokString
	tokName
	tokArrayText
	tokOperator
)

type token struct {
	kind tokenKind
	val  string
}

// tokenize splits a content stream into operands and operators. Strings keep
// their decoded text; arrays collapse to the concatenation of their string
// elements (the TJ case).
func tokenize(data []byte) []token {
	var toks []token
	i := 0
	n := len(data)
	for i < n {
		c := data[i]
		switch {
		case c == ' ' || c == '\n' || c == '\r' || c == '\t' || c == 0:
			i++
		case c == '%': // comment to end of line
			for i < n && data[i] != '\n' {
				i++
			}
		case c == '(':
			s, next := readString(data, i)
			toks = append(toks, token{kind: tokString, val: s})
			i = next
		case c == '<':
			// hex string or dict open; skip to the closing bracket
			if i+1 < n && data[i+1] == '<' {
				i += 2
			} else {
				for i < n && data[i] != '>' {
					i++
				}
				i++
			}
		case c == '>':
			i++
		case c == '[':
			s, next := readArrayText(data, i)
			toks = append(toks, token{kind: tokArrayText, val: s})
			i = next
		case c == ']':
			i++
		case c == '/':
			j := i + 1
			for j < n && !isDelim(data[j]) {
				j++
			}
			toks = append(toks, token{kind: tokName, val: string(data[i:j])})
			i = j
		case c == '+' || c == '-' || c == '.' || (c >= '0' && c <= '9'):
			j := i + 1
			for j < n && (data[j] == '.' || data[j] == '-' || (data[j] >= '0' && data[j] <= '9')) {
				j++
			}
			toks = append(toks, token{kind: tokNumber, val: string(data[i:j])})
			i = j
		default:
			j := i + 1
			for j < n && !isDelim(data[j]) {
				j++
			}
			toks = append(toks, token{kind: tokOperator, val: string(data[i:j])})
			i = j
		}
	}
	return toks
}

func isDelim(c byte) bool {
	switch c {
	case ' ', '\n', '\r', '\t', 0, '(', ')', '<', '>', '[', ']', '/', '%':
		return true
	}
	return false
}

// readString decodes a PDF literal string starting at the '(' at data[i].
// Returns the text and the index just past the closing ')'.
func readString(data []byte, i int) (string, int) {
	var sb []byte
	depth := 0
	n := len(data)
	for ; i < n; i++ {
		c := data[i]
		if c == '\\' && i+1 < n {
			i++
			switch data[i] {
			case 'n':
				sb = append(sb, '\n')
			case 'r':
				sb = append(sb, '\r')
			case 't':
				sb = append(sb, '\t')
			case '(', ')', '\\':
				sb = append(sb, data[i])
			default:
				if data[i] >= '0' && data[i] <= '7' {
					val := int(data[i] - '0')
					for k := 0; k < 2 && i+1 < n && data[i+1] >= '0' && data[i+1] <= '7'; k++ {
						i++
						val = val*8 + int(data[i]-'0')
					}
					sb = append(sb, byte(val))
				} else {
					sb = append(sb, data[i])
				}
			}
			continue
		}
		if c == '(' {
			depth++
			if depth > 1 {
				sb = append(sb, c)
			}
			continue
		}
		if c == ')' {
			depth--
			if depth == 0 {
				return string(sb), i + 1
			}
			sb = append(sb, c)
			continue
		}
		if depth > 0 {
			sb = append(sb, c)
		}
	}
	return string(sb), i
}

// readArrayText concatenates the string elements of a PDF array starting at
// the '[' at data[i]. Kerning numbers between elements are dropped.
func readArrayText(data []byte, i int) (string, int) {
	var sb []byte
	n := len(data)
	i++ // past '['
	for i < n && data[i] != ']' {
		if data[i] == '(' {
			s, next := readString(data, i)
			sb = append(sb, s...)
			i = next
			continue
		}
		i++
	}
	return string(sb), i + 1
}
