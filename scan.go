package printf

// Scanning is a single forward pass over the template. Refer to man
// printf(3) for the grammar of a conversion specification.

type scanState uint8

const (
	// stateNone is entered at the start and after a specification or "%%".
	stateNone scanState = iota
	// stateLiteral accumulates a run of plain bytes.
	stateLiteral
	// statePercent means a '%' was just seen.
	statePercent
)

func isFlag(c byte) bool {
	switch c {
	case '#', '0', '+', '-', ' ', '\'', 'I':
		return true
	}
	return false
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isLength(c byte) bool {
	switch c {
	case 'h', 'l', 'q', 'L', 'j', 'z', 'Z', 't':
		return true
	}
	return false
}

func isVerb(c byte) bool {
	switch c {
	case 'd', 'i', 'o', 'u', 'x', 'X', 'e', 'E', 'f', 'F', 'g', 'G',
		'a', 'A', 'c', 's', 'C', 'S', 'p', 'n', 'm':
		return true
	}
	return false
}

// Visit scans template front to back exactly once, reporting literal runs,
// escaped percents, and conversion specifications to vis. The template may
// contain arbitrary bytes; it is never modified and no byte is examined
// twice.
//
// A specification truncated by the end of the template is still delivered,
// with an empty Verb field; rejecting it is [ParseSpec]'s job. After a
// specification the scan resumes in literal state at the specification's end
// index, so the terminating byte (if any) starts the next literal run.
func Visit(template []byte, vis Visitor) {
	state := stateNone
	start := 0 // literal run start, valid in stateLiteral
	n := len(template)

	for i := 0; i < n; i++ {
		onPercent := template[i] == '%'
		switch state {
		case stateNone:
			if onPercent {
				state = statePercent
			} else {
				state = stateLiteral
				start = i
			}
		case stateLiteral:
			if onPercent {
				vis.VisitLiteral(template[start:i])
				state = statePercent
			}
		case statePercent:
			if onPercent {
				vis.VisitEscapedPercent()
				state = stateNone
				break
			}
			i = scanSpec(template, i, vis)
			if i == n {
				state = stateNone
			} else {
				state = stateLiteral
				start = i
			}
		}
	}

	if state == stateLiteral {
		vis.VisitLiteral(template[start:])
	}
	vis.VisitEOF()
}

// scanSpec eats one conversion specification beginning at start, the index
// of the first byte after '%', and returns its end index (the first byte
// past the specification, possibly len(template)).
//
// Five monotone cursors record where each field begins; a cursor is seeded
// the instant the previous field's predicate first fails, so the fields are
// contiguous and touch. A cursor value of zero means the field has not
// opened yet — start is always at least 1, so zero is never a real boundary.
// Past the end of the template each byte scans as NUL, which fails every
// predicate and force-closes any open field, guaranteeing termination on a
// truncated specification.
func scanSpec(template []byte, start int, vis Visitor) int {
	n := len(template)
	flags := start
	var width, prec, length, verb, end int

	for i := start; ; i++ {
		var c byte
		if i < n {
			c = template[i]
		}
		if width == 0 {
			// still eating flags
			if isFlag(c) {
				continue
			}
			width = i
		}
		if prec == 0 {
			// still eating field width
			if isDigit(c) {
				continue
			}
			prec = i
		}
		if length == 0 {
			// still eating precision
			if c == '.' || isDigit(c) {
				continue
			}
			length = i
		}
		if verb == 0 {
			// still eating length modifier
			if isLength(c) {
				continue
			}
			verb = i
		}
		if isVerb(c) {
			continue
		}
		end = i
		break
	}

	vis.VisitSpec(RawSpec{
		Flags:     template[flags:width],
		Width:     template[width:prec],
		Precision: template[prec:length],
		Length:    template[length:verb],
		Verb:      template[verb:end],
	})
	return end
}
