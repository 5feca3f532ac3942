package printf

// RawSpec holds the five unparsed fields of one conversion specification,
// exactly as they appear in the template between the '%' and the end of the
// specifier.
//
// The slices are taken from the template without copying. They do not
// overlap, consecutive fields touch, and each field may be empty;
// concatenating all five reproduces the specification text. [ParseSpec]
// turns a RawSpec into a validated [Spec].
type RawSpec struct {
	Flags     []byte
	Width     []byte
	Precision []byte
	Length    []byte
	Verb      []byte
}

// text returns the specification text the five fields were sliced from.
// The string conversion is one allocation per directive — the price of a
// cache key, repaid on every hit by skipping revalidation. A stack scratch
// keeps it at one: realistic directives fit; only pathological widths spill
// to the heap.
func (r RawSpec) text() string {
	var scratch [32]byte
	b := scratch[:0]
	if n := len(r.Flags) + len(r.Width) + len(r.Precision) + len(r.Length) + len(r.Verb); n > len(scratch) {
		b = make([]byte, 0, n)
	}
	b = append(b, r.Flags...)
	b = append(b, r.Width...)
	b = append(b, r.Precision...)
	b = append(b, r.Length...)
	b = append(b, r.Verb...)
	return string(b)
}

// Visitor receives the events produced by [Visit] while it scans a template.
// The production consumer is the formatting engine behind [FormatTo];
// alternative renderers and test harnesses can implement it as well.
type Visitor interface {
	// VisitLiteral is called with each maximal run of template bytes that
	// contains no '%'. The slice aliases the template and must not be
	// retained past the call.
	VisitLiteral(b []byte)

	// VisitEscapedPercent is called when "%%" is found.
	VisitEscapedPercent()

	// VisitSpec is called with the raw fields of each conversion
	// specification.
	VisitSpec(raw RawSpec)

	// VisitEOF is called once after the last byte of the template.
	VisitEOF()
}

var percent = []byte{'%'}

// VisitorFuncs adapts plain functions to the [Visitor] interface. Nil fields
// are no-ops, except EscapedPercent, which defaults to forwarding a literal
// '%' to Literal.
type VisitorFuncs struct {
	Literal        func(b []byte)
	EscapedPercent func()
	Spec           func(raw RawSpec)
	EOF            func()
}

func (v *VisitorFuncs) VisitLiteral(b []byte) {
	if v.Literal != nil {
		v.Literal(b)
	}
}

func (v *VisitorFuncs) VisitEscapedPercent() {
	if v.EscapedPercent != nil {
		v.EscapedPercent()
		return
	}
	v.VisitLiteral(percent)
}

func (v *VisitorFuncs) VisitSpec(raw RawSpec) {
	if v.Spec != nil {
		v.Spec(raw)
	}
}

func (v *VisitorFuncs) VisitEOF() {
	if v.EOF != nil {
		v.EOF()
	}
}
