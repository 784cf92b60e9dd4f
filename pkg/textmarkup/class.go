package textmarkup

import (
	"strings"
	"unicode"
)

// LineClass is the syntactic category of a single input line.
type LineClass int

const (
	Blank LineClass = iota
	Bullet
	Indented
	SignatureLead
	PaymentLead
	Paragraph
)

const (
	bulletMarker    = "* "
	indentPrefix    = "    "
	signatureLead   = "thanks,"
	paymentLeadText = "please pay"
)

var classNames = [...]string{
	Blank:         "blank",
	Bullet:        "bullet",
	Indented:      "indented",
	SignatureLead: "signature",
	PaymentLead:   "payment",
	Paragraph:     "paragraph",
}

func (c LineClass) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return "unknown"
	}
	return classNames[c]
}

// Classify returns the class of line in isolation.
// A "Thanks," line is reported as SignatureLead even though the converter
// only treats it as one when another line follows.
func Classify(line string) LineClass {
	line = strings.TrimRightFunc(line, unicode.IsSpace)
	trimmed := strings.TrimSpace(line)

	switch {
	case trimmed == "":
		return Blank
	case isBullet(line):
		return Bullet
	case strings.HasPrefix(line, indentPrefix):
		return Indented
	case isSignatureLead(trimmed):
		return SignatureLead
	case isPaymentLead(trimmed):
		return PaymentLead
	default:
		return Paragraph
	}
}

func isBullet(line string) bool {
	return strings.HasPrefix(strings.TrimLeftFunc(line, unicode.IsSpace), bulletMarker)
}

func isSignatureLead(trimmed string) bool {
	return strings.ToLower(trimmed) == signatureLead
}

func isPaymentLead(trimmed string) bool {
	return strings.HasPrefix(strings.ToLower(trimmed), paymentLeadText)
}
