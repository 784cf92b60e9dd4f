// Package textmarkup converts loosely structured invoice text into an HTML fragment.
//
// The input is the free-form body an invoice email is written in. Four line
// patterns are recognized in a single forward pass:
//
//   - Bullets: a line whose left-trimmed text starts with "* " becomes an <li>
//     inside a <ul> that stays open until a blank or plain line.
//   - Bank blocks: lines starting with four spaces are collected and rendered as
//     one indented <div>, lines joined with <br>.
//   - Signatures: a "Thanks," line followed by any line collapses into a single
//     <p>Thanks,<br>Name</p>.
//   - Payment leads: a line starting with "Please pay" gets a leading <br>.
//
// Everything else becomes a <p>. Every opened list or bank block is closed
// before the fragment is returned, even when the input ends mid-block.
//
// # Usage
//
//	body := "Hi Team,\n\n* Rent = $100\n\nThanks,\nMichael"
//	html := textmarkup.Convert(body)
//	// <p>Hi Team,</p>
//	// <ul>
//	// <li>Rent = $100</li>
//	// </ul>
//	// <p>Thanks,<br>Michael</p>
//
// # Escaping
//
// By default line content is copied into the markup verbatim, so HTML inside
// the text passes through. Use WithEscaping when the body comes from an
// untrusted source:
//
//	html := textmarkup.Convert(body, textmarkup.WithEscaping())
//
// Conversion is pure: it has no I/O, keeps no state between calls and is safe
// for concurrent use.
package textmarkup
