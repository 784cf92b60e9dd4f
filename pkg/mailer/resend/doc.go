// Package resend delivers mail through the Resend API.
package resend
