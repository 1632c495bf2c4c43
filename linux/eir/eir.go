// Package eir decodes Extended Inquiry Response and advertising data records
// [Core Spec Supplement, Part A, 1].
package eir

import (
	"github.com/pkg/errors"
)

// Data types used by discovery.
const (
	TypeFlags        = 0x01
	TypeNameShort    = 0x08
	TypeNameComplete = 0x09
	TypeTxPower      = 0x0A
	TypeMfgData      = 0xFF

	// MaxLength is the size of an extended inquiry response.
	MaxLength = 240
)

// Record is one length/type/value entry.
type Record struct {
	Type byte
	Data []byte
}

// Records splits b into its records. Parsing stops at the first zero length
// (significant part of the data ends there). A record that overruns b is an
// error; the records decoded before it are still returned.
func Records(b []byte) ([]Record, error) {
	var rr []Record
	for i := 0; i < len(b); {
		length := int(b[i])
		if length == 0 {
			break
		}
		if i+length >= len(b) {
			return rr, errors.Errorf("record at %d overruns data: want %d, have %d", i, i+length+1, len(b))
		}
		rr = append(rr, Record{Type: b[i+1], Data: b[i+2 : i+1+length]})
		i += length + 1
	}
	return rr, nil
}

// Name returns the device name carried in b. The complete name wins over
// the shortened one when both are present.
func Name(b []byte) string {
	if n, ok := Find(b, TypeNameComplete); ok && len(n) > 0 {
		return string(n)
	}
	n, _ := Find(b, TypeNameShort)
	return string(n)
}

// Find returns the data of the first record of type t.
func Find(b []byte, t byte) ([]byte, bool) {
	rr, _ := Records(b)
	for _, r := range rr {
		if r.Type == t {
			return r.Data, true
		}
	}
	return nil, false
}
