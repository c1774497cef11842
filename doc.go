// Package inin provides validation and canonical formatting for Iranian
// national identification numbers.
//
// An Iranian national ID is a 10-digit number whose last digit is a
// control digit computed from the first nine. The package exposes a
// single constructor, Parse, which accepts arbitrary text and returns
// either a validated NationalID value or ErrInvalidNationalID. A
// NationalID can only be obtained through Parse, so any value held by
// downstream code is known-valid and never needs re-checking.
//
// # Canonical form
//
// The canonical form is exactly 10 decimal digits. Inputs shorter than
// 10 characters are left-padded with '0' after trimming surrounding
// whitespace, so "451726707" and "0451726707" parse to the same value.
// Inputs containing anything other than decimal digits (after
// trimming) are rejected; the package does not convert Persian or
// Arabic-Indic digit shapes.
//
// # Usage
//
//	import "github.com/amirhosseinab/inin"
//
//	id, err := inin.Parse(" 0451726707 ")
//	if err != nil {
//		// errors.Is(err, inin.ErrInvalidNationalID)
//	}
//	fmt.Println(id) // 0451726707
//
// For fixtures and tests where the input is known-good, MustParse
// panics instead of returning an error. IsValid answers the boolean
// question without constructing a value.
//
// # Checksum
//
// Validation uses the official checksum: with digits d[0..9], let
// S be the sum of d[i]*(10-i) for i in 0..8 and r = S mod 11. The ID
// is valid when r < 2 and d[9] == r, or r >= 2 and d[9]+r == 11. An
// all-zero prefix (S == 0) is rejected even though it would satisfy
// the first branch.
//
// # Thread safety
//
// Parse is a pure function and NationalID is immutable, so values can
// be shared across goroutines without synchronization.
package inin
