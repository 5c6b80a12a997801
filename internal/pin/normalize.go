// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package pin canonicalizes user-entered PINs so that the same logical PIN
// always hashes to the same bytes, regardless of surrounding whitespace,
// keyboard digit script, or Unicode composition form.
package pin

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/MKhiriev/go-key-backup/models"
)

// Normalize returns the canonical form of pin:
//
//  1. leading and trailing whitespace is trimmed;
//  2. if everything except whitespace is decimal digits, the whitespace is
//     dropped (keypads group digits with spaces) and every digit is replaced
//     by its ASCII equivalent (e.g. Arabic-Indic "١٢٣٤" becomes "1234");
//     whitespace inside alphanumeric passphrases is preserved;
//  3. the result is NFKD-normalized.
//
// Normalize is pure, deterministic, and total: it never fails, and already
// canonical input passes through unchanged.
func Normalize(p string) string {
	trimmed := strings.TrimSpace(p)

	if compact := strings.Join(strings.Fields(trimmed), ""); isAllDigits(compact) {
		trimmed = asciiDigits(compact)
	}

	return norm.NFKD.String(trimmed)
}

// TypeOf classifies a PIN after normalization: numeric iff it consists of
// decimal digits only.
func TypeOf(p string) models.PinType {
	normalized := Normalize(p)
	if normalized != "" && isAllDigits(normalized) {
		return models.PinTypeNumeric
	}
	return models.PinTypeAlphanumeric
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// asciiDigits maps every decimal digit rune in s to '0'..'9'. The caller
// guarantees s contains digits only.
func asciiDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteRune('0' + digitValue(r))
	}
	return b.String()
}

// digitValue returns the numeric value of a decimal digit rune. Unicode
// decimal digits are assigned in contiguous ascending runs of ten, so the
// value is the offset of r from the zero digit of its run. Some runs sit
// directly next to each other (the mathematical digits), so the offset is
// taken from the start of the whole contiguous block, modulo ten.
func digitValue(r rune) rune {
	start := r
	for start > 0 && unicode.IsDigit(start-1) {
		start--
	}
	return (r - start) % 10
}
