// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// valueFractionDigits bounds the decimals shown in formatted values.
const valueFractionDigits = 2

// ValueFormatter renders entry values for captions and tooltips.
type ValueFormatter struct {
	printer *message.Printer
}

// NewValueFormatter returns a formatter using the number conventions of
// the given locale, e.g. grouping separators.
func NewValueFormatter(tag language.Tag) *ValueFormatter {
	return &ValueFormatter{printer: message.NewPrinter(tag)}
}

// Format returns the caption text for the entry value. An explicit
// ValueLabel is returned unchanged.
func (f *ValueFormatter) Format(e Entry) string {
	if e.ValueLabel != "" {
		return e.ValueLabel
	}
	return f.printer.Sprint(number.Decimal(e.Value, number.MaxFractionDigits(valueFractionDigits)))
}

// Tooltip returns "label: value", or just the value when the entry has no
// label.
func (f *ValueFormatter) Tooltip(e Entry) string {
	v := f.Format(e)
	if e.Label == "" {
		return v
	}
	return f.printer.Sprintf("%s: %s", e.Label, v)
}
