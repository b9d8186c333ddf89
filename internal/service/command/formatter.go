package command

import (
	"fmt"
	"strings"
)

// usageColumn is the width of the left column in the help listing.
const usageColumn = 14

type ResponseFormatter struct{}

func NewResponseFormatter() *ResponseFormatter {
	return &ResponseFormatter{}
}

func (f *ResponseFormatter) Title(title string) string {
	return title + ":"
}

func (f *ResponseFormatter) Row(usage, desc string) string {
	return fmt.Sprintf("  %-*s - %s", usageColumn, usage, desc)
}

func (f *ResponseFormatter) Combine(lines ...string) string {
	return strings.Join(lines, "\n")
}
