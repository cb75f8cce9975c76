// Package render turns header and footer segments into printable strings.
// Expansion is pure: everything it needs comes in through a Context, so the
// same segment can be stamped for every page of a document in one pass.
package render

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"

	sprig "github.com/go-task/slim-sprig/v3"

	"folio/common"
	"folio/config"
	"folio/document"
)

const (
	defaultDateFormat = "Jan 2, 2006"
	defaultTimeFormat = "3:04 PM"
)

// Context holds everything a segment may refer to while being expanded for
// one particular page.
type Context struct {
	PageNumber int
	TotalPages int
	Title      string
	Author     string
	Now        time.Time
	DateFormat string
	TimeFormat string
	Numbering  common.NumberingStyle
}

// NewContext seeds a Context from configuration. Page fields start at zero
// and are set by the caller per page.
func NewContext(cfg *config.Config) Context {
	ctx := Context{
		Now:        time.Now(),
		DateFormat: defaultDateFormat,
		TimeFormat: defaultTimeFormat,
		Numbering:  common.NumberingStyleArabic,
	}
	if cfg == nil {
		return ctx
	}
	ctx.Title = cfg.Document.Title
	ctx.Author = cfg.Document.Author
	ctx.Numbering = cfg.Document.Numbering
	if len(cfg.Document.Chrome.DateFormat) != 0 {
		ctx.DateFormat = cfg.Document.Chrome.DateFormat
	}
	if len(cfg.Document.Chrome.TimeFormat) != 0 {
		ctx.TimeFormat = cfg.Document.Chrome.TimeFormat
	}
	return ctx
}

// templateValues is a struct that holds variables we make available for
// literal segment template expansion
type templateValues struct {
	Page   string
	Pages  int
	Title  string
	Author string
	Date   string
	Time   string
}

// ExpandSegment produces the display string for a single segment. A nil
// segment expands to the empty string. Literal text goes through template
// expansion so users can mix static text with variables ("Page {{.Page}} of
// {{.Pages}}").
func ExpandSegment(seg *document.Segment, ctx Context) (string, error) {
	if seg == nil {
		return "", nil
	}
	switch seg.Kind {
	case common.SegmentKindField:
		return expandField(seg.Field, ctx)
	case common.SegmentKindLiteral:
		if !strings.Contains(seg.Text, "{{") {
			return seg.Text, nil
		}
		return expandLiteral(seg.Text, ctx)
	}
	return "", fmt.Errorf("unsupported segment kind %s", seg.Kind)
}

func expandField(kind common.FieldKind, ctx Context) (string, error) {
	switch kind {
	case common.FieldKindPageNumber:
		return FormatPageNumber(ctx.Numbering, ctx.PageNumber), nil
	case common.FieldKindTotalPages:
		return fmt.Sprintf("%d", ctx.TotalPages), nil
	case common.FieldKindDate:
		return ctx.Now.Format(ctx.DateFormat), nil
	case common.FieldKindTime:
		return ctx.Now.Format(ctx.TimeFormat), nil
	case common.FieldKindDocumentTitle:
		return ctx.Title, nil
	case common.FieldKindAuthor:
		return ctx.Author, nil
	}
	return "", fmt.Errorf("unsupported field kind %s", kind)
}

func expandLiteral(text string, ctx Context) (string, error) {
	funcMap := sprig.FuncMap()

	tmpl, err := template.New("segment").Funcs(funcMap).Parse(text)
	if err != nil {
		return "", fmt.Errorf("unable to parse segment template: %w", err)
	}

	values := &templateValues{
		Page:   FormatPageNumber(ctx.Numbering, ctx.PageNumber),
		Pages:  ctx.TotalPages,
		Title:  ctx.Title,
		Author: ctx.Author,
		Date:   ctx.Now.Format(ctx.DateFormat),
		Time:   ctx.Now.Format(ctx.TimeFormat),
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatPageNumber renders an ordinal in the requested numbering style.
// Values below one come out verbatim in arabic, there is no zeroth page in
// roman numerals or letters.
func FormatPageNumber(style common.NumberingStyle, n int) string {
	if n < 1 {
		return fmt.Sprintf("%d", n)
	}
	switch style {
	case common.NumberingStyleRoman:
		return toRoman(n)
	case common.NumberingStyleLetters:
		return toLetters(n)
	case common.NumberingStyleNone:
		return ""
	}
	return fmt.Sprintf("%d", n)
}

var romanValues = []struct {
	value int
	digit string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

func toRoman(n int) string {
	var sb strings.Builder
	for _, rv := range romanValues {
		for n >= rv.value {
			sb.WriteString(rv.digit)
			n -= rv.value
		}
	}
	return sb.String()
}

// toLetters counts A..Z, AA..AZ and so on, the way spreadsheets label columns.
func toLetters(n int) string {
	var sb strings.Builder
	for n > 0 {
		n--
		sb.WriteByte(byte('A' + n%26))
		n /= 26
	}
	out := []byte(sb.String())
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}
