package embed

import (
	"fmt"
	"time"
	"unicode/utf16"
)

// Limits of the chat API, counted in UTF-16 code units unless stated otherwise.
const (
	AuthorNameLengthLimit  = 256
	ColorMaximum           = 0xFF_FF_FF
	DescriptionLengthLimit = 4096
	// FieldCountLimit is the maximum number of fields.
	FieldCountLimit       = 25
	FieldNameLengthLimit  = 256
	FieldValueLengthLimit = 1024
	FooterTextLengthLimit = 2048
	TitleLengthLimit      = 256
	// TotalLengthLimit applies to the sum of author name, description, field
	// names and values, footer text and title.
	TotalLengthLimit = 6000
)

const kindRich = "rich"

// Embed is a rich content block attached to a chat message.
type Embed struct {
	Author      *Author    `json:"author,omitempty"`
	Color       *uint32    `json:"color,omitempty"`
	Description *string    `json:"description,omitempty"`
	Fields      []Field    `json:"fields,omitempty"`
	Footer      *Footer    `json:"footer,omitempty"`
	Image       *Image     `json:"image,omitempty"`
	Kind        string     `json:"type"`
	Thumbnail   *Image     `json:"thumbnail,omitempty"`
	Timestamp   *time.Time `json:"timestamp,omitempty"`
	Title       *string    `json:"title,omitempty"`
	URL         *string    `json:"url,omitempty"`
}

// Image is the large image or the thumbnail of an Embed.
type Image struct {
	ProxyURL *string `json:"proxy_url,omitempty"`
	URL      string  `json:"url"`
}

// Builder assembles an Embed. Nothing is validated until Build.
type Builder struct {
	embed Embed
}

func NewBuilder() *Builder {
	return &Builder{embed: Embed{Kind: kindRich}}
}

// Author sets the author section, usually built with an AuthorBuilder.
func (b *Builder) Author(author Author) *Builder {
	b.embed.Author = &author

	return b
}

// Color sets the color of the embed's left border, as 0xRRGGBB.
func (b *Builder) Color(color uint32) *Builder {
	b.embed.Color = &color

	return b
}

func (b *Builder) Description(description string) *Builder {
	b.embed.Description = &description

	return b
}

// Field appends a field. At most FieldCountLimit fields are allowed.
func (b *Builder) Field(field Field) *Builder {
	b.embed.Fields = append(b.embed.Fields, field)

	return b
}

func (b *Builder) Footer(footer Footer) *Builder {
	b.embed.Footer = &footer

	return b
}

func (b *Builder) Image(source ImageSource) *Builder {
	b.embed.Image = &Image{URL: source.URL()}

	return b
}

func (b *Builder) Thumbnail(source ImageSource) *Builder {
	b.embed.Thumbnail = &Image{URL: source.URL()}

	return b
}

func (b *Builder) Timestamp(timestamp time.Time) *Builder {
	ts := timestamp.UTC()
	b.embed.Timestamp = &ts

	return b
}

func (b *Builder) Title(title string) *Builder {
	b.embed.Title = &title

	return b
}

func (b *Builder) URL(url string) *Builder {
	b.embed.URL = &url

	return b
}

// Build validates the embed against the API limits and returns it.
// The returned error is a *ValidationError wrapping one of the Err* sentinels.
func (b *Builder) Build() (Embed, error) {
	e := b.embed
	if e.Kind == "" {
		e.Kind = kindRich
	}

	total := 0

	if e.Author != nil && e.Author.Name != nil {
		n, err := checkText(*e.Author.Name, "author.name", AuthorNameLengthLimit,
			ErrAuthorNameEmpty, ErrAuthorNameTooLong)
		if err != nil {
			return Embed{}, err
		}

		total += n
	}

	if e.Color != nil && *e.Color > ColorMaximum {
		return Embed{}, newValidationError(ErrColorNotRGB, "color", int(*e.Color), ColorMaximum)
	}

	if e.Description != nil {
		n, err := checkText(*e.Description, "description", DescriptionLengthLimit,
			ErrDescriptionEmpty, ErrDescriptionTooLong)
		if err != nil {
			return Embed{}, err
		}

		total += n
	}

	if len(e.Fields) > FieldCountLimit {
		return Embed{}, newValidationError(ErrTooManyFields, "fields", len(e.Fields), FieldCountLimit)
	}

	for i, f := range e.Fields {
		n, err := checkText(f.Name, fmt.Sprintf("fields[%d].name", i), FieldNameLengthLimit,
			ErrFieldNameEmpty, ErrFieldNameTooLong)
		if err != nil {
			return Embed{}, err
		}

		total += n

		n, err = checkText(f.Value, fmt.Sprintf("fields[%d].value", i), FieldValueLengthLimit,
			ErrFieldValueEmpty, ErrFieldValueTooLong)
		if err != nil {
			return Embed{}, err
		}

		total += n
	}

	if e.Footer != nil {
		n, err := checkText(e.Footer.Text, "footer.text", FooterTextLengthLimit,
			ErrFooterTextEmpty, ErrFooterTextTooLong)
		if err != nil {
			return Embed{}, err
		}

		total += n
	}

	if e.Title != nil {
		n, err := checkText(*e.Title, "title", TitleLengthLimit, ErrTitleEmpty, ErrTitleTooLong)
		if err != nil {
			return Embed{}, err
		}

		total += n
	}

	if total > TotalLengthLimit {
		return Embed{}, newValidationError(ErrTotalContentTooLarge, "embed", total, TotalLengthLimit)
	}

	if e.Fields != nil {
		e.Fields = append([]Field(nil), e.Fields...)
	}

	return e, nil
}

// checkText returns the length of s in UTF-16 code units.
func checkText(s, field string, limit int, errEmpty, errTooLong error) (int, error) {
	if s == "" {
		return 0, newValidationError(errEmpty, field, 0, 0)
	}

	n := utf16Len(s)
	if n > limit {
		return n, newValidationError(errTooLong, field, n, limit)
	}

	return n, nil
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}

	return n
}
