package embed

// Footer is the bottom section of an Embed.
type Footer struct {
	IconURL      *string `json:"icon_url,omitempty"`
	ProxyIconURL *string `json:"proxy_icon_url,omitempty"`
	Text         string  `json:"text"`
}

type FooterBuilder struct {
	footer Footer
}

// NewFooterBuilder creates a footer with the given text. The text is checked
// against FooterTextLengthLimit when the embed is built.
func NewFooterBuilder(text string) *FooterBuilder {
	return &FooterBuilder{footer: Footer{Text: text}}
}

func (b *FooterBuilder) IconURL(source ImageSource) *FooterBuilder {
	b.footer.IconURL = ptr(source.URL())

	return b
}

func (b *FooterBuilder) Build() Footer {
	return b.footer
}

// Field is a name and value pair displayed in an Embed.
type Field struct {
	Inline bool   `json:"inline,omitempty"`
	Name   string `json:"name"`
	Value  string `json:"value"`
}

type FieldBuilder struct {
	field Field
}

func NewFieldBuilder(name, value string) *FieldBuilder {
	return &FieldBuilder{field: Field{Name: name, Value: value}}
}

// Inline displays the field next to its siblings instead of on its own line.
func (b *FieldBuilder) Inline() *FieldBuilder {
	b.field.Inline = true

	return b
}

func (b *FieldBuilder) Build() Field {
	return b.field
}
