package embed

// Author is the attribution section of an Embed.
type Author struct {
	IconURL *string `json:"icon_url,omitempty"`
	Name    *string `json:"name,omitempty"`
	// ProxyIconURL is filled by the chat service once the embed has been sent.
	ProxyIconURL *string `json:"proxy_icon_url,omitempty"`
	URL          *string `json:"url,omitempty"`
}

// AuthorBuilder creates an Author to be passed to Builder.Author.
//
// The zero value is ready to use. Setters do not validate their input, the
// author name is checked against AuthorNameLengthLimit when the whole embed is
// built.
type AuthorBuilder struct {
	author Author
}

func NewAuthorBuilder() *AuthorBuilder {
	return &AuthorBuilder{}
}

// IconURL sets the author icon.
func (b *AuthorBuilder) IconURL(source ImageSource) *AuthorBuilder {
	b.author.IconURL = ptr(source.URL())

	return b
}

// Name sets the author name.
func (b *AuthorBuilder) Name(name string) *AuthorBuilder {
	b.author.Name = ptr(name)

	return b
}

// URL sets the link of the author name.
func (b *AuthorBuilder) URL(url string) *AuthorBuilder {
	b.author.URL = ptr(url)

	return b
}

// Build returns the author. The builder should not be used afterward.
func (b *AuthorBuilder) Build() Author {
	return b.author
}

func ptr[T any](v T) *T {
	return &v
}
