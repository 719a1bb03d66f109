package embed

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/idna"
)

var (
	ErrImageSourceAttachmentEmpty     = errors.New("attachment filename is empty")
	ErrImageSourceAttachmentExtension = errors.New("attachment filename has no extension")
	ErrImageSourceURLScheme           = errors.New("image url scheme is not http or https")
	ErrImageSourceURLHost             = errors.New("image url host is invalid")
)

const attachmentScheme = "attachment://"

// ImageSource is a resolved reference to an image, either a remote URL or a file
// attached to the same message. Builders only accept images through an
// ImageSource, never as raw text.
type ImageSource struct {
	url string
}

// ImageSourceAttachment references a file uploaded along with the message.
func ImageSourceAttachment(filename string) (ImageSource, error) {
	if filename == "" {
		return ImageSource{}, ErrImageSourceAttachmentEmpty
	}

	dot := strings.LastIndexByte(filename, '.')
	if dot <= 0 || dot == len(filename)-1 {
		return ImageSource{}, ErrImageSourceAttachmentExtension
	}

	return ImageSource{url: attachmentScheme + filename}, nil
}

// ImageSourceURL references a remote image. Only http and https URLs with a valid
// host name are accepted.
func ImageSourceURL(rawURL string) (ImageSource, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ImageSource{}, fmt.Errorf("parse image url: %v", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return ImageSource{}, ErrImageSourceURLScheme
	}

	host := u.Hostname()
	if host == "" {
		return ImageSource{}, ErrImageSourceURLHost
	}

	if _, err = idna.Lookup.ToASCII(host); err != nil {
		return ImageSource{}, fmt.Errorf("%w: %v", ErrImageSourceURLHost, err)
	}

	return ImageSource{url: rawURL}, nil
}

// URL returns the reference as sent to the chat API.
func (s ImageSource) URL() string {
	return s.url
}

// IsAttachment reports whether the image is a message attachment.
func (s ImageSource) IsAttachment() bool {
	return strings.HasPrefix(s.url, attachmentScheme)
}
