package codec

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Format is the closed set of wire representations the API speaks.
type Format int

const (
	FormatJSON Format = iota
	FormatXML
)

func (f Format) String() string {
	if f == FormatXML {
		return "xml"
	}
	return "json"
}

// FromAccept maps an Accept header to a response format. Any XML media type
// selects XML; everything else, including an absent or unrecognized header,
// falls back to JSON.
func FromAccept(header string) Format {
	if strings.Contains(strings.ToLower(header), "xml") {
		return FormatXML
	}
	return FormatJSON
}

// FromContentType applies the same rule to a request body's Content-Type.
func FromContentType(header string) Format {
	return FromAccept(header)
}

// ContentType returns the MIME type to set on a response in the format.
func ContentType(f Format) string {
	if f == FormatXML {
		return fiber.MIMEApplicationXMLCharsetUTF8
	}
	return fiber.MIMEApplicationJSONCharsetUTF8
}
