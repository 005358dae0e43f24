// Package codec converts catalog entities and error payloads to and from the
// API's two wire formats. The XML shapes mirror what the dashboard parses:
// a list is <productsResponse><page/><limit/><total/><products><product/>...,
// a detail response wraps one <product> in <productDetail>, and errors are
// <error><status/><message/><path/><timestamp/></error>.
package codec

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"time"

	"go-catalog-api/internal/model"
)

// ErrMalformed reports a request body that could not be parsed in its
// declared format. Callers must treat it as a client error, never as an
// empty entity.
var ErrMalformed = errors.New("malformed document")

type listJSON struct {
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
	Total int             `json:"total"`
	Data  []model.Product `json:"data"`
}

type listXML struct {
	XMLName  xml.Name        `xml:"productsResponse"`
	Page     int             `xml:"page"`
	Limit    int             `xml:"limit"`
	Total    int             `xml:"total"`
	Products []model.Product `xml:"products>product"`
}

type detailXML struct {
	XMLName xml.Name      `xml:"productDetail"`
	Product model.Product `xml:"product"`
}

type errorJSON struct {
	Timestamp string `json:"timestamp"`
	Path      string `json:"path"`
	Status    int    `json:"status"`
	Error     string `json:"error"`
}

type errorXML struct {
	XMLName   xml.Name `xml:"error"`
	Status    int      `xml:"status"`
	Message   string   `xml:"message"`
	Path      string   `xml:"path"`
	Timestamp string   `xml:"timestamp"`
}

// EncodeProduct serializes a bare product: a JSON object or a <product>
// element.
func EncodeProduct(p *model.Product, f Format) ([]byte, error) {
	if f == FormatXML {
		return marshalXML(p)
	}
	return json.Marshal(p)
}

// EncodeDetail serializes a single-product response. JSON stays a bare
// object; XML wraps the product in <productDetail>.
func EncodeDetail(p *model.Product, f Format) ([]byte, error) {
	if f == FormatXML {
		return marshalXML(detailXML{Product: *p})
	}
	return json.Marshal(p)
}

// EncodeList serializes a page of products together with its pagination
// envelope.
func EncodeList(page, limit, total int, items []model.Product, f Format) ([]byte, error) {
	if f == FormatXML {
		return marshalXML(listXML{Page: page, Limit: limit, Total: total, Products: items})
	}
	if items == nil {
		items = []model.Product{}
	}
	return json.Marshal(listJSON{Page: page, Limit: limit, Total: total, Data: items})
}

// EncodeError serializes an error payload carrying the failure status, a
// human-readable message, the request path, and the moment of formatting.
func EncodeError(status int, message, path string, f Format) ([]byte, error) {
	ts := time.Now().UTC().Format(time.RFC3339)
	if f == FormatXML {
		return marshalXML(errorXML{Status: status, Message: message, Path: path, Timestamp: ts})
	}
	return json.Marshal(errorJSON{Timestamp: ts, Path: path, Status: status, Error: message})
}

// DecodeProduct parses a full product representation in the given format.
func DecodeProduct(body []byte, f Format) (*model.Product, error) {
	var p model.Product
	if err := unmarshal(body, f, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// DecodeCreate parses a creation request body.
func DecodeCreate(body []byte, f Format) (*model.CreateProductRequest, error) {
	var req model.CreateProductRequest
	if err := unmarshal(body, f, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// DecodeUpdate parses a partial-update request body.
func DecodeUpdate(body []byte, f Format) (*model.UpdateProductRequest, error) {
	var req model.UpdateProductRequest
	if err := unmarshal(body, f, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

func unmarshal(body []byte, f Format, v any) error {
	if f == FormatXML {
		if err := xml.Unmarshal(body, v); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		return nil
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}

func marshalXML(v any) ([]byte, error) {
	out, err := xml.Marshal(v)
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}
