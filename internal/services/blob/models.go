package blob

import (
	"encoding/xml"
	"strconv"
	"strings"
)

// Record is one blob entry from a container listing.
// It is built from a single listing-page entry and never modified afterwards.
type Record struct {
	// Name is the blob's path-like identifier within the container.
	// Forward slashes denote virtual folders.
	Name string

	// SizeBytes is the Content-Length reported by the listing, 0 when the
	// listing omitted the field.
	SizeBytes int64

	// LastModified is the raw HTTP-date string exactly as the service
	// returned it, empty when absent.
	LastModified string
}

// enumerationResults mirrors the XML document returned by the container
// listing endpoint (GET {base}?restype=container&comp=list).
type enumerationResults struct {
	XMLName    xml.Name    `xml:"EnumerationResults"`
	Blobs      []blobEntry `xml:"Blobs>Blob"`
	NextMarker string      `xml:"NextMarker"`
}

type blobEntry struct {
	Name       string         `xml:"Name"`
	Properties blobProperties `xml:"Properties"`
}

type blobProperties struct {
	LastModified string `xml:"Last-Modified"`
	// Kept as a string: the service reports sizes as decimal text and an
	// empty or malformed value must count as unknown, not fail the page.
	ContentLength string `xml:"Content-Length"`
}

// record converts a listing entry into a Record.
func (e blobEntry) record() Record {
	size, _ := strconv.ParseInt(strings.TrimSpace(e.Properties.ContentLength), 10, 64)
	if size < 0 {
		size = 0
	}
	return Record{
		Name:         e.Name,
		SizeBytes:    size,
		LastModified: e.Properties.LastModified,
	}
}
