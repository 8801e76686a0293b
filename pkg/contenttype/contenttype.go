// Package contenttype compares a declared Content-Type with the file type
// sniffed from the content itself, and classifies unrecognized content as
// text or binary.
package contenttype

import (
	"mime"
	"strings"

	"github.com/grokify/filesig/pkg/filesig"
)

// Verdict is the outcome of comparing a declared type with a sniffed one.
type Verdict string

const (
	// Undeclared means no Content-Type was given.
	Undeclared Verdict = "undeclared"
	// Unverifiable means the declared type cannot be confirmed or refuted
	// from the leading bytes.
	Unverifiable Verdict = "unverifiable"
	// Consistent means the sniffed type is one the declared type allows.
	Consistent Verdict = "consistent"
	// Mismatch means the content is something other than what was declared.
	Mismatch Verdict = "mismatch"
)

// Declared describes a Content-Type header value.
type Declared struct {
	// MIMEType is the lowercased media type without parameters.
	MIMEType string
	// Extensions are the registry extensions the media type may carry.
	Extensions []string
	// Binary is true for media types whose payload is not text.
	Binary bool
	// Known is true when the media type is in the table.
	Known bool
}

type entry struct {
	binary bool
	exts   []string
}

var types = map[string]entry{
	// Images
	"image/png":    {true, []string{"PNG"}},
	"image/jpeg":   {true, []string{"JPG", "JPEG", "JPE", "JFIF"}},
	"image/gif":    {true, []string{"GIF"}},
	"image/webp":   {true, []string{"WEBP"}},
	"image/bmp":    {true, []string{"BMP", "DIB"}},
	"image/tiff":   {true, []string{"TIF", "TIFF"}},
	"image/x-icon": {true, []string{"ICO"}},
	// Audio
	"audio/mpeg": {true, []string{"MP3"}},
	"audio/wav":  {true, []string{"WAV"}},
	"audio/ogg":  {true, []string{"OGA", "OGG"}},
	"audio/flac": {true, []string{"FLAC"}},
	// Video
	"video/mp4":        {true, []string{"MP4", "M4V"}},
	"video/ogg":        {true, []string{"OGV", "OGG"}},
	"video/quicktime":  {true, []string{"MOV"}},
	"video/x-msvideo":  {true, []string{"AVI"}},
	"video/x-matroska": {true, []string{"MKV"}},
	// Archives
	"application/zip":              {true, []string{"ZIP", "JAR", "DOCX", "XLSX", "PPTX", "EPUB"}},
	"application/gzip":             {true, []string{"GZ"}},
	"application/x-gzip":           {true, []string{"GZ"}},
	"application/x-tar":            {true, []string{"TAR"}},
	"application/x-rar-compressed": {true, []string{"RAR"}},
	"application/vnd.rar":          {true, []string{"RAR"}},
	"application/x-7z-compressed":  {true, []string{"7Z"}},
	"application/x-bzip2":          {true, []string{"BZ2"}},
	"application/java-archive":     {true, []string{"JAR", "ZIP"}},
	"application/epub+zip":         {true, []string{"EPUB", "ZIP"}},
	// Documents
	"application/pdf":                 {true, []string{"PDF"}},
	"application/msword":              {true, []string{"DOC"}},
	"application/vnd.ms-excel":        {true, []string{"XLS"}},
	"application/vnd.ms-powerpoint":   {true, []string{"PPT"}},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document":   {true, []string{"DOCX", "ZIP"}},
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":         {true, []string{"XLSX", "ZIP"}},
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": {true, []string{"PPTX", "ZIP"}},
	// Executables
	"application/x-msdownload": {true, []string{"EXE", "DLL"}},
	"application/x-dosexec":    {true, []string{"EXE", "DLL"}},
	"application/java-vm":      {true, []string{"CLASS"}},
	// Fonts
	"font/ttf": {true, []string{"TTF"}},
	// Other binary
	"application/x-shockwave-flash": {true, []string{"SWF"}},
	"application/octet-stream":      {true, nil},
	// Text
	"text/plain":             {false, nil},
	"text/html":              {false, nil},
	"text/css":               {false, nil},
	"text/javascript":        {false, nil},
	"text/csv":               {false, nil},
	"text/markdown":          {false, nil},
	"text/xml":               {false, []string{"XML"}},
	"application/xml":        {false, []string{"XML"}},
	"application/json":       {false, nil},
	"application/javascript": {false, nil},
	"application/x-yaml":     {false, nil},
	"application/yaml":       {false, nil},
	"image/svg+xml":          {false, []string{"XML"}},
}

// Parse interprets a Content-Type header value.
func Parse(contentType string) Declared {
	mt := normalize(contentType)
	if mt == "" {
		return Declared{}
	}
	d := Declared{MIMEType: mt}
	if e, ok := types[mt]; ok {
		d.Known = true
		d.Binary = e.binary
		d.Extensions = append([]string(nil), e.exts...)
		return d
	}
	switch {
	case strings.HasPrefix(mt, "text/"),
		strings.HasSuffix(mt, "+json"),
		strings.HasSuffix(mt, "+xml"):
		d.Known = true
	case strings.HasPrefix(mt, "audio/"), strings.HasPrefix(mt, "video/"):
		d.Known = true
		d.Binary = true
	}
	return d
}

func normalize(ct string) string {
	if mt, _, err := mime.ParseMediaType(ct); err == nil {
		return mt
	}
	if idx := strings.IndexByte(ct, ';'); idx != -1 {
		ct = ct[:idx]
	}
	return strings.TrimSpace(strings.ToLower(ct))
}

// Allows reports whether content sniffed as ext may be served as d.
func (d Declared) Allows(ext string) bool {
	for _, e := range d.Extensions {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}

// Check compares the declared Content-Type with a sniffing result.
//
// Text types are consistent with content that matched nothing, and with a
// match only when they list the extension (XML for application/xml). Binary
// types with no signature of their own, and content that matched nothing
// under a binary type, are unverifiable.
func Check(contentType string, res filesig.Result) Verdict {
	d := Parse(contentType)
	switch {
	case d.MIMEType == "":
		return Undeclared
	case !d.Known:
		return Unverifiable
	case res.IsNone():
		if d.Binary {
			return Unverifiable
		}
		return Consistent
	case d.Binary && len(d.Extensions) == 0:
		return Unverifiable
	}
	for _, ext := range res.Extensions() {
		if d.Allows(ext) {
			return Consistent
		}
	}
	return Mismatch
}
