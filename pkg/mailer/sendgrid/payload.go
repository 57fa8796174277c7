package sendgrid

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/multimail/pkg/mailer"
)

// Request field names understood by mail.send.json.
const (
	fieldTo       = "to[]"
	fieldToName   = "toname[]"
	fieldCC       = "cc[]"
	fieldBCC      = "bcc[]"
	fieldFrom     = "from"
	fieldFromName = "fromname"
	fieldReplyTo  = "replyto"
	fieldSubject  = "subject"
	fieldText     = "text"
	fieldHTML     = "html"
	fieldDate     = "date"
	fieldHeaders  = "headers"
	fieldSMTPAPI  = "x-smtpapi"

	paramReturnResponse = "return_response"
)

// File is an attachment sent as a multipart file part.
type File struct {
	Field       string // form field, "files[<filename>]"
	Filename    string
	ContentType string
	Content     []byte
}

// Payload is the set of form fields and file parts of one request.
type Payload struct {
	Fields url.Values
	Files  []File
}

// Convert maps an Email onto SendGrid request fields.
// Empty values are omitted.
func Convert(email *mailer.Email) *Payload {
	p := &Payload{Fields: url.Values{}}

	var names []string
	var named bool
	for _, to := range email.To {
		name, addr := mailer.ParseAddress(to)
		p.Fields.Add(fieldTo, addr)
		names = append(names, name)
		named = named || name != ""
	}
	if named {
		p.Fields[fieldToName] = names
	}
	for _, cc := range email.CC {
		_, addr := mailer.ParseAddress(cc)
		p.Fields.Add(fieldCC, addr)
	}
	for _, bcc := range email.BCC {
		_, addr := mailer.ParseAddress(bcc)
		p.Fields.Add(fieldBCC, addr)
	}

	if email.From != "" {
		name, addr := mailer.ParseAddress(email.From)
		p.set(fieldFrom, addr)
		p.set(fieldFromName, name)
	}
	if email.ReplyTo != "" {
		_, addr := mailer.ParseAddress(email.ReplyTo)
		p.set(fieldReplyTo, addr)
	}

	p.set(fieldSubject, email.Subject)
	p.set(fieldText, email.Text)
	p.set(fieldHTML, email.HTML)

	if !email.Date.IsZero() {
		p.set(fieldDate, email.Date.Format(time.RFC1123Z))
	}
	if len(email.Headers) > 0 {
		// map[string]string always encodes
		headers, _ := json.Marshal(email.Headers)
		p.set(fieldHeaders, string(headers))
	}
	if len(email.Tags) > 0 {
		categories := email.Tags.TagNames()
		slices.Sort(categories)
		smtpapi, _ := json.Marshal(map[string][]string{"category": categories})
		p.set(fieldSMTPAPI, string(smtpapi))
	}

	for _, a := range email.Attachments {
		field := "files[" + a.Filename + "]"
		p.Files = append(p.Files, File{
			Field:       field,
			Filename:    a.Filename,
			ContentType: a.ContentType,
			Content:     a.Content,
		})
		if a.Inline() {
			p.set("content["+a.Filename+"]", a.ContentID)
		}
	}

	return p
}

func (p *Payload) set(key, value string) {
	if value != "" {
		p.Fields.Set(key, value)
	}
}

// Merge overlays params on the payload. A param replaces every value of a
// field with the same name, including a file part sent under that name.
func (p *Payload) Merge(params url.Values) {
	for key, values := range params {
		p.Fields[key] = slices.Clone(values)
		p.Files = slices.DeleteFunc(p.Files, func(f File) bool { return f.Field == key })
	}
}

// Encode returns the request body and its content type: URL-encoded form
// when there are no files, multipart/form-data otherwise.
func (p *Payload) Encode() (io.Reader, string, error) {
	if len(p.Files) == 0 {
		return strings.NewReader(p.Fields.Encode()), "application/x-www-form-urlencoded", nil
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	keys := make([]string, 0, len(p.Fields))
	for key := range p.Fields {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for _, key := range keys {
		for _, value := range p.Fields[key] {
			if err := w.WriteField(key, value); err != nil {
				return nil, "", fmt.Errorf("write field %s: %w", key, err)
			}
		}
	}

	for _, f := range p.Files {
		contentType := f.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			escapeQuotes(f.Field), escapeQuotes(f.Filename)))
		h.Set("Content-Type", contentType)

		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", fmt.Errorf("create file part %s: %w", f.Filename, err)
		}
		if _, err := part.Write(f.Content); err != nil {
			return nil, "", fmt.Errorf("write file part %s: %w", f.Filename, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart body: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

// formValues turns a passthrough parameter into form values.
// Lists of scalars become repeated values; maps and structs are
// JSON-encoded. Nil values yield no field.
func formValues(v any) ([]string, error) {
	if value, ok := scalarValue(v); ok {
		return []string{value}, nil
	}

	switch val := v.(type) {
	case nil:
		return nil, nil
	case []string:
		return slices.Clone(val), nil
	case []any:
		if values, ok := scalarValues(val); ok {
			return values, nil
		}
	}

	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if string(b) == "null" {
		return nil, nil
	}
	return []string{string(b)}, nil
}

func scalarValue(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case []byte:
		return string(val), true
	case json.RawMessage:
		return string(val), true
	case bool:
		return strconv.FormatBool(val), true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, json.Number:
		return fmt.Sprint(val), true
	case fmt.Stringer:
		return val.String(), true
	default:
		return "", false
	}
}

func scalarValues(list []any) ([]string, bool) {
	values := make([]string, 0, len(list))
	for _, item := range list {
		value, ok := scalarValue(item)
		if !ok {
			return nil, false
		}
		values = append(values, value)
	}
	return values, true
}

// encodeSMTPAPI returns the x-smtpapi value as a JSON string.
// Strings are assumed to be encoded already. Nil values, typed or not,
// encode to "".
func encodeSMTPAPI(v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "", nil
	case string:
		return val, nil
	case []byte:
		return string(val), nil
	case json.RawMessage:
		return string(val), nil
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return "", err
		}
		if string(b) == "null" {
			return "", nil
		}
		return string(b), nil
	}
}
