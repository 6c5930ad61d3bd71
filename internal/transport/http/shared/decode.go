package shared

import (
	"encoding/json"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/go-playground/form"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/oleeahmmed/UniworldHrm/internal/domain/hrm"
)

var ErrInvalidBody = errors.New("invalid request body")

const multipartMemory = 8 << 20

var formDecoder = newFormDecoder()

func newFormDecoder() *form.Decoder {
	d := form.NewDecoder()
	d.SetTagName("form")
	d.RegisterCustomTypeFunc(func(vals []string) (any, error) {
		return hrm.ParseDate(vals[0]), nil
	}, hrm.Date{})
	d.RegisterCustomTypeFunc(func(vals []string) (any, error) {
		return decimal.NewFromString(strings.TrimSpace(vals[0]))
	}, decimal.Decimal{})
	return d
}

// IsFormBody reports whether the request carries an urlencoded or multipart
// body rather than JSON.
func IsFormBody(r *http.Request) bool {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return mediaType == "application/x-www-form-urlencoded" || mediaType == "multipart/form-data"
}

func DecodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.Wrap(ErrInvalidBody, err.Error())
	}
	return nil
}

// DecodeForm parses an urlencoded or multipart body into dst. Fields that
// cannot be converted are reported as issues instead of failing the request.
func DecodeForm(r *http.Request, dst any) ([]ValidationIssue, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	var err error
	if mediaType == "multipart/form-data" {
		err = r.ParseMultipartForm(multipartMemory)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		return nil, errors.Wrap(ErrInvalidBody, err.Error())
	}
	return DecodeValues(r.PostForm, dst), nil
}

// DecodeValues decodes query or form values. Blank values count as absent.
func DecodeValues(values url.Values, dst any) []ValidationIssue {
	clean := url.Values{}
	for key, vals := range values {
		for _, v := range vals {
			if strings.TrimSpace(v) != "" {
				clean[key] = append(clean[key], v)
			}
		}
	}
	err := formDecoder.Decode(dst, clean)
	if err == nil {
		return nil
	}
	var decodeErrs form.DecodeErrors
	if !errors.As(err, &decodeErrs) {
		return []ValidationIssue{{Reason: err.Error()}}
	}
	issues := make([]ValidationIssue, 0, len(decodeErrs))
	for key := range decodeErrs {
		issues = append(issues, ValidationIssue{Field: camelPath(key), Reason: "has an invalid value"})
	}
	sort.Slice(issues, func(i, j int) bool { return issues[i].Field < issues[j].Field })
	return issues
}

// FormFile returns the uploaded file under field, if any.
func FormFile(r *http.Request, field string) (multipart.File, *multipart.FileHeader, bool) {
	if r.MultipartForm == nil {
		return nil, nil, false
	}
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, nil, false
	}
	return file, header, true
}

// camelPath turns a form key such as present.postal_code into
// present.postalCode.
func camelPath(key string) string {
	segments := strings.Split(key, ".")
	for i, seg := range segments {
		parts := strings.Split(seg, "_")
		for j := 1; j < len(parts); j++ {
			if parts[j] != "" {
				parts[j] = strings.ToUpper(parts[j][:1]) + parts[j][1:]
			}
		}
		segments[i] = strings.Join(parts, "")
	}
	return strings.Join(segments, ".")
}
