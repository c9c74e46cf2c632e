package transport

import (
	"bytes"
	"context"
	"io"
	"math"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"github.com/pkg/errors"

	"github.com/jrsteele09/wellbe/api"
)

const (
	UploadField       = "image"
	UploadFilename    = "food_image.jpg"
	UploadContentType = "image/jpeg"
)

// ProgressFunc receives upload progress as a whole percentage.
type ProgressFunc func(percent int)

// Upload posts image as a multipart form with a single image field. progress, when
// set, is called as the body is sent and its final call reports 100.
func Upload[T any](ctx context.Context, c *Client, path string, image io.Reader, progress ProgressFunc, opts ...RequestOption) api.Response[T] {
	form, contentType, err := multipartBody(image)
	if err != nil {
		return api.Failed[T](ErrorMessage(err))
	}

	r, err := newRequest(http.MethodPost, path, nil, opts)
	if err != nil {
		return api.Failed[T](UnexpectedErrorMessage)
	}
	r.body = func() (io.Reader, string, int64, error) {
		return &progressReader{r: bytes.NewReader(form), total: int64(len(form)), fn: progress, last: -1}, contentType, int64(len(form)), nil
	}
	return decode[T](c.send(ctx, r))
}

func multipartBody(image io.Reader) ([]byte, string, error) {
	if image == nil {
		return nil, "", errors.New("image is required")
	}
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+UploadField+`"; filename="`+UploadFilename+`"`)
	h.Set("Content-Type", UploadContentType)
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", errors.Wrap(err, "create form part")
	}
	if _, err := io.Copy(part, image); err != nil {
		return nil, "", errors.Wrap(err, "read image")
	}
	if err := w.Close(); err != nil {
		return nil, "", errors.Wrap(err, "close form")
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

type progressReader struct {
	r     io.Reader
	total int64
	sent  int64
	last  int
	fn    ProgressFunc
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 && p.fn != nil && p.total > 0 {
		p.sent += int64(n)
		pct := int(math.Round(float64(p.sent) * 100 / float64(p.total)))
		if pct != p.last {
			p.last = pct
			p.fn(pct)
		}
	}
	return n, err
}
