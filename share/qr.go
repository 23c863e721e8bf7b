package share

import (
	"context"
	"fmt"
	"net/url"

	"github.com/go-resty/resty/v2"
)

const qrEndpoint = "https://api.qrserver.com/v1/create-qr-code/"

// QRImageURL returns the address of a QR code image for the given link.
func QRImageURL(link string, size int) string {
	q := url.Values{}
	q.Set("size", fmt.Sprintf("%dx%d", size, size))
	q.Set("data", link)
	return qrEndpoint + "?" + q.Encode()
}

// FetchQR downloads a PNG QR code for the given link.
func FetchQR(ctx context.Context, client *resty.Client, link string, size int) ([]byte, error) {
	resp, err := client.R().
		SetContext(ctx).
		SetQueryParam("size", fmt.Sprintf("%dx%d", size, size)).
		SetQueryParam("data", link).
		Get(qrEndpoint)
	if err != nil {
		return nil, fmt.Errorf("share: fetch qr code: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("share: fetch qr code: unexpected status %s", resp.Status())
	}
	return resp.Body(), nil
}
