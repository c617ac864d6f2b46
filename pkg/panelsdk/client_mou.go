package panelsdk

import (
	"context"
	"fmt"
)

// MOUs lists the memoranda of understanding awaiting or past signature.
func (c *Client) MOUs(ctx context.Context) ([]MOU, error) {
	resp, err := c.Get(ctx, endpointMOUList, &RequestOptions{AuthRequired: true})
	if err != nil {
		return nil, err
	}

	var out struct {
		Data []MOU `json:"data"`
	}
	if err := decodeInto(resp, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// MOUDocument fetches a MOU PDF as raw bytes. documentPath is the pdfUrl or
// signedPdfUrl from the MOU record, which the backend serves relative to the
// same base URL as the API.
func (c *Client) MOUDocument(ctx context.Context, documentPath string) ([]byte, error) {
	if documentPath == "" {
		return nil, fmt.Errorf("panelsdk: document path is required")
	}

	resp, err := c.Get(ctx, documentPath, &RequestOptions{
		AuthRequired: true,
		ResponseType: ResponseBinary,
	})
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// SendMOUOTP asks the backend to email a one-time signing code to the
// organisation on record. The code itself never exists client-side.
func (c *Client) SendMOUOTP(ctx context.Context) error {
	_, err := c.Post(ctx, endpointSendMOUOTP, nil, &RequestOptions{AuthRequired: true})
	return err
}

// VerifyMOUOTP relays the signing code back; on success the backend marks
// the MOU signed and generates the signed PDF.
func (c *Client) VerifyMOUOTP(ctx context.Context, otp string) error {
	if otp == "" {
		return fmt.Errorf("panelsdk: otp is required")
	}

	_, err := c.Post(ctx, endpointVerifyMOUOTP, map[string]string{"otp": otp}, &RequestOptions{AuthRequired: true})
	return err
}
