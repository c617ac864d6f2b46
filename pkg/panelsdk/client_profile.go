package panelsdk

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
)

// Profile fetches the full profile snapshot for a user.
func (c *Client) Profile(ctx context.Context, userID string) (*User, error) {
	if userID == "" {
		return nil, fmt.Errorf("panelsdk: user id is required")
	}

	resp, err := c.Get(ctx, endpointProfile(userID), &RequestOptions{AuthRequired: true})
	if err != nil {
		return nil, err
	}

	var out struct {
		Profile User `json:"profile"`
	}
	if err := decodeInto(resp, &out); err != nil {
		return nil, err
	}
	return &out.Profile, nil
}

// ProfileForm is the edit-profile submission. Empty string fields are left
// out of the form entirely, matching how the panel only submits what the
// user touched. Image and Banner, when set, are uploaded as files.
type ProfileForm struct {
	Name     string
	Phone    string
	Location string
	Password string

	Image      io.Reader
	ImageName  string
	Banner     io.Reader
	BannerName string
}

// EditProfile submits the profile edit form as multipart/form-data and
// returns the backend's confirmation message.
func (c *Client) EditProfile(ctx context.Context, form ProfileForm) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fields := map[string]string{
		"name":     form.Name,
		"phone":    form.Phone,
		"location": form.Location,
		"password": form.Password,
	}
	for key, value := range fields {
		if value == "" {
			continue
		}
		if err := mw.WriteField(key, value); err != nil {
			return "", fmt.Errorf("panelsdk: build profile form: %w", err)
		}
	}

	if form.Image != nil {
		part, err := mw.CreateFormFile("image", orDefault(form.ImageName, "image"))
		if err != nil {
			return "", fmt.Errorf("panelsdk: build profile form: %w", err)
		}
		if _, err := io.Copy(part, form.Image); err != nil {
			return "", fmt.Errorf("panelsdk: read image: %w", err)
		}
	}

	if form.Banner != nil {
		part, err := mw.CreateFormFile("bannerImage", orDefault(form.BannerName, "banner"))
		if err != nil {
			return "", fmt.Errorf("panelsdk: build profile form: %w", err)
		}
		if _, err := io.Copy(part, form.Banner); err != nil {
			return "", fmt.Errorf("panelsdk: read banner: %w", err)
		}
	}

	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("panelsdk: build profile form: %w", err)
	}

	resp, err := c.Post(ctx, endpointEditProfile, &buf, &RequestOptions{
		AuthRequired: true,
		Headers:      map[string]string{"Content-Type": mw.FormDataContentType()},
	})
	if err != nil {
		return "", err
	}

	var out struct {
		Message string `json:"message"`
	}
	if err := decodeInto(resp, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
