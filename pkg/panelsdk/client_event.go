package panelsdk

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"
)

// ============================================================================
// Events
// ============================================================================

// Events returns one page of the event listing, filtered by the query.
func (c *Client) Events(ctx context.Context, query EventQuery) (*EventPage, error) {
	params := url.Values{}
	if query.Page > 0 {
		params.Set("page", strconv.Itoa(query.Page))
	}
	if query.Limit > 0 {
		params.Set("limit", strconv.Itoa(query.Limit))
	}
	if query.Search != "" {
		params.Set("search", query.Search)
	}
	if query.CityID != "" {
		params.Set("cityId", query.CityID)
	}
	if query.Category != "" {
		params.Set("category", query.Category)
	}

	resp, err := c.Get(ctx, endpointEvents, &RequestOptions{
		AuthRequired: true,
		Params:       params,
	})
	if err != nil {
		return nil, err
	}

	var out EventPage
	if err := decodeInto(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddEvent creates an event from a prepared multipart form (the event form
// carries an image upload alongside its fields). contentType must be the
// multipart writer's FormDataContentType.
func (c *Client) AddEvent(ctx context.Context, form io.Reader, contentType string) (string, error) {
	return c.postEventForm(ctx, endpointAddEvent, form, contentType)
}

// EditEvent updates an event with the same multipart shape as AddEvent.
func (c *Client) EditEvent(ctx context.Context, eventID string, form io.Reader, contentType string) (string, error) {
	if eventID == "" {
		return "", fmt.Errorf("panelsdk: event id is required")
	}
	return c.postEventForm(ctx, endpointEditEvent(eventID), form, contentType)
}

func (c *Client) postEventForm(ctx context.Context, path string, form io.Reader, contentType string) (string, error) {
	resp, err := c.Post(ctx, path, form, &RequestOptions{
		AuthRequired: true,
		Headers:      map[string]string{"Content-Type": contentType},
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

// ============================================================================
// Organiser approvals
// ============================================================================

// ApprovalRequests lists pending account requests. organiserOnly narrows the
// listing to organiser sign-ups, which is all the approvals screen shows.
func (c *Client) ApprovalRequests(ctx context.Context, organiserOnly bool) ([]Approval, error) {
	params := url.Values{}
	if organiserOnly {
		params.Set("organiser", "true")
	}

	resp, err := c.Get(ctx, endpointApprovals, &RequestOptions{
		AuthRequired: true,
		Params:       params,
	})
	if err != nil {
		return nil, err
	}

	var out struct {
		OrganiserRequests []Approval `json:"organiserRequests"`
	}
	if err := decodeInto(resp, &out); err != nil {
		return nil, err
	}
	return out.OrganiserRequests, nil
}

type approvalActionRequest struct {
	ApprovalID string `json:"approvalId"`
	Action     string `json:"action"`
	Reason     string `json:"reason,omitempty"`
}

// ApproveRequest marks an organiser request approved.
func (c *Client) ApproveRequest(ctx context.Context, approvalID string) error {
	return c.approvalAction(ctx, approvalActionRequest{
		ApprovalID: approvalID,
		Action:     ApprovalApproved,
	})
}

// RejectRequest marks an organiser request rejected with a reason shown to
// the applicant.
func (c *Client) RejectRequest(ctx context.Context, approvalID, reason string) error {
	return c.approvalAction(ctx, approvalActionRequest{
		ApprovalID: approvalID,
		Action:     ApprovalRejected,
		Reason:     reason,
	})
}

func (c *Client) approvalAction(ctx context.Context, req approvalActionRequest) error {
	if req.ApprovalID == "" {
		return fmt.Errorf("panelsdk: approval id is required")
	}

	_, err := c.Post(ctx, endpointApprovalAction, req, &RequestOptions{AuthRequired: true})
	return err
}
