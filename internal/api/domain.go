package api

import (
	"context"
	"fmt"
	"io"
)

// Domain endpoints consumed by the view layer. These are deliberately
// thin: the console renders what the server returns and all business
// rules live behind the REST boundary.

// Members fetches the member directory
func (c *Client) Members(ctx context.Context) ([]Member, error) {
	var resp struct {
		Members []Member `json:"members"`
	}
	if err := c.get(ctx, "/members", &resp); err != nil {
		return nil, err
	}
	return resp.Members, nil
}

// Funds fetches all funds
func (c *Client) Funds(ctx context.Context) ([]Fund, error) {
	var resp struct {
		Funds []Fund `json:"funds"`
	}
	if err := c.get(ctx, "/funds", &resp); err != nil {
		return nil, err
	}
	return resp.Funds, nil
}

// Expenses fetches recorded expenses
func (c *Client) Expenses(ctx context.Context) ([]Expense, error) {
	var resp struct {
		Expenses []Expense `json:"expenses"`
	}
	if err := c.get(ctx, "/expenses", &resp); err != nil {
		return nil, err
	}
	return resp.Expenses, nil
}

// Contributions fetches member contributions
func (c *Client) Contributions(ctx context.Context) ([]Contribution, error) {
	var resp struct {
		Contributions []Contribution `json:"contributions"`
	}
	if err := c.get(ctx, "/contributions", &resp); err != nil {
		return nil, err
	}
	return resp.Contributions, nil
}

// Meetings fetches meetings with their resolutions
func (c *Client) Meetings(ctx context.Context) ([]Meeting, error) {
	var resp struct {
		Meetings []Meeting `json:"meetings"`
	}
	if err := c.get(ctx, "/meetings", &resp); err != nil {
		return nil, err
	}
	return resp.Meetings, nil
}

// CastVote records the current user's ballot on a resolution
func (c *Client) CastVote(ctx context.Context, meetingID, resolutionID, choice string) error {
	req := map[string]string{"choice": choice}
	path := fmt.Sprintf("/meetings/%s/resolutions/%s/vote", meetingID, resolutionID)
	return c.post(ctx, path, req, nil)
}

// Complaints fetches complaints visible to the current role
func (c *Client) Complaints(ctx context.Context) ([]Complaint, error) {
	var resp struct {
		Complaints []Complaint `json:"complaints"`
	}
	if err := c.get(ctx, "/complaints", &resp); err != nil {
		return nil, err
	}
	return resp.Complaints, nil
}

// FileComplaint submits a new complaint
func (c *Client) FileComplaint(ctx context.Context, subject, details string) (*Complaint, error) {
	req := map[string]string{
		"subject": subject,
		"details": details,
	}
	var complaint Complaint
	if err := c.post(ctx, "/complaints", req, &complaint); err != nil {
		return nil, err
	}
	return &complaint, nil
}

// Announcements fetches broadcast announcements
func (c *Client) Announcements(ctx context.Context) ([]Announcement, error) {
	var resp struct {
		Announcements []Announcement `json:"announcements"`
	}
	if err := c.get(ctx, "/announcements", &resp); err != nil {
		return nil, err
	}
	return resp.Announcements, nil
}

// PostAnnouncement publishes a new announcement
func (c *Client) PostAnnouncement(ctx context.Context, title, body string) (*Announcement, error) {
	req := map[string]string{
		"title": title,
		"body":  body,
	}
	var announcement Announcement
	if err := c.post(ctx, "/announcements", req, &announcement); err != nil {
		return nil, err
	}
	return &announcement, nil
}

// Suggestions fetches member suggestions
func (c *Client) Suggestions(ctx context.Context) ([]Suggestion, error) {
	var resp struct {
		Suggestions []Suggestion `json:"suggestions"`
	}
	if err := c.get(ctx, "/suggestions", &resp); err != nil {
		return nil, err
	}
	return resp.Suggestions, nil
}

// AuditLogs fetches the administrative audit trail
func (c *Client) AuditLogs(ctx context.Context) ([]AuditLog, error) {
	var resp struct {
		AuditLogs []AuditLog `json:"auditLogs"`
	}
	if err := c.get(ctx, "/audit-logs", &resp); err != nil {
		return nil, err
	}
	return resp.AuditLogs, nil
}

// Reports fetches headline figures for the dashboards
func (c *Client) Reports(ctx context.Context) (*ReportSummary, error) {
	var summary ReportSummary
	if err := c.get(ctx, "/reports", &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// UploadReceipt attaches a receipt file to an expense. Multipart, so the
// transport sets the content type with the boundary.
func (c *Client) UploadReceipt(ctx context.Context, expenseID, fileName string, file io.Reader) error {
	fields := map[string]string{"expenseId": expenseID}
	resp, err := c.doUpload(ctx, fmt.Sprintf("/expenses/%s/receipt", expenseID), fields, "receipt", fileName, file)
	if err != nil {
		return err
	}
	return c.parseResponse(resp, nil)
}
