package api

import "time"

// User represents an association member account as returned by the backend
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	MemberNo string `json:"member_no,omitempty"`
	Role     string `json:"role"`
}

// Notification is one entry of the unread-message feed
type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
	Link      string    `json:"link,omitempty"`
}

// Member is a directory entry
type Member struct {
	ID       string    `json:"id"`
	MemberNo string    `json:"member_no"`
	Name     string    `json:"name"`
	Email    string    `json:"email,omitempty"`
	Phone    string    `json:"phone,omitempty"`
	Role     string    `json:"role"`
	Status   string    `json:"status"`
	JoinedAt time.Time `json:"joinedAt"`
}

// Fund is a named pool of association money
type Fund struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Balance     float64 `json:"balance"`
	Target      float64 `json:"target,omitempty"`
}

// Expense is a recorded outgoing payment
type Expense struct {
	ID          string    `json:"id"`
	FundID      string    `json:"fundId,omitempty"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category,omitempty"`
	SpentAt     time.Time `json:"spentAt"`
	RecordedBy  string    `json:"recordedBy,omitempty"`
}

// Contribution is a payment made by a member
type Contribution struct {
	ID       string    `json:"id"`
	MemberNo string    `json:"member_no"`
	FundID   string    `json:"fundId,omitempty"`
	Amount   float64   `json:"amount"`
	Mode     string    `json:"mode,omitempty"`
	PaidAt   time.Time `json:"paidAt"`
}

// Meeting is a scheduled or past assembly
type Meeting struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Agenda      string       `json:"agenda,omitempty"`
	ScheduledAt time.Time    `json:"scheduledAt"`
	Location    string       `json:"location,omitempty"`
	Attendees   int          `json:"attendees"`
	Eligible    int          `json:"eligible"`
	Resolutions []Resolution `json:"resolutions,omitempty"`
}

// Resolution is a motion put to vote in a meeting
type Resolution struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
	Votes  []Vote `json:"votes,omitempty"`
}

// Vote is a single member's ballot on a resolution
type Vote struct {
	MemberNo string `json:"member_no"`
	Choice   string `json:"choice"` // "for", "against", "abstain"
}

// Complaint is a member-raised grievance
type Complaint struct {
	ID        string    `json:"id"`
	Subject   string    `json:"subject"`
	Details   string    `json:"details,omitempty"`
	Status    string    `json:"status"`
	RaisedBy  string    `json:"raisedBy"`
	CreatedAt time.Time `json:"createdAt"`
}

// Announcement is a broadcast message to the membership
type Announcement struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	PostedBy  string    `json:"postedBy,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Suggestion is a member-submitted idea
type Suggestion struct {
	ID        string    `json:"id"`
	Subject   string    `json:"subject"`
	Details   string    `json:"details,omitempty"`
	RaisedBy  string    `json:"raisedBy"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuditLog is one entry of the administrative audit trail
type AuditLog struct {
	ID        string    `json:"id"`
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	Target    string    `json:"target,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReportSummary aggregates headline figures for the dashboards
type ReportSummary struct {
	TotalMembers       int     `json:"totalMembers"`
	ActiveMembers      int     `json:"activeMembers"`
	TotalFunds         float64 `json:"totalFunds"`
	TotalExpenses      float64 `json:"totalExpenses"`
	TotalContributions float64 `json:"totalContributions"`
	OpenComplaints     int     `json:"openComplaints"`
	UpcomingMeetings   int     `json:"upcomingMeetings"`
}
