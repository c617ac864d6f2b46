package panelsdk

// ============================================================================
// Session types
// ============================================================================

// User is the denormalised profile snapshot the backend returns on login and
// profile reads. It is stored alongside the token for display purposes only;
// nothing binds it cryptographically to the token (the backend re-checks
// identity on every call).
type User struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Phone       int64  `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	Location    string `json:"location,omitempty"`
	Image       string `json:"image,omitempty"`
	BannerImage string `json:"bannerImage,omitempty"`
	RoleID      int    `json:"roleId,omitempty"`
	Status      bool   `json:"status,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

// LoginResponse is the session material the login endpoint hands back. The
// SDK does not persist it; the application layer writes both fields into the
// session store together.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ============================================================================
// Catalog types
// ============================================================================

type Category struct {
	ID               string `json:"_id"`
	Name             string `json:"name"`
	Slug             string `json:"slug"`
	SubCategoryCount int    `json:"subCategoryCount"`
	Icon             string `json:"icon,omitempty"`
	Description      string `json:"description,omitempty"`
	IsActive         bool   `json:"isActive"`
	IsFeatured       bool   `json:"isFeatured"`
	CreatedAt        string `json:"createdAt,omitempty"`
}

type SubCategory struct {
	ID         string `json:"_id"`
	Name       string `json:"name"`
	CategoryID string `json:"categoryId,omitempty"`
	IsActive   bool   `json:"isActive"`
}

type City struct {
	ID          string `json:"_id"`
	City        string `json:"city"`
	Latitude    string `json:"latitude,omitempty"`
	Longitude   string `json:"longitude,omitempty"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
}

// ============================================================================
// Event types
// ============================================================================

// EventRef is the shallow {_id, name} shape nested resources come back as.
type EventRef struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type EventLocation struct {
	ID   string `json:"_id"`
	City string `json:"city"`
}

type Event struct {
	ID          string         `json:"_id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Image       string         `json:"image,omitempty"`
	TicketPrice string         `json:"ticket_price,omitempty"`
	StartDate   string         `json:"start_date,omitempty"`
	EndDate     string         `json:"end_date,omitempty"`
	StartTime   string         `json:"start_time,omitempty"`
	EndTime     string         `json:"end_time,omitempty"`
	EventMode   string         `json:"eventMode,omitempty"`
	Visibility  bool           `json:"visibility"`
	IsFeatured  bool           `json:"isFeatured"`
	CreatedAt   string         `json:"createdAt,omitempty"`
	Location    *EventLocation `json:"location,omitempty"`
	Category    *EventRef      `json:"category,omitempty"`
	SubCategory *EventRef      `json:"sub_category,omitempty"`
}

// Pagination is the cursor block event listings carry.
type Pagination struct {
	Page         int `json:"page"`
	Limit        int `json:"limit"`
	TotalRecords int `json:"totalRecords"`
	TotalPages   int `json:"totalPages,omitempty"`
}

// EventPage is one page of the event listing.
type EventPage struct {
	Events     []Event    `json:"events"`
	Pagination Pagination `json:"pagination"`
}

// EventQuery narrows the event listing. Zero values mean "no filter".
type EventQuery struct {
	Page     int
	Limit    int
	Search   string
	CityID   string
	Category string
}

// ============================================================================
// Approval types
// ============================================================================

// Approval statuses as the backend spells them.
const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
)

type Approval struct {
	ID        string `json:"_id"`
	User      User   `json:"user_id"`
	Type      string `json:"type"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// ============================================================================
// MOU types
// ============================================================================

// MOU signing states as the backend spells them.
const (
	MOUDraft   = "draft"
	MOUOTPSent = "otp_sent"
	MOUSigned  = "signed"
)

type MOUOrganization struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type MOU struct {
	ID           string          `json:"_id"`
	Number       string          `json:"mouNumber"`
	Organization MOUOrganization `json:"organization"`
	Status       string          `json:"status"`
	PDFURL       string          `json:"pdfUrl"`
	SignedPDFURL string          `json:"signedPdfUrl,omitempty"`
	CreatedAt    string          `json:"createdAt,omitempty"`
}
