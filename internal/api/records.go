package api

// Wire records as the backend returns them. Dates stay strings at this
// boundary; the console only displays them.

type Student struct {
	ID            string `json:"id"`
	FullName      string `json:"full_name"`
	ClassLabel    string `json:"class_label"`
	RollNumber    int    `json:"roll_number"`
	DateOfBirth   string `json:"date_of_birth"`
	House         string `json:"house"`
	ParentPhone   string `json:"parent_phone"`
	AdmissionYear int    `json:"admission_year"`
}

type Announcement struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Category  string `json:"category"`
	Priority  string `json:"priority"`
	Published bool   `json:"published"`
}

type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	EventDate   string `json:"event_date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Location    string `json:"location"`
	Audience    string `json:"audience"`
	Category    string `json:"category"`
	Published   bool   `json:"published"`
}

type Exam struct {
	ID    string `json:"id"`
	Class string `json:"class"`
	Title string `json:"title"`
	Term  string `json:"term"`
	Date  string `json:"date"`
}

type DashboardWidget struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
	Hint  string `json:"hint"`
	Icon  string `json:"icon"`
}

type AppConfig struct {
	FeatureFlags        map[string]bool   `json:"feature_flags"`
	DashboardWidgets    []DashboardWidget `json:"dashboard_widgets"`
	MinSupportedVersion string            `json:"min_supported_version"`
	ForceUpdateMessage  string            `json:"force_update_message"`
}

type User struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	Email    string `json:"email"`
}

type AuditLog struct {
	ID        string `json:"id"`
	Action    string `json:"action"`
	UserID    string `json:"user_id"`
	UserRole  string `json:"user_role"`
	CreatedAt string `json:"created_at"`
	Payload   string `json:"payload"`
}

type ParentLink struct {
	ID          string `json:"id"`
	ParentID    string `json:"parent_id"`
	ParentName  string `json:"parent_name"`
	ParentPhone string `json:"parent_phone"`
	StudentID   string `json:"student_id"`
	StudentName string `json:"student_name"`
	ClassLabel  string `json:"class_label"`
	RollNumber  int    `json:"roll_number"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

// Shape guards: malformed list elements are dropped at this boundary
// so panels never see records without an identity.

func validAnnouncement(a Announcement) bool { return a.ID != "" && a.Title != "" }

func validEvent(e Event) bool { return e.ID != "" && e.Title != "" }

func validStudent(s Student) bool { return s.ID != "" }

func validUser(u User) bool { return u.ID != "" }

func validAuditLog(l AuditLog) bool { return l.ID != "" }

func validParentLink(l ParentLink) bool { return l.ID != "" }
