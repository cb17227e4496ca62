package crsdk

// ============================================================================
// Authentication wire types
// ============================================================================

type authRequest struct {
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	APIKey   string `json:"apiKey,omitempty"`
}

type authResponse struct {
	Token string `json:"token"`
}

// ============================================================================
// Audit
// ============================================================================

// AuditMessage is one audit log entry.
type AuditMessage struct {
	RequestID        string `json:"requestId,omitempty"`
	CreatedOn        string `json:"createdOn"`
	EventDescription string `json:"eventDescription,omitempty"`
	ActivityType     string `json:"activityType,omitempty"`
	Status           string `json:"status,omitempty"`
	UserName         string `json:"userName,omitempty"`
	Source           string `json:"source,omitempty"`
	ObjectName       string `json:"objectName,omitempty"`
	Detail           string `json:"detail,omitempty"`
	HostName         string `json:"hostName,omitempty"`
}

// ============================================================================
// Licensing
// ============================================================================

// LicenseDetails describes the Control Room's installed license.
type LicenseDetails struct {
	LicenseType    string `json:"licenseType,omitempty"`
	Edition        string `json:"edition,omitempty"`
	InstalledDate  string `json:"installedDate,omitempty"`
	ExpirationDate string `json:"expirationDate,omitempty"`
}

// ProductLicense is one purchased/used counter per product.
type ProductLicense struct {
	Product        string `json:"product"`
	Purchased      int    `json:"purchased"`
	Used           int    `json:"used"`
	ExpirationDate string `json:"expirationDate,omitempty"`
}

// ============================================================================
// Bot Insight
// ============================================================================

// BotRunDataResponse is the page of run telemetry returned by
// getbotrundata. Bot Insight does not use the list envelope; the page
// metadata rides alongside the records.
type BotRunDataResponse struct {
	List         []BotRunRecord `json:"botRunDataList"`
	PageNo       int            `json:"pageNo"`
	Limit        int            `json:"limit"`
	TotalRecords int            `json:"totalRecords"`
}

// BotRunRecord is one automation execution.
type BotRunRecord struct {
	BotName       string `json:"botName"`
	Status        string `json:"status,omitempty"`
	DeviceName    string `json:"deviceName,omitempty"`
	UserName      string `json:"userName,omitempty"`
	StartDateTime string `json:"startDateTime,omitempty"`
	EndDateTime   string `json:"endDateTime,omitempty"`
}

// TaskLogDataResponse is the page of business task-log records returned by
// gettasklogdata.
type TaskLogDataResponse struct {
	List         []TaskLogRecord `json:"taskLogDataList"`
	PageNo       int             `json:"pageNo"`
	Limit        int             `json:"limit"`
	TotalRecords int             `json:"totalRecords"`
}

// TaskLogRecord is one business task-log entry with its bot-defined values.
type TaskLogRecord struct {
	TaskName      string            `json:"taskName"`
	Status        string            `json:"status,omitempty"`
	ExecutionDate string            `json:"executionDate,omitempty"`
	Values        map[string]string `json:"values,omitempty"`
}

// ============================================================================
// Devices and runners
// ============================================================================

// Device is a registered bot-agent machine.
type Device struct {
	ID              int    `json:"id"`
	HostName        string `json:"hostName"`
	Type            string `json:"type,omitempty"`
	Status          string `json:"status,omitempty"`
	BotAgentVersion string `json:"botAgentVersion,omitempty"`
}

// DevicePool groups devices for workload distribution.
type DevicePool struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Status      string `json:"status,omitempty"`
	DeviceCount int    `json:"deviceCount,omitempty"`
}

// RunAsUser is a user context automations may execute under.
type RunAsUser struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

// ============================================================================
// Workload management
// ============================================================================

// WorkItemModel is a WLM queue item definition.
type WorkItemModel struct {
	ID         int                 `json:"id"`
	Name       string              `json:"name"`
	Attributes []WorkItemAttribute `json:"attributes,omitempty"`
}

// WorkItemAttribute is one column of a work item model.
type WorkItemAttribute struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// WLMAutomation is a queue-driven automation registration.
type WLMAutomation struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Status   string `json:"status,omitempty"`
	Priority string `json:"priority,omitempty"`
}

// ============================================================================
// Repository
// ============================================================================

// RepositoryFile is a bot or folder in the Control Room repository.
type RepositoryFile struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Path         string `json:"path,omitempty"`
	Type         string `json:"type,omitempty"`
	LastModified string `json:"lastModified,omitempty"`
}

// ============================================================================
// User management
// ============================================================================

// User is a Control Room account.
type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	FirstName string    `json:"firstName,omitempty"`
	LastName  string    `json:"lastName,omitempty"`
	Disabled  bool      `json:"disabled,omitempty"`
	Roles     []RoleRef `json:"roles,omitempty"`
}

// Role is a permission role.
type Role struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// RoleRef references a role by ID, as the user endpoints expect.
type RoleRef struct {
	ID int `json:"id"`
}

// CreateUserRequest is the body for creating a Control Room account.
type CreateUserRequest struct {
	Username        string    `json:"username"`
	Password        string    `json:"password,omitempty"`
	Email           string    `json:"email,omitempty"`
	FirstName       string    `json:"firstName,omitempty"`
	LastName        string    `json:"lastName,omitempty"`
	Disabled        bool      `json:"disabled"`
	Roles           []RoleRef `json:"roles,omitempty"`
	LicenseFeatures []string  `json:"licenseFeatures,omitempty"`
}

// ============================================================================
// Deployment
// ============================================================================

type deployRequest struct {
	FileID       int   `json:"fileId"`
	RunAsUserIDs []int `json:"runAsUserIds"`
}

type deployResponse struct {
	DeploymentID string `json:"deploymentId"`
}
