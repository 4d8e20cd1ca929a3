package store

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// JSONB is a custom type for JSONB fields
type JSONB map[string]interface{}

// Value implements the driver.Valuer interface for JSONB
func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements the sql.Scanner interface for JSONB
func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("incompatible type for JSONB")
	}

	// Handle empty or null JSON
	if len(bytes) == 0 || string(bytes) == "null" {
		*j = make(JSONB)
		return nil
	}

	result := make(JSONB)
	err := json.Unmarshal(bytes, &result)
	if err != nil {
		return err
	}
	*j = result
	return nil
}

// StringArray is a custom type for PostgreSQL text[] arrays
type StringArray []string

// Value implements the driver.Valuer interface for StringArray
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	if len(a) == 0 {
		return "{}", nil
	}
	// PostgreSQL array format: {item1,item2,item3}
	return "{" + strings.Join(a, ",") + "}", nil
}

// Scan implements the sql.Scanner interface for StringArray
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}

	var str string
	switch v := value.(type) {
	case []byte:
		str = string(v)
	case string:
		str = v
	default:
		return fmt.Errorf("unsupported type for StringArray: %T", value)
	}

	if str == "" || str == "{}" {
		*a = []string{}
		return nil
	}

	str = strings.Trim(str, "{}")
	if str == "" {
		*a = []string{}
		return nil
	}

	*a = strings.Split(str, ",")
	return nil
}

// Lead represents one contact record in the distribution pool
type Lead struct {
	ID          uuid.UUID `db:"id" json:"id"`
	FirstName   string    `db:"first_name" json:"first_name"`
	LastName    string    `db:"last_name" json:"last_name"`
	Email       string    `db:"email" json:"email"`
	Phone       string    `db:"phone" json:"phone"`
	Country     string    `db:"country" json:"country"`
	CountryCode string    `db:"country_code" json:"country_code"`
	Gender      *string   `db:"gender" json:"gender,omitempty"`
	LeadType    string    `db:"lead_type" json:"lead_type"`

	IsAssigned bool       `db:"is_assigned" json:"is_assigned"`
	AssignedTo *uuid.UUID `db:"assigned_to" json:"assigned_to,omitempty"`
	AssignedAt *time.Time `db:"assigned_at" json:"assigned_at,omitempty"`
	OrderID    *uuid.UUID `db:"order_id" json:"order_id,omitempty"`

	BrokerAvailabilityStatus string `db:"broker_availability_status" json:"broker_availability_status"`
	SleepDetails             JSONB  `db:"sleep_details" json:"sleep_details,omitempty"`

	FingerprintID *uuid.UUID `db:"fingerprint_id" json:"fingerprint_id,omitempty"`

	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at" json:"-"`
}

// BrokerHistoryEntry is one append-only row of a lead's broker history.
// Rows are superseded by status transitions, never deleted.
type BrokerHistoryEntry struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	LeadID          uuid.UUID  `db:"lead_id" json:"lead_id"`
	BrokerID        *uuid.UUID `db:"broker_id" json:"broker_id,omitempty"`
	OrderID         uuid.UUID  `db:"order_id" json:"order_id"`
	AssignedBy      *uuid.UUID `db:"assigned_by" json:"assigned_by,omitempty"`
	InjectionStatus string     `db:"injection_status" json:"injection_status"`
	Domain          *string    `db:"domain" json:"domain,omitempty"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`
}

// NetworkHistoryEntry is one append-only row of a lead's client-network history
type NetworkHistoryEntry struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	LeadID     uuid.UUID  `db:"lead_id" json:"lead_id"`
	NetworkID  uuid.UUID  `db:"network_id" json:"network_id"`
	OrderID    *uuid.UUID `db:"order_id" json:"order_id,omitempty"`
	AssignedBy *uuid.UUID `db:"assigned_by" json:"assigned_by,omitempty"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
}

// Order represents a client request for a pool of leads
type Order struct {
	ID        uuid.UUID `db:"id" json:"id"`
	CreatedBy uuid.UUID `db:"created_by" json:"created_by"`
	NetworkID *uuid.UUID `db:"network_id" json:"network_id,omitempty"`

	RequestedFTD    int `db:"requested_ftd" json:"requested_ftd"`
	RequestedFiller int `db:"requested_filler" json:"requested_filler"`
	RequestedCold   int `db:"requested_cold" json:"requested_cold"`
	RequestedLive   int `db:"requested_live" json:"requested_live"`

	FulfilledFTD    int `db:"fulfilled_ftd" json:"fulfilled_ftd"`
	FulfilledFiller int `db:"fulfilled_filler" json:"fulfilled_filler"`
	FulfilledCold   int `db:"fulfilled_cold" json:"fulfilled_cold"`
	FulfilledLive   int `db:"fulfilled_live" json:"fulfilled_live"`

	Status string `db:"status" json:"status"`

	CountryFilter *string `db:"country_filter" json:"country_filter,omitempty"`
	GenderFilter  *string `db:"gender_filter" json:"gender_filter,omitempty"`

	InjectionEnabled      bool        `db:"injection_enabled" json:"injection_enabled"`
	InjectionMode         string      `db:"injection_mode" json:"injection_mode"`
	InjectionIncludeTypes StringArray `db:"injection_include_types" json:"injection_include_types"`
	InjectionStatus       string      `db:"injection_status" json:"injection_status"`
	DeviceSelectionMode   string      `db:"device_selection_mode" json:"device_selection_mode"`
	DeviceTypes           StringArray `db:"device_types" json:"device_types,omitempty"`
	DeviceRatio           JSONB       `db:"device_ratio" json:"device_ratio,omitempty"`

	ScheduledWindowStart *string `db:"scheduled_window_start" json:"scheduled_window_start,omitempty"`
	ScheduledWindowEnd   *string `db:"scheduled_window_end" json:"scheduled_window_end,omitempty"`

	TotalToInject           int  `db:"total_to_inject" json:"total_to_inject"`
	SuccessfulInjections    int  `db:"successful_injections" json:"successful_injections"`
	FailedInjections        int  `db:"failed_injections" json:"failed_injections"`
	BrokersAssigned         int  `db:"brokers_assigned" json:"brokers_assigned"`
	BrokerAssignmentPending bool `db:"broker_assignment_pending" json:"broker_assignment_pending"`
	FTDsPendingManualFill   int  `db:"ftds_pending_manual_fill" json:"ftds_pending_manual_fill"`

	FTDHandlingStatus    string     `db:"ftd_handling_status" json:"ftd_handling_status"`
	InjectionStartedAt   *time.Time `db:"injection_started_at" json:"injection_started_at,omitempty"`
	InjectionCompletedAt *time.Time `db:"injection_completed_at" json:"injection_completed_at,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Requests returns the per-type requested counts keyed by lead type
func (o *Order) Requests() map[string]int {
	return map[string]int{
		LeadTypeFTD:    o.RequestedFTD,
		LeadTypeFiller: o.RequestedFiller,
		LeadTypeCold:   o.RequestedCold,
		LeadTypeLive:   o.RequestedLive,
	}
}

// Fulfilled returns the per-type fulfilled counts keyed by lead type
func (o *Order) Fulfilled() map[string]int {
	return map[string]int{
		LeadTypeFTD:    o.FulfilledFTD,
		LeadTypeFiller: o.FulfilledFiller,
		LeadTypeCold:   o.FulfilledCold,
		LeadTypeLive:   o.FulfilledLive,
	}
}

// Proxy represents one allocated network egress point
type Proxy struct {
	ID               uuid.UUID `db:"id" json:"id"`
	SessionID        string    `db:"session_id" json:"session_id"`
	OriginalUsername string    `db:"original_username" json:"-"`

	Server   string `db:"server" json:"server"`
	Host     string `db:"host" json:"host"`
	Port     int    `db:"port" json:"port"`
	Username string `db:"username" json:"-"`
	Password string `db:"password" json:"-"`

	Country string `db:"country" json:"country"`
	Status  string `db:"status" json:"status"`

	ConnectionCount int `db:"connection_count" json:"connection_count"`
	MaxConnections  int `db:"max_connections" json:"max_connections"`

	ExpiresAt time.Time `db:"expires_at" json:"expires_at"`
	IsExpired bool      `db:"is_expired" json:"is_expired"`

	LastCheckAt  *time.Time `db:"last_check_at" json:"last_check_at,omitempty"`
	LastCheckOK  bool       `db:"last_check_ok" json:"last_check_ok"`
	FailedChecks int        `db:"failed_checks" json:"failed_checks"`

	AssignedLeadID *uuid.UUID `db:"assigned_lead_id" json:"assigned_lead_id,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// ProxyAssignment records one lead's use of a proxy within an order
type ProxyAssignment struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	ProxyID     uuid.UUID  `db:"proxy_id" json:"proxy_id"`
	LeadID      uuid.UUID  `db:"lead_id" json:"lead_id"`
	OrderID     uuid.UUID  `db:"order_id" json:"order_id"`
	Status      string     `db:"status" json:"status"`
	CompletedAt *time.Time `db:"completed_at" json:"completed_at,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

// Broker is a downstream destination identified by its redirect domain
type Broker struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	NetworkID *uuid.UUID `db:"network_id" json:"network_id,omitempty"`
	Name      string     `db:"name" json:"name"`
	Domain    string     `db:"domain" json:"domain"`
	IsActive  bool       `db:"is_active" json:"is_active"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
}

// ClientNetwork groups brokers belonging to one client network
type ClientNetwork struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Fingerprint is the synthetic device profile bound one-to-one to a lead
type Fingerprint struct {
	ID         uuid.UUID `db:"id" json:"id"`
	LeadID     uuid.UUID `db:"lead_id" json:"lead_id"`
	DeviceType string    `db:"device_type" json:"device_type"`
	UserAgent  string    `db:"user_agent" json:"user_agent"`

	ScreenWidth  int     `db:"screen_width" json:"screen_width"`
	ScreenHeight int     `db:"screen_height" json:"screen_height"`
	PixelRatio   float64 `db:"pixel_ratio" json:"pixel_ratio"`

	Timezone string `db:"timezone" json:"timezone"`
	Language string `db:"language" json:"language"`
	Platform string `db:"platform" json:"platform"`

	CanvasHash string `db:"canvas_hash" json:"canvas_hash"`
	AudioHash  string `db:"audio_hash" json:"audio_hash"`
	WebGLHash  string `db:"webgl_hash" json:"webgl_hash"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Operator is a human user of the operator API
type Operator struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Email          string    `db:"email" json:"email"`
	HashedPassword string    `db:"hashed_password" json:"-"`
	Name           string    `db:"name" json:"name"`
	Role           string    `db:"role" json:"role"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}
