package store

// Lead ENUMs
const (
	LeadTypeFTD    = "ftd"
	LeadTypeFiller = "filler"
	LeadTypeCold   = "cold"
	LeadTypeLive   = "live"
)

const (
	BrokerAvailabilityAvailable           = "available"
	BrokerAvailabilitySleep               = "sleep"
	BrokerAvailabilityNotAvailableBrokers = "not_available_brokers"
)

// Injection history ENUMs
const (
	InjectionStatusPending    = "pending"
	InjectionStatusSuccessful = "successful"
	InjectionStatusFailed     = "failed"
)

// Order ENUMs
const (
	OrderStatusFulfilled = "fulfilled"
	OrderStatusPartial   = "partial"
	OrderStatusCancelled = "cancelled"
)

const (
	InjectionModeBulk      = "bulk"
	InjectionModeScheduled = "scheduled"
)

const (
	OrderInjectionStatusPending    = "pending"
	OrderInjectionStatusInProgress = "in_progress"
	OrderInjectionStatusPaused     = "paused"
	OrderInjectionStatusCompleted  = "completed"
	OrderInjectionStatusFailed     = "failed"
)

const (
	FTDHandlingManualFillRequired = "manual_fill_required"
	FTDHandlingSkipped            = "skipped"
	FTDHandlingCompleted          = "completed"
)

// Device selection ENUMs
const (
	DeviceSelectionBulk       = "bulk"
	DeviceSelectionIndividual = "individual"
	DeviceSelectionRatio      = "ratio"
	DeviceSelectionRandom     = "random"
)

const (
	DeviceTypeWindows = "windows"
	DeviceTypeAndroid = "android"
	DeviceTypeIOS     = "ios"
	DeviceTypeMac     = "mac"
)

// Proxy ENUMs
const (
	ProxyStatusTesting = "testing"
	ProxyStatusActive  = "active"
	ProxyStatusExpired = "expired"
	ProxyStatusFailed  = "failed"
)

const (
	ProxyAssignmentActive    = "active"
	ProxyAssignmentCompleted = "completed"
	ProxyAssignmentFailed    = "failed"
	ProxyAssignmentExpired   = "expired"
)

// Operator ENUMs
const (
	OperatorRoleAdmin = "admin"
	OperatorRoleAgent = "agent"
)
