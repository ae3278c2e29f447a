package assets

import "hris/internal/store"

const (
	StatusAvailable   = "available"
	StatusAssigned    = "assigned"
	StatusMaintenance = "maintenance"
	StatusRetired     = "retired"

	ConditionNew       = "new"
	ConditionGood      = "good"
	ConditionFair      = "fair"
	ConditionPoor      = "poor"
	ConditionDamaged   = "damaged"

	CategoryLaptop     = "laptop"
	CategoryDesktop    = "desktop"
	CategoryMonitor    = "monitor"
	CategoryPhone      = "phone"
	CategoryPeripheral = "peripheral"
	CategoryNetwork    = "network"
	CategoryOther      = "other"
)

var (
	Statuses   = []string{StatusAvailable, StatusAssigned, StatusMaintenance, StatusRetired}
	Conditions = []string{ConditionNew, ConditionGood, ConditionFair, ConditionPoor, ConditionDamaged}
	Categories = []string{CategoryLaptop, CategoryDesktop, CategoryMonitor, CategoryPhone, CategoryPeripheral, CategoryNetwork, CategoryOther}
)

type MaintenanceEntry struct {
	Date        string  `json:"date"`
	Type        string  `json:"type"`
	Description string  `json:"description,omitempty"`
	Cost        float64 `json:"cost"`
}

type Asset struct {
	store.Meta
	AssetCode          string             `json:"assetCode"`
	Category           string             `json:"category"`
	Brand              string             `json:"brand,omitempty"`
	Model              string             `json:"model,omitempty"`
	SerialNumber       string             `json:"serialNumber,omitempty"`
	PurchaseDate       string             `json:"purchaseDate,omitempty"`
	WarrantyExpiry     string             `json:"warrantyExpiry,omitempty"`
	Value              float64            `json:"value"`
	Condition          string             `json:"condition"`
	Status             string             `json:"status"`
	AssignedTo         string             `json:"assignedTo,omitempty"`
	AssignedDate       string             `json:"assignedDate,omitempty"`
	MaintenanceHistory []MaintenanceEntry `json:"maintenanceHistory,omitempty"`
}

var TableAssets = store.NewTable[Asset]("assets")
