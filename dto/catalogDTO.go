package dto

type ServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

type SettingsRequest struct {
	BusinessName    *string  `json:"businessName"`
	BusinessEmail   *string  `json:"businessEmail"`
	BusinessAddress *string  `json:"businessAddress"`
	BusinessPhone   *string  `json:"businessPhone"`
	DefaultTaxRate  *float64 `json:"defaultTaxRate"`
	Currency        *string  `json:"currency"`
}
