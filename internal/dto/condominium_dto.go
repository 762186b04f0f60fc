package dto

type CreateCondominiumRequest struct {
	Name                string `json:"name"`
	TaxID               string `json:"tax_id"`
	Address             string `json:"address"`
	CleaningCompany     string `json:"cleaning_company"`
	ElevatorMaintenance string `json:"elevator_maintenance"`
	LogoURL             string `json:"logo_url"`
	PrimaryColor        string `json:"primary_color"`
	SecondaryColor      string `json:"secondary_color"`
}

type CreateProviderRequest struct {
	Name       string `json:"name"`
	Profession string `json:"profession"`
	TaxID      string `json:"tax_id"`
}
