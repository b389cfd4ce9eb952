package models

// Lookup is a generic reference-table row (genders, countries,
// current statuses, degrees, designations).
type Lookup struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type State struct {
	ID        int    `json:"id"`
	CountryID int    `json:"country_id"`
	Name      string `json:"name"`
}

// Institute and Company rows are created on demand when an education or
// experience entry names one that does not exist yet.
type Institute struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

type Company struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// AppModule is one sidebar/navigation entry.
type AppModule struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Icon         string `json:"icon"`
	Route        string `json:"route"`
	DisplayOrder int    `json:"display_order"`
}
