package models

// Preferences are the presentation settings remembered between visits
type Preferences struct {
	Theme         string `json:"theme"`
	ActiveSection string `json:"active_section"`
}
