package dto

type ConfigurationResponse struct {
	SiteId     string `json:"site_id"`
	ButlerUri1 string `json:"butler_uri_1"`
	ButlerUri2 string `json:"butler_uri_2"`
}

type InstrumentsResponse struct {
	ButlerInstruments1 []string `json:"butler_instruments_1"`
	ButlerInstruments2 []string `json:"butler_instruments_2"`
}
