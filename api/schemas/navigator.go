// Package schemas defines the output records produced by the generator.
package schemas

// NavigatorConfig is the full structured identity produced by a single
// generation call. It is a plain value: constructed once, never mutated,
// no state shared between calls.
//
// JSON keys use the snake_case names of the classic navigator config dump
// so output stays drop-in compatible with existing tooling.
type NavigatorConfig struct {
	// Identity ids chosen by the constraint solver.
	OSID        string `json:"os_id"`
	NavigatorID string `json:"navigator_id"`

	// System components.
	Platform string `json:"platform"`
	OSCPU    string `json:"oscpu"`

	// App components.
	BuildVersion string `json:"build_version"`
	BuildID      string `json:"build_id"`
	AppVersion   string `json:"app_version"`
	AppName      string `json:"app_name"`
	AppCodeName  string `json:"app_code_name"`
	Product      string `json:"product"`
	ProductSub   string `json:"product_sub"`
	Vendor       string `json:"vendor"`
	VendorSub    string `json:"vendor_sub"`

	// The compiled User-Agent header.
	UserAgent string `json:"user_agent"`
}

// JSNavigator mirrors the field names of the in-page window.navigator
// object (appCodeName, appName, ...). It carries the same data as
// NavigatorConfig minus the internal ids.
type JSNavigator struct {
	AppCodeName string `json:"appCodeName"`
	AppName     string `json:"appName"`
	AppVersion  string `json:"appVersion"`
	Platform    string `json:"platform"`
	UserAgent   string `json:"userAgent"`
	OSCPU       string `json:"oscpu"`
	Product     string `json:"product"`
	ProductSub  string `json:"productSub"`
	Vendor      string `json:"vendor"`
	VendorSub   string `json:"vendorSub"`
	BuildID     string `json:"buildID"`
}

// JS re-keys a NavigatorConfig to the navigator-object view.
func (c *NavigatorConfig) JS() *JSNavigator {
	return &JSNavigator{
		AppCodeName: c.AppCodeName,
		AppName:     c.AppName,
		AppVersion:  c.AppVersion,
		Platform:    c.Platform,
		UserAgent:   c.UserAgent,
		OSCPU:       c.OSCPU,
		Product:     c.Product,
		ProductSub:  c.ProductSub,
		Vendor:      c.Vendor,
		VendorSub:   c.VendorSub,
		BuildID:     c.BuildID,
	}
}
