package model

import "net/url"

type ListBanksRequest struct {
	CountryCode string `json:"-" validate:"required,len=2,alpha"`
}

type BankResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type FundingCallbackRequest struct {
	Status string `json:"-"`
	TxRef  string `json:"-"`
}

// FundingRedirect tells the controller where to send the browser.
type FundingRedirect struct {
	Funded    bool
	Reference string
}

// Location escapes the provider-supplied reference so it survives the
// round trip as a single query parameter.
func (r FundingRedirect) Location() string {
	if r.Funded {
		return "/admin/wallet?funded=true&ref=" + url.QueryEscape(r.Reference)
	}
	return "/admin/wallet?funded=false"
}
