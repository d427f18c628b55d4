package response

import (
	"time"

	"lease-market/internal/domain/lease"
	"lease-market/internal/usecase/leasing"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ContractResponse struct {
	ID         uuid.UUID `json:"id"`
	MasterID   int64     `json:"masterId"`
	MasterVIP  bool      `json:"masterVip"`
	ResourceID int64     `json:"resourceId"`
	Price      string    `json:"price"`
	Hours      []string  `json:"hours"`
	CreatedAt  time.Time `json:"createdAt"`
}

type MasterResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	VIP  bool   `json:"vip"`
}

type ResourceResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	PricePerHour string `json:"pricePerHour"`
	DailyHourCap int    `json:"dailyHourCap"`
}

type RejectionDetail struct {
	Kind   string   `json:"kind"`
	Errors []string `json:"errors"`
}

func FromContract(c *lease.Contract) *ContractResponse {
	return FromContractView(leasing.NewContractView(c))
}

func FromContractView(v *leasing.ContractView) *ContractResponse {
	var resp ContractResponse
	// Field names line up one to one; copier only fails on mismatched kinds.
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromMasterView(v *leasing.MasterView) *MasterResponse {
	var resp MasterResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromResourceView(v *leasing.ResourceView) *ResourceResponse {
	var resp ResourceResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromRejection(resp *leasing.Response) RejectionDetail {
	detail := RejectionDetail{Errors: resp.Errors()}
	if rej := resp.Rejection(); rej != nil {
		detail.Kind = rej.Kind.String()
	}
	return detail
}
