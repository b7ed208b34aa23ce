// FILE: internal/dto/dashboard_dto.go
package dto

import "stembills-dashboard/internal/entity"

type BillRecordResponse struct {
	Row                        int `json:"row"`
	Congress                   int `json:"congress"`
	IntroBills                 int `json:"Intro_bills"`
	PassedHouse                int `json:"passed_house"`
	PassedSenate               int `json:"paassed_senate"`
	EnactedSignedByPres        int `json:"enacted_signed_by_pres"`
	EnactedIncludedInOtherBill int `json:"enacted_included_in_other_bill"`
}

type DatasetResponse struct {
	Rows       int                  `json:"rows"`
	Congresses []int                `json:"congresses"`
	Records    []BillRecordResponse `json:"records"`
	Totals     entity.BillTotals    `json:"totals"`
}

// CallbackEvent is published once per callback dispatch.
type CallbackEvent struct {
	Output     string `json:"output"`
	DurationMs int64  `json:"duration_ms"`
	Error      string `json:"error,omitempty"`
}

type CallbackStats struct {
	Output          string `json:"output"`
	Calls           int    `json:"calls"`
	Failures        int    `json:"failures"`
	TotalDurationMs int64  `json:"total_duration_ms"`
	LastError       string `json:"last_error,omitempty"`
}

// WsUpdateMessage is the reply frame on the websocket update channel.
type WsUpdateMessage struct {
	Output   string                    `json:"output"`
	Response map[string]map[string]any `json:"response,omitempty"`
	Error    string                    `json:"error,omitempty"`
}
