package model

import "time"

// ClientStatus is the sales-pipeline stage a client sits in.
type ClientStatus string

const (
	StageLead        ClientStatus = "lead"
	StageContacted   ClientStatus = "contacted"
	StageProposal    ClientStatus = "proposal"
	StageNegotiation ClientStatus = "negotiation"
	StageActive      ClientStatus = "active"
)

func (s ClientStatus) Valid() bool {
	switch s {
	case StageLead, StageContacted, StageProposal, StageNegotiation, StageActive:
		return true
	}
	return false
}

func PipelineStages() []ClientStatus {
	return []ClientStatus{StageLead, StageContacted, StageProposal, StageNegotiation, StageActive}
}

type Client struct {
	ClientID  string       `json:"id"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Phone     string       `json:"phone"`
	Company   string       `json:"company"`
	Address   string       `json:"address"`
	Status    ClientStatus `json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}
