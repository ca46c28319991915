package types

import "fmt"

// Status lifecycle per pipeline stage. Every transition goes through
// CanTransition so illegal moves are rejected in one place instead of
// per controller.

type BatchStatus string

const (
	BatchUngrouped BatchStatus = "ungrouped"
	BatchGrouped   BatchStatus = "grouped"
	BatchInProcess BatchStatus = "in_process"
	BatchArchived  BatchStatus = "archived"
)

// Legacy display label still sent by the frontend for the grouping call.
const BatchGroupedLabel = "Grouped for Assembly"

var batchTransitions = map[BatchStatus][]BatchStatus{
	BatchUngrouped: {BatchGrouped, BatchArchived},
	BatchGrouped:   {BatchInProcess},
	BatchInProcess: {BatchArchived},
	BatchArchived:  {},
}

func (s BatchStatus) Valid() bool {
	_, ok := batchTransitions[s]
	return ok
}

func (s BatchStatus) CanTransition(to BatchStatus) bool {
	for _, next := range batchTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// ParseBatchStatus normalizes the incoming status string, accepting the
// legacy label as an alias of BatchGrouped.
func ParseBatchStatus(raw string) (BatchStatus, error) {
	if raw == BatchGroupedLabel {
		return BatchGrouped, nil
	}
	s := BatchStatus(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown batch status %q", raw)
	}
	return s, nil
}

type AssemblyStatus string

const (
	AssemblyProcessing AssemblyStatus = "processing"
	AssemblyPlating    AssemblyStatus = "plating"
)

var assemblyTransitions = map[AssemblyStatus][]AssemblyStatus{
	AssemblyProcessing: {AssemblyPlating},
	AssemblyPlating:    {},
}

func (s AssemblyStatus) Valid() bool {
	_, ok := assemblyTransitions[s]
	return ok
}

func (s AssemblyStatus) CanTransition(to AssemblyStatus) bool {
	for _, next := range assemblyTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

type PlatingStatus string

const (
	PlatingPending   PlatingStatus = "pending"
	PlatingCompleted PlatingStatus = "completed"
)

var platingTransitions = map[PlatingStatus][]PlatingStatus{
	PlatingPending:   {PlatingCompleted},
	PlatingCompleted: {},
}

func (s PlatingStatus) Valid() bool {
	_, ok := platingTransitions[s]
	return ok
}

func (s PlatingStatus) CanTransition(to PlatingStatus) bool {
	for _, next := range platingTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

type ProductStatus string

const (
	ProductInStock   ProductStatus = "in_stock"
	ProductDefective ProductStatus = "defective"
)

func (s ProductStatus) Valid() bool {
	return s == ProductInStock || s == ProductDefective
}

// Quality verdicts recorded by inspectors. The latest check determines
// the product's displayed status.
type QualityVerdict string

const (
	VerdictOK QualityVerdict = "OK"
	VerdictNG QualityVerdict = "NG"
)

func (v QualityVerdict) Valid() bool {
	return v == VerdictOK || v == VerdictNG
}

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestPending:  {RequestApproved, RequestRejected},
	RequestApproved: {},
	RequestRejected: {},
}

func (s RequestStatus) Valid() bool {
	_, ok := requestTransitions[s]
	return ok
}

func (s RequestStatus) CanTransition(to RequestStatus) bool {
	for _, next := range requestTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

type RequestType string

const (
	RequestAdd    RequestType = "add"
	RequestEdit   RequestType = "edit"
	RequestDelete RequestType = "delete"
)

func (t RequestType) Valid() bool {
	return t == RequestAdd || t == RequestEdit || t == RequestDelete
}

type MachineStatus string

const (
	MachineRunning  MachineStatus = "running"
	MachineStopping MachineStatus = "stopping"
)

type RunStatus string

const (
	RunRunning  RunStatus = "running"
	RunStopping RunStatus = "stopping"
)
