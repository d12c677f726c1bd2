// Package entity contains the core business objects of the project.
//
// JSON tags keep the Portuguese field names used by the existing Realtime
// Database tree, so this service and the mobile client read the same records.
package entity

import "time"

// StoreStatus is the lifecycle state of a store or distribution center.
type StoreStatus string

const (
	StoreStatusActive      StoreStatus = "ativa"
	StoreStatusMaintenance StoreStatus = "manutencao"
	StoreStatusInactive    StoreStatus = "inativa"
)

// Store represents a physical store or distribution center holding stock.
type Store struct {
	ID          string      `json:"id"`                         // Record key inside the owner's partition.
	Name        string      `json:"nome"`                       // Display name, e.g. "Loja Centro".
	Location    string      `json:"localizacao"`                // Short location label, e.g. "CD São Paulo".
	Capacity    int         `json:"capacidadeEstoque"`          // Maximum capacity in pairs of shoes. Always > 0.
	FullAddress string      `json:"enderecoCompleto,omitempty"` // Free-text full address.
	Status      StoreStatus `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// ValidStoreStatus reports whether s is one of the closed set of store states.
func ValidStoreStatus(s StoreStatus) bool {
	switch s {
	case StoreStatusActive, StoreStatusMaintenance, StoreStatusInactive:
		return true
	}

	return false
}
